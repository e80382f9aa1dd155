// Package generic holds the genny template for the typed linked list
// variants. The template is not meant to be imported; run go generate to
// refresh the typed packages.
package generic

//go:generate genny -in=linked_list.go -out=../intlist/linked_list_int.go -pkg=intlist gen "Value=int"
//go:generate genny -in=linked_list.go -out=../strlist/linked_list_string.go -pkg=strlist gen "Value=string"
