// Package item carries a small reference payload for the chain lists:
// identity comes from the Id, access is counted on the side.
package item

import (
	"go.uber.org/atomic"
)

type Item struct {
	Id          int
	AccessCount *atomic.Int64
}

func New(id int) *Item {
	return &Item{Id: id, AccessCount: atomic.NewInt64(0)}
}

// Identity feeds the siphash shortcut for reference payloads.
func (it *Item) Identity() uint64 {
	return uint64(it.Id)
}
