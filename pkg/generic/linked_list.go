package generic

import (
	"errors"

	"github.com/cheekybits/genny/generic"
)

var (
	boundserr   = errors.New("index out of bounds")
	capacityerr = errors.New("capacity exhausted")
)

type Value generic.Type

// ValueEqual reports whether two elements count as the same. Only Contains
// consults it.
type ValueEqual func(a, b Value) bool

// ValuePredicate tests one element; extra comes through from the All/Any
// call site.
type ValuePredicate func(v Value, extra interface{}) bool

// ValueApply produces the replacement for one element; extra comes through
// from the ApplyToAll call site.
type ValueApply func(v Value, extra interface{}) Value

func NewValueLinkedList(eq ValueEqual) *linkedlist {
	s := newsentinel()
	return &linkedlist{first: s, last: s, eq: eq}
}

// NewBoundedValueLinkedList caps the list at capacity elements; growing past
// the bound reports an error. A capacity below one means unbounded.
func NewBoundedValueLinkedList(eq ValueEqual, capacity int) *linkedlist {
	l := NewValueLinkedList(eq)
	if capacity > 0 {
		l.cap = capacity
	}
	return l
}

// region Link
func newlink(data Value, next *link) *link {
	return &link{data: data, next: next}
}

// newsentinel returns the permanent head link. Its data is never read.
func newsentinel() *link {
	return &link{}
}

type link struct {
	data Value
	next *link
}

// endregion

// region linkedlist
type linkedlist struct {
	first *link // sentinel, never moves
	last  *link // final real link, or the sentinel when empty
	size  int
	cap   int
	eq    ValueEqual
}

func (l *linkedlist) Size() int {
	return l.size
}

func (l *linkedlist) Capacity() int {
	return l.cap
}

func (l *linkedlist) IsEmpty() bool {
	return l.size == 0
}

func (l *linkedlist) full() bool {
	return l.cap > 0 && l.size >= l.cap
}

func (l *linkedlist) Append(v Value) error {
	if l.full() {
		return capacityerr
	}
	n := newlink(v, nil)
	l.last.next = n
	l.last = n
	l.size++
	return nil
}

func (l *linkedlist) Prepend(v Value) error {
	if l.full() {
		return capacityerr
	}
	n := newlink(v, l.first.next)
	if l.first == l.last {
		l.last = n
	}
	l.first.next = n
	l.size++
	return nil
}

// normalize maps a possibly negative index onto [0, upper]; negative
// indices count from the end.
func (l *linkedlist) normalize(index, upper int) (int, error) {
	if index < 0 {
		index += l.size
	}
	if index < 0 || index > upper {
		return 0, boundserr
	}
	return index, nil
}

func (l *linkedlist) walk(steps int) *iterator {
	it := l.Iterator()
	for i := 0; i < steps; i++ {
		_, _ = it.Next()
	}
	return it
}

// Insert places v at index: 0 prepends, Size() appends, anything between
// splices through a short lived iterator.
func (l *linkedlist) Insert(index int, v Value) error {
	i, err := l.normalize(index, l.size)
	if err != nil {
		return err
	}
	switch i {
	case 0:
		return l.Prepend(v)
	case l.size:
		return l.Append(v)
	}
	if err := l.walk(i).Insert(v); err != nil {
		return err
	}
	l.size++ // iterator splices leave size to the list
	return nil
}

func (l *linkedlist) Remove(index int) (Value, error) {
	var zero Value
	i, err := l.normalize(index, l.size-1)
	if err != nil {
		return zero, err
	}
	v, err := l.walk(i).Remove()
	if err != nil {
		return zero, err
	}
	l.size-- // iterator splices leave size to the list
	return v, nil
}

func (l *linkedlist) Get(index int) (Value, error) {
	var zero Value
	i, err := l.normalize(index, l.size-1)
	if err != nil {
		return zero, err
	}
	v, _ := l.walk(i).Current()
	return v, nil
}

func (l *linkedlist) Contains(v Value) bool {
	it := l.Iterator()
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		if l.eq(w, v) {
			return true
		}
	}
	return false
}

// CalculateSize counts links by walking the chain; it cross-checks the
// maintained counter.
func (l *linkedlist) CalculateSize() int {
	size := 0
	it := l.Iterator()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		size++
	}
	return size
}

func (l *linkedlist) Clear() {
	it := l.Iterator()
	for it.HasNext() {
		_, _ = it.Remove()
	}
	l.size = 0
}

// All reports whether p holds for every element; true on an empty list.
func (l *linkedlist) All(p ValuePredicate, extra interface{}) bool {
	for it := l.Iterator(); it.HasNext(); {
		v, _ := it.Current()
		if !p(v, extra) {
			return false
		}
		_, _ = it.Next()
	}
	return true
}

// Any reports whether p holds for at least one element; false on an empty
// list.
func (l *linkedlist) Any(p ValuePredicate, extra interface{}) bool {
	for it := l.Iterator(); it.HasNext(); {
		v, _ := it.Current()
		if p(v, extra) {
			return true
		}
		_, _ = it.Next()
	}
	return false
}

// ApplyToAll replaces every element with fn(old, extra), front to back. The
// sentinel is never visited.
func (l *linkedlist) ApplyToAll(fn ValueApply, extra interface{}) {
	for cursor := l.first.next; cursor != nil; cursor = cursor.next {
		cursor.data = fn(cursor.data, extra)
	}
}

func (l *linkedlist) Iterator() *iterator {
	return NewIterator(l)
}

func (l *linkedlist) CyclicIterator() *cycliciterator {
	return NewCyclicIterator(l)
}

// endregion

// region Iterator

// iterator keeps curr one link behind the logical current element, so
// Insert and Remove are constant time splices.
type iterator struct {
	curr *link
	list *linkedlist
}

func NewIterator(list *linkedlist) *iterator {
	return &iterator{curr: list.first, list: list}
}

func (it *iterator) HasNext() bool {
	return it.curr.next != nil
}

func (it *iterator) Next() (Value, bool) {
	var zero Value
	if !it.HasNext() {
		return zero, false
	}
	it.curr = it.curr.next
	return it.curr.data, true
}

// Current returns what Next would return, without advancing.
func (it *iterator) Current() (Value, bool) {
	var zero Value
	if !it.HasNext() {
		return zero, false
	}
	return it.curr.next.data, true
}

// Remove unlinks the logical current element. The list size counter is
// deliberately left alone; list level calls own that bookkeeping.
func (it *iterator) Remove() (Value, error) {
	var zero Value
	if !it.HasNext() {
		return zero, boundserr
	}
	gone := it.curr.next
	it.curr.next = gone.next
	if gone == it.list.last {
		it.list.last = it.curr
	}
	gone.next = nil
	return gone.data, nil
}

// Insert splices v between the cursor and the logical current element; at
// the end of a traversal it grows the tail. The size counter is left
// alone, same as Remove.
func (it *iterator) Insert(v Value) error {
	if it.list.full() {
		return capacityerr
	}
	n := newlink(v, it.curr.next)
	it.curr.next = n
	if n.next == nil {
		it.list.last = n
	}
	return nil
}

func (it *iterator) Reset() {
	it.curr = it.list.first
}

// endregion

// region CyclicIterator

// cycliciterator wraps to the first element when the chain is exhausted; on
// an empty list Next reports false instead of spinning.
type cycliciterator struct {
	iterator
}

func NewCyclicIterator(list *linkedlist) *cycliciterator {
	return &cycliciterator{iterator{curr: list.first, list: list}}
}

func (it *cycliciterator) Next() (Value, bool) {
	if v, ok := it.iterator.Next(); ok {
		return v, ok
	}
	it.Reset()
	return it.iterator.Next()
}

func (it *cycliciterator) HasNext() bool {
	return it.list.first.next != nil
}

// endregion
