package strlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strEq(a, b string) bool { return a == b }

func drain(ll *linkedlist) []string {
	vs := make([]string, 0, ll.CalculateSize())
	it := ll.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		vs = append(vs, v)
	}
	return vs
}

func TestCreate(t *testing.T) {
	ll := NewStringLinkedList(strEq)
	assert.Equal(t, 0, ll.Size())
	assert.True(t, ll.IsEmpty())
}

func TestInsert1(t *testing.T) {
	ll := NewStringLinkedList(strEq)

	assert.NoError(t, ll.Append("one"))
	assert.NoError(t, ll.Append("three"))
	assert.NoError(t, ll.Insert(1, "two"))
	assert.NoError(t, ll.Prepend("zero"))

	assert.Equal(t, []string{"zero", "one", "two", "three"}, drain(ll))
	assert.Equal(t, ll.Size(), ll.CalculateSize())
}

func TestGet(t *testing.T) {
	ll := NewStringLinkedList(strEq)
	_ = ll.Append("one")
	_ = ll.Append("two")

	v, err := ll.Get(-1)
	assert.NoError(t, err)
	assert.Equal(t, "two", v)

	v, err = ll.Get(5)
	assert.Equal(t, boundserr, err)
	assert.EqualError(t, err, "index out of bounds")
	assert.Equal(t, "", v)
}

func TestRemove(t *testing.T) {
	ll := NewStringLinkedList(strEq)
	_ = ll.Append("one")
	_ = ll.Append("two")
	_ = ll.Append("three")

	v, err := ll.Remove(1)
	assert.NoError(t, err)
	assert.Equal(t, "two", v)
	assert.Equal(t, []string{"one", "three"}, drain(ll))
}

func TestContains(t *testing.T) {
	ll := NewStringLinkedList(strEq)
	_ = ll.Append("one")
	_ = ll.Append("two")

	assert.True(t, ll.Contains("two"))
	assert.False(t, ll.Contains("four"))
}

func TestAllAny(t *testing.T) {
	ll := NewStringLinkedList(strEq)
	_ = ll.Append("ab")
	_ = ll.Append("abc")

	shorter := func(v string, extra interface{}) bool { return len(v) < extra.(int) }
	assert.True(t, ll.All(shorter, 4))
	assert.False(t, ll.All(shorter, 3))
	assert.True(t, ll.Any(shorter, 3))
	assert.False(t, ll.Any(shorter, 2))
}

func TestApplyToAll(t *testing.T) {
	ll := NewStringLinkedList(strEq)
	_ = ll.Append("one")
	_ = ll.Append("two")

	ll.ApplyToAll(func(v string, extra interface{}) string {
		return strings.ToUpper(v) + extra.(string)
	}, "!")

	assert.Equal(t, []string{"ONE!", "TWO!"}, drain(ll))
}

func TestIterator1(t *testing.T) {
	ll := NewStringLinkedList(strEq)
	_ = ll.Append("one")
	_ = ll.Append("two")

	it := ll.Iterator()

	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	v, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, "two", v)

	v, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestCyclicIterator1(t *testing.T) {
	ll := NewStringLinkedList(strEq)
	_ = ll.Append("a")
	_ = ll.Append("b")

	it := ll.CyclicIterator()

	var walked []string
	for i := 0; i < 5; i++ {
		v, ok := it.Next()
		assert.True(t, ok)
		walked = append(walked, v)
	}

	assert.Equal(t, []string{"a", "b", "a", "b", "a"}, walked)
}
