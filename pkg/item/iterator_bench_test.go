package item

import (
	"testing"

	"github.com/snwfog/chain.go/chain"
	"github.com/snwfog/chain.go/elem"
)

func BenchmarkCyclicIterator(b *testing.B) {
	ll := chain.NewLinkedList(itemEq)
	for i := 0; i < 10; i++ {
		_ = ll.Append(elem.Ptr(New(i)))
	}

	cit := ll.CyclicIterator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cit.Next()
	}
}
