package item

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/snwfog/chain.go/chain"
	"github.com/snwfog/chain.go/elem"
)

func TestCyclicIterator1(t *testing.T) {
	ll := chain.NewLinkedList(itemEq)
	for i := 0; i < 3; i++ {
		assert.NoError(t, ll.Append(elem.Ptr(New(i))))
	}

	cit := ll.CyclicIterator()

	n1, ok := cit.Next()
	assert.True(t, ok)
	assert.Equal(t, 0, n1.Ptr().(*Item).Id)

	n2, ok := cit.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, n2.Ptr().(*Item).Id)

	n3, ok := cit.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, n3.Ptr().(*Item).Id)

	n11, ok := cit.Next()
	assert.True(t, ok)
	assert.True(t, n1.Ptr() == n11.Ptr())
	assert.Equal(t, 0, n11.Ptr().(*Item).Id)

	n22, ok := cit.Next()
	assert.True(t, ok)
	assert.True(t, n2.Ptr() == n22.Ptr())
	assert.Equal(t, 1, n22.Ptr().(*Item).Id)
}

// Items are shared across goroutines, lists are not. Each worker rings
// over the same items with its own list and bumps their counters.
func TestConcurrentAccessCount(t *testing.T) {
	items := make([]*Item, 10)
	for i := range items {
		items[i] = New(i)
	}

	workers, laps := 4, 250
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			ll := chain.NewLinkedList(itemEq)
			for _, it := range items {
				if err := ll.Append(elem.Ptr(it)); err != nil {
					return err
				}
			}

			cit := ll.CyclicIterator()
			for i := 0; i < laps*len(items); i++ {
				v, ok := cit.Next()
				if !ok {
					return errors.New("ring must never run dry")
				}

				v.Ptr().(*Item).AccessCount.Inc()
			}

			return nil
		})
	}

	assert.NoError(t, g.Wait())
	for _, it := range items {
		assert.Equal(t, int64(workers*laps), it.AccessCount.Load())
	}
}
