package chain

import (
  "github.com/snwfog/chain.go/elem"
)

// link is one node of a chain. A link is owned by exactly one predecessor;
// the next pointer is the only route to it.
type link struct {
  value elem.Value
  next  *link
}

// newLink allocates a single node holding value, wired to next.
func newLink(value elem.Value, next *link) *link {
  return &link{value: value, next: next}
}

// newSentinel allocates the permanent head of a chain. The sentinel is
// never unlinked, never compared and never visited by traversal; its value
// slot stays zero for the life of the chain.
func newSentinel() *link {
  return &link{}
}
