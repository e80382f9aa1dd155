// Package elem defines the tagged value stored by the chain containers: one
// small struct that can carry a signed integer, an unsigned integer, a
// boolean, a float or an opaque caller-owned reference. The tag records what
// the producer stored; nothing enforces that readers agree: equality,
// predicate and apply functions interpret values by convention.
package elem

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dchest/siphash"

	"github.com/snwfog/chain.go/pkg/util"
)

// Kind tags the active variant of a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindUint
	KindBool
	KindFloat
	KindPtr
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindPtr:
		return "ptr"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a closed tagged union. Scalar payloads live in a single 64-bit
// word; reference payloads keep only the reference itself. The pointee is
// owned by the caller and must outlive any container holding the Value.
type Value struct {
	kind Kind
	bits uint64
	ref  interface{}
}

// Undefined is the conventional "no value here" placeholder, the integer
// -1. Iterator probes past the end of a chain return it. It is
// deliberately indistinguishable from a stored Int(-1).
var Undefined = Int(-1)

func Int(i int) Value {
	return Value{kind: KindInt, bits: uint64(int64(i))}
}

func Uint(u uint) Value {
	return Value{kind: KindUint, bits: uint64(u)}
}

func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.bits = 1
	}
	return v
}

func Float(f float64) Value {
	return Value{kind: KindFloat, bits: math.Float64bits(f)}
}

// Ptr wraps a caller-owned reference. The containers never copy, inspect or
// release the pointee.
func Ptr(p interface{}) Value {
	return Value{kind: KindPtr, ref: p}
}

// Kind reports which constructor produced v.
func (v Value) Kind() Kind {
	return v.kind
}

// The scalar accessors reinterpret the stored word, union style: reading a
// kind other than the one stored is allowed and simply reinterprets bits.

func (v Value) Int() int {
	return int(int64(v.bits))
}

func (v Value) Uint() uint {
	return uint(v.bits)
}

func (v Value) Bool() bool {
	return v.bits != 0
}

func (v Value) Float() float64 {
	return math.Float64frombits(v.bits)
}

func (v Value) Ptr() interface{} {
	return v.ref
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("int(%d)", v.Int())
	case KindUint:
		return fmt.Sprintf("uint(%d)", v.Uint())
	case KindBool:
		return fmt.Sprintf("bool(%t)", v.Bool())
	case KindFloat:
		return fmt.Sprintf("float(%g)", v.Float())
	case KindPtr:
		return fmt.Sprintf("ptr(%v)", v.ref)
	}
	return fmt.Sprintf("%s(%#x)", v.kind, v.bits)
}

// Identifier lets a reference payload carry its own 64-bit identity, used by
// Hash instead of content hashing.
type Identifier interface {
	Identity() uint64
}

const (
	// generated by splitting the md5 sum of "chain.go"
	sipHashKey1 = 0x5e1ef638f7d27b40
	sipHashKey2 = 0x3282f013240d4138
)

// Hash returns a stable 64-bit fingerprint of v. Two values built by the
// same constructor from equal inputs hash identically. Reference payloads
// must implement Identifier or be a string or []byte; anything else panics,
// as does a nil reference.
func (v Value) Hash() uint64 {
	if v.kind != KindPtr {
		var buf [9]byte
		binary.LittleEndian.PutUint64(buf[:8], v.bits)
		buf[8] = byte(v.kind)
		return siphash.Hash(sipHashKey1, sipHashKey2, buf[:])
	}
	if util.IsNil(v.ref) {
		panic("elem: hash of nil reference")
	}
	if id, ok := v.ref.(Identifier); ok {
		return id.Identity()
	}
	switch x := v.ref.(type) {
	case string:
		return siphash.Hash(sipHashKey1, sipHashKey2, []byte(x))
	case []byte:
		return siphash.Hash(sipHashKey1, sipHashKey2, x)
	}
	panic(fmt.Errorf("elem: unsupported reference type %T", v.ref))
}
