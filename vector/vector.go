// Package vector provides a dynamic array of fixed-width members, the
// sequential counterpart to the trie container. Members are opaque byte
// blobs of a width fixed at Init; growth is amortized with a configurable
// minimum step so that many small appends do not cause many small resizes.
package vector

import (
	"errors"

	"github.com/dkrmr/libgenerics/gerror"
)

// DefaultGrowMin is the default minimum growth step, in members.
const DefaultGrowMin = 8

var (
	// ErrNilVector indicates the vector handle is nil, never initialized,
	// or destroyed.
	ErrNilVector = gerror.New(gerror.NullStructure, "vector: nil or uninitialized vector")

	// ErrIndexOutOfBound indicates an index at or beyond Len.
	ErrIndexOutOfBound = gerror.New(gerror.AccessOutOfBound, "vector: index out of bound")

	// ErrMemberSize indicates a member or output buffer whose length does
	// not match the vector's member width.
	ErrMemberSize = errors.New("vector: member size mismatch")

	// ErrNegativeSize indicates a negative capacity, width, or member
	// count.
	ErrNegativeSize = errors.New("vector: size must not be negative")

	// ErrGrowStep indicates a growth step below one member.
	ErrGrowStep = errors.New("vector: growth step must be positive")
)

// Vector is a dynamic array of fixed-width byte-blob members. The zero
// value is uninitialized; call Init (or use New) before any other
// operation.
type Vector struct {
	data       []byte
	size       int
	memberSize int
	growMin    int
}

// New allocates and initializes a vector of memberSize-byte members with
// room for at least initialCap of them.
func New(initialCap, memberSize int) (*Vector, error) {
	v := &Vector{}
	if err := v.Init(initialCap, memberSize); err != nil {
		return nil, err
	}
	return v, nil
}

// Init initializes v to an empty vector of memberSize-byte members. The
// initial buffer holds max(initialCap, DefaultGrowMin) members.
// Reinitializing a populated vector discards its contents.
func (v *Vector) Init(initialCap, memberSize int) error {
	if v == nil {
		return ErrNilVector
	}
	if initialCap < 0 || memberSize < 0 {
		return ErrNegativeSize
	}
	v.growMin = DefaultGrowMin
	if initialCap < v.growMin {
		initialCap = v.growMin
	}
	v.data = make([]byte, initialCap*memberSize)
	v.size = 0
	v.memberSize = memberSize
	return nil
}

// Destroy releases the buffer and returns v to the uninitialized state.
// The Vector itself remains usable via a later Init.
func (v *Vector) Destroy() error {
	if v == nil {
		return ErrNilVector
	}
	v.data = nil
	v.size = 0
	v.memberSize = 0
	v.growMin = 0
	return nil
}

// Len returns the number of members.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// MemberSize returns the fixed member width in bytes.
func (v *Vector) MemberSize() int {
	if v == nil {
		return 0
	}
	return v.memberSize
}

// GrowMin returns the minimum growth step, in members.
func (v *Vector) GrowMin() int {
	if v == nil {
		return 0
	}
	return v.growMin
}

// SetGrowMin sets the minimum growth step, in members. Steps below 1 are
// rejected; a large step trades memory for fewer reallocations.
func (v *Vector) SetGrowMin(n int) error {
	if !v.initialized() {
		return ErrNilVector
	}
	if n < 1 {
		return ErrGrowStep
	}
	v.growMin = n
	return nil
}

// Resize adjusts the buffer to hold n members. Growth by less than the
// minimum step is rounded up to the step; shrinking floors the buffer at
// the step and truncates Len when n falls below it.
func (v *Vector) Resize(n int) error {
	if !v.initialized() {
		return ErrNilVector
	}
	if n < 0 {
		return ErrNegativeSize
	}
	if n < v.size {
		v.size = n
	}

	proposed := n * v.memberSize
	minStep := v.growMin * v.memberSize
	var actual int
	if proposed >= len(v.data) {
		if proposed-len(v.data) < minStep {
			actual = len(v.data) + minStep
		} else {
			actual = proposed
		}
	} else {
		if proposed < minStep {
			actual = minStep
		} else {
			actual = proposed
		}
	}
	if actual != len(v.data) {
		next := make([]byte, actual)
		copy(next, v.data)
		v.data = next
	}
	return nil
}

// Add appends a copy of elem, growing the buffer if needed. elem must be
// exactly MemberSize bytes.
func (v *Vector) Add(elem []byte) error {
	if !v.initialized() {
		return ErrNilVector
	}
	if len(elem) != v.memberSize {
		return ErrMemberSize
	}
	if v.memberSize > 0 && (v.size+1)*v.memberSize > len(v.data) {
		if err := v.Resize(v.size + 1); err != nil {
			return err
		}
	}
	copy(v.data[v.size*v.memberSize:], elem)
	v.size++
	return nil
}

// At copies member i into out, which must be at least MemberSize bytes.
func (v *Vector) At(i int, out []byte) error {
	if !v.initialized() {
		return ErrNilVector
	}
	if i < 0 || i >= v.size {
		return ErrIndexOutOfBound
	}
	if len(out) < v.memberSize {
		return ErrMemberSize
	}
	copy(out, v.member(i))
	return nil
}

// SetAt overwrites member i with a copy of elem, which must be exactly
// MemberSize bytes.
func (v *Vector) SetAt(i int, elem []byte) error {
	if !v.initialized() {
		return ErrNilVector
	}
	if i < 0 || i >= v.size {
		return ErrIndexOutOfBound
	}
	if len(elem) != v.memberSize {
		return ErrMemberSize
	}
	copy(v.member(i), elem)
	return nil
}

// Slice returns member i as a view aliasing the vector's buffer. The view
// is invalidated by any later Resize or growing Add.
func (v *Vector) Slice(i int) ([]byte, error) {
	if !v.initialized() {
		return nil, ErrNilVector
	}
	if i < 0 || i >= v.size {
		return nil, ErrIndexOutOfBound
	}
	return v.member(i), nil
}

func (v *Vector) member(i int) []byte {
	off := i * v.memberSize
	return v.data[off : off+v.memberSize]
}

// initialized reports whether v has a live buffer. A zero-width vector is
// initialized when growMin is set.
func (v *Vector) initialized() bool {
	return v != nil && v.growMin > 0
}
