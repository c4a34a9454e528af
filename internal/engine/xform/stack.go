// Package xform provides the transform stack used to compose nested model
// matrices while walking the scene.
package xform

import (
	"errors"
	"fmt"

	"github.com/Faultbox/woodland/pkg/math"
)

var (
	// ErrEmpty is returned by Current when nothing has been pushed.
	ErrEmpty = errors.New("transform stack is empty")

	// ErrUnderflow is returned by Pop when there is nothing to pop.
	ErrUnderflow = errors.New("transform stack underflow")

	// ErrUnbalanced is returned by Expect when pushes and pops did not pair up.
	ErrUnbalanced = errors.New("transform stack unbalanced")
)

// Stack is a LIFO of composed affine transforms. The zero value is ready to use.
type Stack struct {
	entries []math.Mat4
}

// New creates a stack with room for the given nesting depth.
func New(capacity int) *Stack {
	return &Stack{entries: make([]math.Mat4, 0, capacity)}
}

// Push composes m onto the current top (identity when empty) and pushes the product.
func (s *Stack) Push(m math.Mat4) {
	if n := len(s.entries); n > 0 {
		m = s.entries[n-1].Mul(m)
	}
	s.entries = append(s.entries, m)
}

// Pop discards the top entry.
func (s *Stack) Pop() error {
	n := len(s.entries)
	if n == 0 {
		return ErrUnderflow
	}
	s.entries = s.entries[:n-1]
	return nil
}

// Current returns the top entry without popping it.
func (s *Stack) Current() (math.Mat4, error) {
	n := len(s.entries)
	if n == 0 {
		return math.Mat4{}, ErrEmpty
	}
	return s.entries[n-1], nil
}

// Depth returns the number of entries.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Reset drops every entry, keeping the allocation.
func (s *Stack) Reset() {
	s.entries = s.entries[:0]
}

// Expect checks that the stack is at the given depth, e.g. zero at the
// end of a frame.
func (s *Stack) Expect(depth int) error {
	if s.Depth() != depth {
		return fmt.Errorf("%w: depth %d, want %d", ErrUnbalanced, s.Depth(), depth)
	}
	return nil
}
