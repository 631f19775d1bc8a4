package orbit

import (
	"errors"
	"fmt"

	"github.com/Faultbox/orrery/internal/sim"
	"github.com/Faultbox/orrery/pkg/math"
)

// System table errors.
var (
	ErrDuplicateBody = errors.New("duplicate body name")
	ErrUnknownParent = errors.New("unknown parent body")
	ErrParentCycle   = errors.New("parent cycle")
	ErrUnnamedBody   = errors.New("body has no name")
	ErrUnknownBody   = errors.New("unknown body")
)

// System is an ordered, validated table of bodies.
type System struct {
	bodies []Body
	index  map[string]int
	chains [][]Body
}

// NewSystem validates the table and resolves every parent chain.
func NewSystem(bodies []Body) (*System, error) {
	s := &System{
		bodies: append([]Body(nil), bodies...),
		index:  make(map[string]int, len(bodies)),
	}

	for i, b := range s.bodies {
		if b.Name == "" {
			return nil, fmt.Errorf("body %d: %w", i, ErrUnnamedBody)
		}
		if _, ok := s.index[b.Name]; ok {
			return nil, fmt.Errorf("%s: %w", b.Name, ErrDuplicateBody)
		}
		s.index[b.Name] = i
	}

	s.chains = make([][]Body, len(s.bodies))
	for i, b := range s.bodies {
		chain, err := s.resolve(b)
		if err != nil {
			return nil, err
		}
		s.chains[i] = chain
	}

	return s, nil
}

// resolve walks the parent links of b, nearest first.
func (s *System) resolve(b Body) ([]Body, error) {
	var chain []Body
	seen := map[string]bool{b.Name: true}
	for name := b.Parent; name != ""; {
		i, ok := s.index[name]
		if !ok {
			return nil, fmt.Errorf("%s: %w %q", b.Name, ErrUnknownParent, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%s: %w through %q", b.Name, ErrParentCycle, name)
		}
		seen[name] = true
		p := s.bodies[i]
		chain = append(chain, p)
		name = p.Parent
	}
	return chain, nil
}

// Bodies returns the bodies in table order.
func (s *System) Bodies() []Body {
	return s.bodies
}

// Len returns the number of bodies.
func (s *System) Len() int {
	return len(s.bodies)
}

// Body looks up a body by name.
func (s *System) Body(name string) (Body, bool) {
	i, ok := s.index[name]
	if !ok {
		return Body{}, false
	}
	return s.bodies[i], true
}

// Chain returns the ancestors of the named body, nearest first.
func (s *System) Chain(name string) ([]Body, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBody, name)
	}
	return s.chains[i], nil
}

// ModelMatrix returns the model matrix of the named body for st.
func (s *System) ModelMatrix(name string, st *sim.State) (math.Mat4, error) {
	i, ok := s.index[name]
	if !ok {
		return math.Identity(), fmt.Errorf("%w %q", ErrUnknownBody, name)
	}
	return ModelMatrix(s.bodies[i], s.chains[i], st.Elapsed, st.SpinAngle, st.Speed), nil
}

// Transforms fills dst with every body's model matrix in table order and
// returns it. dst is reused when it has enough capacity.
func (s *System) Transforms(st *sim.State, dst []math.Mat4) []math.Mat4 {
	dst = dst[:0]
	for i, b := range s.bodies {
		dst = append(dst, ModelMatrix(b, s.chains[i], st.Elapsed, st.SpinAngle, st.Speed))
	}
	return dst
}
