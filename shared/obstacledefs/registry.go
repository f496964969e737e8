package obstacledefs

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownDefinition = errors.New("unknown obstacle definition")
	ErrInvalidDefinition = errors.New("invalid obstacle definition")
)

// Registry indexes definitions by id and by wire type index. Indices are
// assigned in registration order, so both ends must register the same
// definitions in the same order.
type Registry struct {
	byID map[string]*Definition
	list []*Definition
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Definition)}
}

// Register validates def, assigns its index and stores a copy.
func (r *Registry) Register(def Definition) (*Definition, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}
	if _, dup := r.byID[def.ID]; dup {
		return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidDefinition, def.ID)
	}
	if len(r.list) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: registry full", ErrInvalidDefinition)
	}

	def.Index = uint16(len(r.list))
	d := &def
	r.byID[d.ID] = d
	r.list = append(r.list, d)
	return d, nil
}

func (r *Registry) Lookup(id string) (*Definition, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefinition, id)
	}
	return d, nil
}

func (r *Registry) ByIndex(index uint16) (*Definition, error) {
	if int(index) >= len(r.list) {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownDefinition, index)
	}
	return r.list[index], nil
}

func (r *Registry) Len() int {
	return len(r.list)
}

// All returns the definitions in index order.
func (r *Registry) All() []*Definition {
	out := make([]*Definition, len(r.list))
	copy(out, r.list)
	return out
}
