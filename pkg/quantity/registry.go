package quantity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Unit is an atomic named dimension, e.g. SEC or COMMIT.
//
// Units with the same name are the same dimension, whatever registry they come from.
type Unit struct {
	name string
}

// Name of the unit
func (u *Unit) Name() string { return u.name }

func (u *Unit) String() string { return u.name }

// Dimension made of this unit alone
func (u *Unit) Dimension() Dimension {
	return Dimension{exps: map[string]int{u.name: 1}}
}

// One is the quantity 1 of this unit
func (u *Unit) One() Quantity {
	return u.Of(1)
}

// Of builds an integral quantity of this unit
func (u *Unit) Of(magnitude int64) Quantity {
	return FromInt(magnitude, u.Dimension())
}

// Registry interns units by name.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	units map[string]*Unit
}

// NewRegistry builds a registry, optionally seeded with some unit names
func NewRegistry(names ...string) *Registry {
	r := &Registry{units: make(map[string]*Unit, len(names))}
	for _, name := range names {
		r.Unit(name)
	}
	return r
}

// Unit returns the interned unit for name, creating it if needed.
func (r *Registry) Unit(name string) *Unit {
	if u, ok := r.units[name]; ok {
		return u
	}
	u := &Unit{name: name}
	r.units[name] = u
	return u
}

// Lookup an already interned unit
func (r *Registry) Lookup(name string) (*Unit, bool) {
	u, ok := r.units[name]
	return u, ok
}

// Names of all interned units, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Quantity builds a quantity from a decimal string and a dimension.
//
// It fails with status.ErrParse when the magnitude is not a decimal number.
func (r *Registry) Quantity(magnitude string, dim Dimension) (Quantity, error) {
	m, err := parseMagnitude(magnitude)
	if err != nil {
		return Quantity{}, err
	}
	return New(m, dim), nil
}

// Dimensionless builds a quantity without unit
func Dimensionless(magnitude decimal.Decimal) Quantity {
	return Quantity{magnitude: magnitude}
}
