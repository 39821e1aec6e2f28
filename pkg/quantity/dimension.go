package quantity

import (
	"sort"
	"strconv"
	"strings"
)

// Dimension is a product of atomic units raised to non-zero integer exponents.
//
// The zero value is dimensionless. Dimensions are immutable: every operation
// returns a new value.
type Dimension struct {
	exps map[string]int
}

type factor struct {
	name string
	exp  int
}

// Exponent of the named unit in this dimension, 0 if absent
func (d Dimension) Exponent(name string) int {
	return d.exps[name]
}

// IsDimensionless is true when no unit remains in the dimension
func (d Dimension) IsDimensionless() bool {
	return len(d.exps) == 0
}

// Equal compares two dimensions in canonical form
func (d Dimension) Equal(o Dimension) bool {
	if len(d.exps) != len(o.exps) {
		return false
	}
	for name, exp := range d.exps {
		if o.exps[name] != exp {
			return false
		}
	}
	return true
}

// Mul returns the product of two dimensions: exponents are summed per unit.
func (d Dimension) Mul(o Dimension) Dimension {
	return d.combine(o, 1)
}

// Div returns the quotient of two dimensions: exponents of o are subtracted.
func (d Dimension) Div(o Dimension) Dimension {
	return d.combine(o, -1)
}

// Pow multiplies every exponent by n.
func (d Dimension) Pow(n int) Dimension {
	if n == 0 || d.IsDimensionless() {
		return Dimension{}
	}
	exps := make(map[string]int, len(d.exps))
	for name, exp := range d.exps {
		exps[name] = exp * n
	}
	return Dimension{exps: exps}
}

func (d Dimension) combine(o Dimension, sign int) Dimension {
	exps := make(map[string]int, len(d.exps)+len(o.exps))
	for name, exp := range d.exps {
		exps[name] = exp
	}
	for name, exp := range o.exps {
		exps[name] += sign * exp
		if exps[name] == 0 {
			delete(exps, name)
		}
	}
	if len(exps) == 0 {
		return Dimension{}
	}
	return Dimension{exps: exps}
}

// factors in display order: positive exponents first, then negative ones,
// each group sorted by unit name.
func (d Dimension) factors() []factor {
	fs := make([]factor, 0, len(d.exps))
	for name, exp := range d.exps {
		fs = append(fs, factor{name: name, exp: exp})
	}
	sort.Slice(fs, func(i, j int) bool {
		if (fs[i].exp > 0) != (fs[j].exp > 0) {
			return fs[i].exp > 0
		}
		return fs[i].name < fs[j].name
	})
	return fs
}

// String renders the canonical form of the dimension, e.g. "COMMIT·SEC⁻¹".
// A dimensionless value renders as the empty string.
func (d Dimension) String() string {
	fs := d.factors()
	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		if f.exp == 1 {
			parts = append(parts, f.name)
			continue
		}
		parts = append(parts, f.name+superscript(f.exp))
	}
	return strings.Join(parts, factorSeparator)
}

const factorSeparator = "·"

var superscriptDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻', '+': '⁺',
}

func superscript(n int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(n) {
		b.WriteRune(superscriptDigits[r])
	}
	return b.String()
}
