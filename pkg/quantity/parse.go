package quantity

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/oneconcern/zcash-scale-calc/pkg/quantity/status"
	"github.com/shopspring/decimal"
)

var fromSuperscript = func() map[rune]rune {
	m := make(map[rune]rune, len(superscriptDigits))
	for ascii, sup := range superscriptDigits {
		m[sup] = ascii
	}
	return m
}()

// Parse reads a quantity as rendered by Quantity.String or Quantity.Format.
//
// The accepted syntax is a decimal magnitude, optionally followed by a dimension:
//
//	10000
//	10000 COMMIT·SEC⁻¹
//	10000 COMMIT*SEC^-1
//	10000 COMMIT/SEC
//
// Unit names met while parsing are interned in the registry.
func (r *Registry) Parse(s string) (Quantity, error) {
	m, unitText, err := splitQuantity(s)
	if err != nil {
		return Quantity{}, err
	}
	dim, err := r.ParseDimension(unitText)
	if err != nil {
		return Quantity{}, err
	}
	return New(m, dim), nil
}

// ParseAs reads a quantity expected in dimension dim.
//
// A bare number takes the dimension dim, e.g. "200" is 200 YEAR when dim is YEAR.
// Any unit written after the number must reduce to dim, or ParseAs fails with
// status.ErrUnitMismatch: "3 SEC·SEC⁻¹" is not a number of years.
func (r *Registry) ParseAs(s string, dim Dimension) (Quantity, error) {
	m, unitText, err := splitQuantity(s)
	if err != nil {
		return Quantity{}, err
	}
	if unitText == "" {
		return New(m, dim), nil
	}
	got, err := r.ParseDimension(unitText)
	if err != nil {
		return Quantity{}, err
	}
	if err := New(m, got).Expect(dim); err != nil {
		return Quantity{}, err
	}
	return New(m, got), nil
}

// splitQuantity separates the magnitude from the unit text, trimmed
func splitQuantity(s string) (decimal.Decimal, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, "", status.ErrParse.Detailf("empty quantity")
	}
	magText, unitText := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		magText, unitText = s[:i], strings.TrimSpace(s[i:])
	}
	m, err := parseMagnitude(magText)
	if err != nil {
		return decimal.Decimal{}, "", err
	}
	return m, unitText, nil
}

// ParseDimension reads a dimension as rendered by Dimension.String.
//
// An empty string or "1" is dimensionless. A single "/" may separate
// numerator and denominator factors.
func (r *Registry) ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	num, den := s, ""
	if i := strings.Index(s, "/"); i >= 0 {
		num, den = s[:i], s[i+1:]
		if strings.TrimSpace(den) == "" || strings.Contains(den, "/") {
			return Dimension{}, status.ErrParse.Detailf("invalid dimension %q", s)
		}
	}
	dim, err := r.parseFactors(num, 1)
	if err != nil {
		return Dimension{}, err
	}
	if den == "" {
		return dim, nil
	}
	denominator, err := r.parseFactors(den, -1)
	if err != nil {
		return Dimension{}, err
	}
	return dim.Mul(denominator), nil
}

func (r *Registry) parseFactors(s string, sign int) (Dimension, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "1" {
		return Dimension{}, nil
	}
	fields := strings.FieldsFunc(s, func(c rune) bool {
		return c == '·' || c == '*' || unicode.IsSpace(c)
	})
	var dim Dimension
	for _, field := range fields {
		name, exp, err := parseFactor(field)
		if err != nil {
			return Dimension{}, err
		}
		dim = dim.Mul(r.Unit(name).Dimension().Pow(sign * exp))
	}
	return dim, nil
}

func parseFactor(s string) (string, int, error) {
	end := strings.IndexFunc(s, func(c rune) bool {
		return c != '_' && !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})
	if end < 0 {
		end = len(s)
	}
	name, expText := s[:end], s[end:]
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		return "", 0, status.ErrParse.Detailf("invalid unit %q", s)
	}
	if expText == "" {
		return name, 1, nil
	}

	if strings.HasPrefix(expText, "^") {
		expText = expText[1:]
	} else {
		var b strings.Builder
		for _, c := range expText {
			ascii, ok := fromSuperscript[c]
			if !ok {
				return "", 0, status.ErrParse.Detailf("invalid exponent in %q", s)
			}
			b.WriteRune(ascii)
		}
		expText = b.String()
	}
	exp, err := strconv.Atoi(expText)
	if err != nil {
		return "", 0, status.ErrParse.Detailf("invalid exponent in %q", s).Wrap(err)
	}
	return name, exp, nil
}

func parseMagnitude(s string) (decimal.Decimal, error) {
	m, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, status.ErrParse.Detailf("invalid magnitude %q", s).Wrap(err)
	}
	return m, nil
}
