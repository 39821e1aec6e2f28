/*
Package quantity provides a dimensional quantity calculator.

A Quantity pairs an arbitrary-precision decimal magnitude with a Dimension,
the product of atomic units raised to integer exponents (e.g. COMMIT·SEC⁻¹).

Units are interned by name in a Registry. There is no package-level registry:
callers construct one and share it with whatever needs to build or parse
quantities.

	reg := quantity.NewRegistry()
	commit, sec := reg.Unit("COMMIT"), reg.Unit("SEC")
	rate, _ := commit.Of(10000).Div(sec.One())  // 10000 COMMIT·SEC⁻¹

Multiplication and division always succeed on dimensions. Addition, subtraction
and comparison require equal dimensions and fail with status.ErrUnitMismatch
otherwise.

Products are exact. Quotients are rounded to DivisionPrecision fractional digits,
logarithms to LogPrecision fractional digits.
*/
package quantity
