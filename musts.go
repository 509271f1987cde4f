package decimal

import "fmt"

// This file provides wrappers around the division methods, which panic instead
// of returning an error. The wrappers are handy for cases where the divisor is
// a known constant, but should be avoided if there is any doubt about the
// inputs.

// MustQuo is like [Decimal.Quo] but panics if the quotient cannot be computed.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("%q.MustQuo(%q) failed: %v", d, e, err))
	}
	return f
}

// MustQuoRound is like [Decimal.QuoRound] but panics if the quotient cannot be
// computed.
func (d Decimal) MustQuoRound(e Decimal, scale int) Decimal {
	f, err := d.QuoRound(e, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.MustQuoRound(%q, %v) failed: %v", d, e, scale, err))
	}
	return f
}

// MustQuoRem is like [Decimal.QuoRem] but panics if the quotient and remainder
// cannot be computed.
func (d Decimal) MustQuoRem(e Decimal) (q, r Decimal) {
	q, r, err := d.QuoRem(e)
	if err != nil {
		panic(fmt.Sprintf("%q.MustQuoRem(%q) failed: %v", d, e, err))
	}
	return q, r
}

// MustInv is like [Decimal.Inv] but panics if the inverse cannot be computed.
func (d Decimal) MustInv() Decimal {
	f, err := d.Inv()
	if err != nil {
		panic(fmt.Sprintf("%q.MustInv() failed: %v", d, err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics if the power cannot be computed.
func (d Decimal) MustPow(exp int) Decimal {
	f, err := d.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("%q.MustPow(%v) failed: %v", d, exp, err))
	}
	return f
}
