package decimal

import (
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Decimal type is a representation of a finite decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is a struct with three logical parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: an integer indicating the position of the floating decimal point.
//   - Coefficient: an integer value of the decimal without the decimal point.
//
// The scale determines the position of the decimal point in the coefficient.
// For example, a decimal with a coefficient of 12345 and a scale of 2
// represents the value 123.45.
// Such approach allows for multiple representations of the same numerical
// value. For example, 1, 1.0, and 1.00 all have the same value, but they
// have different scales and coefficients.
//
// The coefficient is stored in the coef field while the value has at most 19
// digits, and in the bcoef field beyond that. The big form is canonical: it is
// used only when the coefficient does not fit the fast form, and it is never
// mutated after construction, so decimals sharing it remain immutable.
//
// One important aspect of the decimal is that it does not support
// special values such as NaN, Infinity, or signed zeros.
type Decimal struct {
	neg   bool  // indicates whether the decimal is negative
	scale int32 // the position of the floating decimal point
	coef  fint  // the coefficient in the fast form
	bcoef *bint // the coefficient in the big form, nil if the fast form is in use
}

// maxScale bounds the scale so that it always fits the scale field.
const maxScale = math.MaxInt32

var (
	// ErrInvalidFormat is returned (wrapped) by [Parse], [ParseBCD], and the
	// unmarshaling methods when the input does not represent a decimal.
	ErrInvalidFormat = errors.New("invalid decimal")

	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInexactDivision is returned by [Decimal.Quo], [Decimal.Inv], and
	// [Decimal.Pow] when the exact quotient has no terminating decimal
	// expansion, for example, 1 divided by 3.
	ErrInexactDivision = errors.New("inexact division")

	errCoefficientOverflow = errors.New("coefficient overflow")
	errScaleRange          = errors.New("scale out of range")
	errSignConflict        = errors.New("different signs")
	errFracRange           = errors.New("fractional part out of range")
	errClampRange          = errors.New("min is greater than max")
)

var (
	one     = Decimal{coef: 1}
	hundred = Decimal{coef: 100}
)

// newUnsafe creates a new decimal without checking the scale and coefficient.
func newUnsafe(neg bool, coef fint, scale int32) Decimal {
	if coef == 0 {
		neg = false
	}
	return Decimal{neg: neg, coef: coef, scale: scale}
}

// newSafe creates a new decimal in the fast form, checking the scale and
// coefficient.
func newSafe(neg bool, coef fint, scale int) (Decimal, error) {
	switch {
	case scale < 0 || scale > maxScale:
		return Decimal{}, errScaleRange
	case coef > maxFint:
		return Decimal{}, errCoefficientOverflow
	}
	return newUnsafe(neg, coef, int32(scale)), nil
}

// newFromBint creates a new decimal from a (possibly pooled) big coefficient.
// The coefficient is copied, so the caller may reuse it.
func newFromBint(neg bool, coef *bint, scale int) (Decimal, error) {
	if coef.isFint() {
		return newSafe(neg, coef.fint(), scale)
	}
	if scale < 0 || scale > maxScale {
		return Decimal{}, errScaleRange
	}
	b := (*bint)(new(big.Int))
	b.setBint(coef)
	// The big form is never zero, so the sign needs no normalization here.
	return Decimal{neg: neg, scale: int32(scale), bcoef: b}, nil
}

// loadCoef copies the coefficient of d into z.
func (d Decimal) loadCoef(z *bint) {
	if d.bcoef != nil {
		z.setBint(d.bcoef)
	} else {
		z.setFint(d.coef)
	}
}

// coefString returns the decimal digits of the coefficient of d,
// without sign and without leading zeros.
func (d Decimal) coefString() string {
	if d.bcoef != nil {
		return d.bcoef.string()
	}
	return strconv.FormatUint(uint64(d.coef), 10)
}

// New returns a decimal equal to value / 10^scale.
// New returns an error if the scale is negative.
func New(value int64, scale int) (Decimal, error) {
	neg := value < 0
	coef := fint(value)
	if neg {
		coef = -coef
	}
	return newSafe(neg, coef, scale)
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(value int64, scale int) Decimal {
	d, err := New(value, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", value, scale, err))
	}
	return d
}

// NewFromInt64 converts a pair of integers, whole and fractional parts,
// to a (possibly negative) decimal equal to whole + frac / 10^scale.
// NewFromInt64 returns an error if:
//   - the scale is negative;
//   - frac / 10^scale is not within the range (-1, 1);
//   - the whole and fractional parts have different signs.
func NewFromInt64(whole, frac int64, scale int) (Decimal, error) {
	// Whole part
	w, err := New(whole, 0)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting integers: %w", err)
	}
	// Fractional part
	if whole > 0 && frac < 0 || whole < 0 && frac > 0 {
		return Decimal{}, fmt.Errorf("converting integers: %w", errSignConflict)
	}
	f, err := New(frac, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting integers: %w", err)
	}
	if !f.WithinOne() {
		return Decimal{}, fmt.Errorf("converting integers: %w", errFracRange)
	}
	return w.Add(f), nil
}

// NewFromFloat64 converts a float to a decimal equal to the shortest decimal
// representation of the float, the same digits [strconv.FormatFloat] renders.
// The conversion is exact with respect to that representation; no further
// digits are invented or dropped.
// NewFromFloat64 returns an error if the float is NaN or Infinity.
func NewFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, ErrInvalidFormat)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	d, err := Parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, err) // unexpected by design
	}
	return d, nil
}

// NewFromBigInt returns a decimal equal to value / 10^scale.
// A nil value is treated as zero.
// NewFromBigInt returns an error if the scale is negative.
func NewFromBigInt(value *big.Int, scale int) (Decimal, error) {
	if value == nil {
		return newSafe(false, 0, scale)
	}
	b := getBint()
	defer putBint(b)
	(*big.Int)(b).Abs(value)
	return newFromBint(value.Sign() < 0, b, scale)
}

// Zero returns a decimal with a value of 0 but the same scale as d.
func (d Decimal) Zero() Decimal {
	return newUnsafe(false, 0, d.scale)
}

// One returns a decimal with a value of 1 but the same scale as d.
func (d Decimal) One() Decimal {
	scale := d.Scale()
	if scale < maxFintPrec {
		return newUnsafe(false, pow10[scale], d.scale)
	}
	b := getBint()
	defer putBint(b)
	b.pow10(scale)
	f, err := newFromBint(false, b, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.One() failed: %v", d, err)) // unexpected by design
	}
	return f
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between d and the next larger decimal value with the same scale.
func (d Decimal) ULP() Decimal {
	return newUnsafe(false, 1, d.scale)
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits '.' digits | [sign] '.' digits | [sign] digits '.' | [sign] digits
//
// The scale of the result is the number of digits after the decimal point in
// the input, preserved exactly: parsing "0.050" yields a scale of 3.
// Parse does not trim whitespace and does not support exponential notation.
//
// Parse returns an error wrapping [ErrInvalidFormat] if the string does not
// represent a valid decimal number.
func Parse(s string) (Decimal, error) {
	d, err := parseFint(s)
	if err != nil {
		d, err = parseBint(s)
		if err != nil {
			return Decimal{}, err
		}
	}
	return d, nil
}

func parseFint(s string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		coef    fint
		scale   int
		hascoef bool
		ok      bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		coef, ok = coef.fsa(1, s[pos]-'0')
		if !ok {
			return Decimal{}, errCoefficientOverflow
		}
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			coef, ok = coef.fsa(1, s[pos]-'0')
			if !ok {
				return Decimal{}, errCoefficientOverflow
			}
			scale++
			pos++
		}
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidFormat)
	}
	if !hascoef {
		return Decimal{}, fmt.Errorf("no digits: %w", ErrInvalidFormat)
	}

	return newSafe(neg, coef, scale)
}

func parseBint(s string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		coef    *bint
		scale   int
		hascoef bool
	)

	coef = getBint()
	defer putBint(coef)
	coef.setFint(0)
	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		coef.fsa(coef, 1, fint(s[pos]-'0'))
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			coef.fsa(coef, 1, fint(s[pos]-'0'))
			scale++
			pos++
		}
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidFormat)
	}
	if !hascoef {
		return Decimal{}, fmt.Errorf("no digits: %w", ErrInvalidFormat)
	}

	return newFromBint(neg, coef, scale)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits '.' digits | [sign] digits
//
// The fractional part has exactly [Decimal.Scale] digits and is omitted
// entirely when the scale is zero.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	coef := d.coefString()
	scale := int(d.scale)

	buf := make([]byte, 0, len(coef)+scale+3)

	// Sign
	if d.neg {
		buf = append(buf, '-')
	}

	// Integer part, decimal point, and fractional part
	if len(coef) > scale {
		buf = append(buf, coef[:len(coef)-scale]...)
		if scale > 0 {
			buf = append(buf, '.')
			buf = append(buf, coef[len(coef)-scale:]...)
		}
	} else {
		buf = append(buf, '0', '.')
		for i := scale - len(coef); i > 0; i-- {
			buf = append(buf, '0')
		}
		buf = append(buf, coef...)
	}

	return string(buf)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseBCD converts the binary representation produced by [Decimal.BCD] back
// into a decimal.
// ParseBCD returns an error wrapping [ErrInvalidFormat] if the bytes do not
// follow that layout.
func ParseBCD(bcd []byte) (Decimal, error) {
	scale, n := binary.Uvarint(bcd)
	switch {
	case n <= 0:
		return Decimal{}, fmt.Errorf("reading scale: %w", ErrInvalidFormat)
	case scale > maxScale:
		return Decimal{}, errScaleRange
	}
	bcd = bcd[n:]
	if len(bcd) == 0 {
		return Decimal{}, fmt.Errorf("no coefficient: %w", ErrInvalidFormat)
	}

	coef := getBint()
	defer putBint(coef)
	coef.setFint(0)

	var neg bool
	last := len(bcd)*2 - 1
	for i := 0; i <= last; i++ {
		nib := bcd[i/2]
		if i%2 == 0 {
			nib >>= 4
		} else {
			nib &= 0x0f
		}
		if i == last {
			switch nib {
			case 0x0c:
				neg = false
			case 0x0d:
				neg = true
			default:
				return Decimal{}, fmt.Errorf("invalid sign nibble %#x: %w", nib, ErrInvalidFormat)
			}
			break
		}
		if nib > 9 {
			return Decimal{}, fmt.Errorf("invalid digit nibble %#x: %w", nib, ErrInvalidFormat)
		}
		coef.fsa(coef, 1, fint(nib))
	}

	return newFromBint(neg, coef, int(scale))
}

// BCD returns the binary-coded decimal representation of d:
// the scale encoded as an unsigned varint, followed by the coefficient digits
// packed two per byte, most significant digit first, terminated by a sign
// nibble, 0xc for positive and 0xd for negative.
// Also see method [ParseBCD].
func (d Decimal) BCD() []byte {
	coef := d.coefString()
	buf := binary.AppendUvarint(make([]byte, 0, len(coef)/2+4), uint64(d.scale))

	nibs := make([]byte, 0, len(coef)+2)
	if len(coef)%2 == 0 { // together with the sign nibble, pad to whole bytes
		nibs = append(nibs, 0)
	}
	for i := 0; i < len(coef); i++ {
		nibs = append(nibs, coef[i]-'0')
	}
	if d.neg {
		nibs = append(nibs, 0x0d)
	} else {
		nibs = append(nibs, 0x0c)
	}

	for i := 0; i < len(nibs); i += 2 {
		buf = append(buf, nibs[i]<<4|nibs[i+1])
	}
	return buf
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// Also see method [ParseBCD].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Decimal) UnmarshalBinary(data []byte) error {
	var err error
	*d, err = ParseBCD(data)
	return err
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// Also see method [Decimal.BCD].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Decimal) MarshalBinary() ([]byte, error) {
	return d.BCD(), nil
}

// Scan implements the [sql.Scanner] interface.
// It supports string, []byte, int64, and float64 source values.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		*d, err = New(value, 0)
	case float64:
		*d, err = NewFromFloat64(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T", value, Decimal{})
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Also see method [Decimal.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//	%k:         -12345.6%
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for the %f and %k verbs.
// For the %f verb the default precision is the actual scale of the decimal,
// whereas for the %k verb the default precision is the actual scale of the
// decimal minus 2.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {

	// Percentage
	if verb == 'k' || verb == 'K' {
		d = d.Mul(hundred)
	}

	// Rescaling
	if verb == 'f' || verb == 'F' || verb == 'k' || verb == 'K' {
		scale := d.Scale()
		switch p, ok := state.Precision(); {
		case ok:
			scale = p
		case verb == 'k' || verb == 'K':
			scale = d.Scale() - 2
		}
		if scale < 0 {
			scale = 0
		}
		d = d.Round(scale)
	}

	// Integer and fractional digits
	coef := d.coefString()
	fracdigs := d.Scale()
	if len(coef) <= fracdigs { // leading 0
		coef = strings.Repeat("0", fracdigs-len(coef)+1) + coef
	}
	intdigs := len(coef) - fracdigs

	// Decimal point
	dpoint := 0
	if fracdigs > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	rsign := 0
	if d.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Percentage sign
	psign := 0
	if verb == 'k' || verb == 'K' {
		psign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + intdigs + dpoint + fracdigs + psign + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case d.IsNeg():
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, coef[:intdigs]...)
	if dpoint > 0 {
		buf = append(buf, '.')
		buf = append(buf, coef[intdigs:]...)
	}
	if psign > 0 {
		buf = append(buf, '%')
	}
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'k', 'K':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(decimal.Decimal="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Prec returns the number of digits in the coefficient.
// Prec assumes that 0 has no digits.
func (d Decimal) Prec() int {
	if d.bcoef != nil {
		return d.bcoef.prec()
	}
	return d.coef.prec()
}

// Coef returns the coefficient of the decimal as a big.Int.
// The returned value is a copy and may be freely modified by the caller.
// Also see methods [Decimal.Prec] and [Decimal.Scale].
func (d Decimal) Coef() *big.Int {
	z := new(big.Int)
	if d.bcoef != nil {
		z.Set((*big.Int)(d.bcoef))
	} else {
		z.SetUint64(uint64(d.coef))
	}
	return z
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// MinScale returns the smallest scale that d can be rescaled to without
// rounding.
// Also see method [Decimal.Trim].
func (d Decimal) MinScale() int {
	// Special case: no scale
	if d.Scale() == 0 || d.IsZero() {
		return 0
	}
	// General case
	var z int
	if d.bcoef != nil {
		z = d.bcoef.ntz()
	} else {
		z = d.coef.ntz()
	}
	if z > d.Scale() {
		return 0
	}
	return d.Scale() - z
}

// IsInt returns true if there are no significant digits after the decimal
// point.
func (d Decimal) IsInt() bool {
	return d.MinScale() == 0
}

// IsOne returns true if d == 1.
func (d Decimal) IsOne() bool {
	return !d.neg && d.Cmp(one) == 0
}

// WithinOne returns true if -1 < d < 1.
func (d Decimal) WithinOne() bool {
	return d.Prec() <= d.Scale()
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.neg && !d.IsZero()
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.bcoef == nil && d.coef == 0
}

// pad returns d with its scale increased to the given scale.
// The represented value does not change.
func (d Decimal) pad(scale int) Decimal {
	if d.bcoef == nil {
		if coef, ok := d.coef.lsh(scale - d.Scale()); ok {
			f, err := newSafe(d.neg, coef, scale)
			if err == nil {
				return f
			}
		}
	}
	b := getBint()
	defer putBint(b)
	d.loadCoef(b)
	b.lsh(b, scale-d.Scale())
	f, err := newFromBint(d.neg, b, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.pad(%v) failed: %v", d, scale, err)) // unexpected by design
	}
	return f
}

// Round returns d rounded to the specified number of digits after the decimal
// point using "half to even" rounding.
// If the scale of d is less than the specified scale, the result is
// zero-padded to the right.
//
// Round panics if the scale is negative.
func (d Decimal) Round(scale int) Decimal {
	if scale < 0 || maxScale < scale {
		panic(fmt.Sprintf("%q.Round(%v) failed: %v", d, scale, errScaleRange))
	}
	switch {
	case scale == d.Scale():
		return d
	case scale > d.Scale():
		return d.pad(scale)
	}
	shift := d.Scale() - scale
	if d.bcoef == nil {
		f, err := newSafe(d.neg, d.coef.rshHalfEven(shift), scale)
		if err != nil {
			panic(fmt.Sprintf("%q.Round(%v) failed: %v", d, scale, err)) // unexpected by design
		}
		return f
	}
	b := getBint()
	defer putBint(b)
	b.rshHalfEven(d.bcoef, shift)
	f, err := newFromBint(d.neg, b, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.Round(%v) failed: %v", d, scale, err)) // unexpected by design
	}
	return f
}

// Quantize returns d rounded to the same scale as e using "half to even"
// rounding.
// The sign and coefficient of e are ignored.
// Also see method [Decimal.Round].
func (d Decimal) Quantize(e Decimal) Decimal {
	return d.Round(e.Scale())
}

// Trunc returns d truncated (rounded towards zero) to the specified number of
// digits after the decimal point.
// If the scale of d is less than the specified scale, the result is
// zero-padded to the right.
//
// Trunc panics if the scale is negative.
func (d Decimal) Trunc(scale int) Decimal {
	if scale < 0 || maxScale < scale {
		panic(fmt.Sprintf("%q.Trunc(%v) failed: %v", d, scale, errScaleRange))
	}
	switch {
	case scale == d.Scale():
		return d
	case scale > d.Scale():
		return d.pad(scale)
	}
	shift := d.Scale() - scale
	if d.bcoef == nil {
		f, err := newSafe(d.neg, d.coef.rshDown(shift), scale)
		if err != nil {
			panic(fmt.Sprintf("%q.Trunc(%v) failed: %v", d, scale, err)) // unexpected by design
		}
		return f
	}
	b := getBint()
	defer putBint(b)
	b.rshDown(d.bcoef, shift)
	f, err := newFromBint(d.neg, b, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.Trunc(%v) failed: %v", d, scale, err)) // unexpected by design
	}
	return f
}

// Ceil returns d rounded up (towards positive infinity) to the specified
// number of digits after the decimal point.
// If the scale of d is less than the specified scale, the result is
// zero-padded to the right.
// Also see method [Decimal.Floor].
//
// Ceil panics if the scale is negative.
func (d Decimal) Ceil(scale int) Decimal {
	if scale < 0 || maxScale < scale {
		panic(fmt.Sprintf("%q.Ceil(%v) failed: %v", d, scale, errScaleRange))
	}
	switch {
	case scale == d.Scale():
		return d
	case scale > d.Scale():
		return d.pad(scale)
	}
	shift := d.Scale() - scale
	if d.bcoef == nil {
		coef := d.coef
		if d.neg {
			coef = coef.rshDown(shift)
		} else {
			coef = coef.rshUp(shift)
		}
		f, err := newSafe(d.neg, coef, scale)
		if err != nil {
			panic(fmt.Sprintf("%q.Ceil(%v) failed: %v", d, scale, err)) // unexpected by design
		}
		return f
	}
	b := getBint()
	defer putBint(b)
	if d.neg {
		b.rshDown(d.bcoef, shift)
	} else {
		b.rshUp(d.bcoef, shift)
	}
	f, err := newFromBint(d.neg, b, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.Ceil(%v) failed: %v", d, scale, err)) // unexpected by design
	}
	return f
}

// Floor returns d rounded down (towards negative infinity) to the specified
// number of digits after the decimal point.
// If the scale of d is less than the specified scale, the result is
// zero-padded to the right.
// Also see method [Decimal.Ceil].
//
// Floor panics if the scale is negative.
func (d Decimal) Floor(scale int) Decimal {
	if scale < 0 || maxScale < scale {
		panic(fmt.Sprintf("%q.Floor(%v) failed: %v", d, scale, errScaleRange))
	}
	switch {
	case scale == d.Scale():
		return d
	case scale > d.Scale():
		return d.pad(scale)
	}
	shift := d.Scale() - scale
	if d.bcoef == nil {
		coef := d.coef
		if d.neg {
			coef = coef.rshUp(shift)
		} else {
			coef = coef.rshDown(shift)
		}
		f, err := newSafe(d.neg, coef, scale)
		if err != nil {
			panic(fmt.Sprintf("%q.Floor(%v) failed: %v", d, scale, err)) // unexpected by design
		}
		return f
	}
	b := getBint()
	defer putBint(b)
	if d.neg {
		b.rshUp(d.bcoef, shift)
	} else {
		b.rshDown(d.bcoef, shift)
	}
	f, err := newFromBint(d.neg, b, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.Floor(%v) failed: %v", d, scale, err)) // unexpected by design
	}
	return f
}

// Trim returns d with trailing fractional zeros removed, but not below the
// specified scale.
// The represented value does not change.
//
// Trim panics if the scale is negative.
func (d Decimal) Trim(scale int) Decimal {
	if scale < 0 || maxScale < scale {
		panic(fmt.Sprintf("%q.Trim(%v) failed: %v", d, scale, errScaleRange))
	}
	if m := d.MinScale(); m > scale {
		scale = m
	}
	if scale >= d.Scale() {
		return d
	}
	return d.Trunc(scale)
}

// Neg returns d with the opposite sign.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return d
	}
	return Decimal{neg: !d.neg, scale: d.scale, coef: d.coef, bcoef: d.bcoef}
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	return Decimal{neg: false, scale: d.scale, coef: d.coef, bcoef: d.bcoef}
}

// CopySign returns d with the same sign as e.
// If e is zero, the sign of the result remains unchanged.
func (d Decimal) CopySign(e Decimal) Decimal {
	switch {
	case e.IsZero():
		return d
	case d.IsNeg() != e.IsNeg():
		return d.Neg()
	default:
		return d
	}
}

// Add returns the exact sum of d and e.
// The scale of the result is the larger of the scales of d and e;
// the coefficient grows as needed, so the sum never rounds and never fails.
func (d Decimal) Add(e Decimal) Decimal {
	if f, ok := addFint(d, e); ok {
		return f
	}
	return addBint(d, e)
}

func addFint(d, e Decimal) (Decimal, bool) {
	if d.bcoef != nil || e.bcoef != nil {
		return Decimal{}, false
	}

	dcoef, ecoef := d.coef, e.coef
	var ok bool

	// Alignment and scale
	scale := d.Scale()
	switch {
	case e.Scale() < d.Scale():
		ecoef, ok = ecoef.lsh(d.Scale() - e.Scale())
		if !ok {
			return Decimal{}, false
		}
	case d.Scale() < e.Scale():
		scale = e.Scale()
		dcoef, ok = dcoef.lsh(e.Scale() - d.Scale())
		if !ok {
			return Decimal{}, false
		}
	}

	// Sign
	var neg bool
	if ecoef < dcoef {
		neg = d.neg
	} else {
		neg = e.neg
	}

	// Coefficient
	if d.neg != e.neg {
		dcoef = dcoef.dist(ecoef)
	} else {
		dcoef, ok = dcoef.add(ecoef)
		if !ok {
			return Decimal{}, false
		}
	}

	f, err := newSafe(neg, dcoef, scale)
	if err != nil {
		return Decimal{}, false
	}
	return f, true
}

func addBint(d, e Decimal) Decimal {
	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)
	d.loadCoef(dcoef)
	e.loadCoef(ecoef)

	// Alignment and scale
	scale := d.Scale()
	switch {
	case e.Scale() < d.Scale():
		ecoef.lsh(ecoef, d.Scale()-e.Scale())
	case d.Scale() < e.Scale():
		dcoef.lsh(dcoef, e.Scale()-d.Scale())
		scale = e.Scale()
	}

	// Sign
	var neg bool
	if dcoef.cmp(ecoef) > 0 {
		neg = d.neg
	} else {
		neg = e.neg
	}

	// Coefficient
	if d.neg != e.neg {
		dcoef.dist(dcoef, ecoef)
	} else {
		dcoef.add(dcoef, ecoef)
	}

	f, err := newFromBint(neg, dcoef, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.Add(%q) failed: %v", d, e, err)) // unexpected by design
	}
	return f
}

// Sub returns the exact difference of d and e.
// Also see method [Decimal.Add].
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// SubAbs returns the exact absolute difference of d and e.
func (d Decimal) SubAbs(e Decimal) Decimal {
	return d.Sub(e).Abs()
}

// Mul returns the exact product of d and e.
// The scale of the result is the sum of the scales of d and e.
func (d Decimal) Mul(e Decimal) Decimal {
	if f, ok := mulFint(d, e); ok {
		return f
	}
	return mulBint(d, e)
}

func mulFint(d, e Decimal) (Decimal, bool) {
	if d.bcoef != nil || e.bcoef != nil {
		return Decimal{}, false
	}

	// Coefficient
	dcoef, ok := d.coef.mul(e.coef)
	if !ok {
		return Decimal{}, false
	}

	f, err := newSafe(d.neg != e.neg, dcoef, d.Scale()+e.Scale())
	if err != nil {
		return Decimal{}, false
	}
	return f, true
}

func mulBint(d, e Decimal) Decimal {
	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)
	d.loadCoef(dcoef)
	e.loadCoef(ecoef)

	// Coefficient
	dcoef.mul(dcoef, ecoef)

	f, err := newFromBint(d.neg != e.neg, dcoef, d.Scale()+e.Scale())
	if err != nil {
		panic(fmt.Sprintf("%q.Mul(%q) failed: %v", d, e, err))
	}
	return f
}

// FMA returns the exact [fused multiply-addition] of d, e, and f.
// It computes d * e + f with no intermediate result.
// This method is useful for algorithms that accumulate products,
// such as daily interest accrual.
//
// [fused multiply-addition]: https://en.wikipedia.org/wiki/Multiply%E2%80%93accumulate_operation#Fused_multiply%E2%80%93add
func (d Decimal) FMA(e, f Decimal) Decimal {
	if g, ok := fmaFint(d, e, f); ok {
		return g
	}
	return fmaBint(d, e, f)
}

func fmaFint(d, e, f Decimal) (Decimal, bool) {
	if d.bcoef != nil || e.bcoef != nil || f.bcoef != nil {
		return Decimal{}, false
	}

	fcoef := f.coef

	// Coefficient (Multiplication)
	dcoef, ok := d.coef.mul(e.coef)
	if !ok {
		return Decimal{}, false
	}

	// Alignment and scale
	scale := d.Scale() + e.Scale()
	switch {
	case f.Scale() < scale:
		fcoef, ok = fcoef.lsh(scale - f.Scale())
		if !ok {
			return Decimal{}, false
		}
	case scale < f.Scale():
		dcoef, ok = dcoef.lsh(f.Scale() - scale)
		if !ok {
			return Decimal{}, false
		}
		scale = f.Scale()
	}

	// Sign
	var neg bool
	if dcoef > fcoef {
		neg = d.neg != e.neg
	} else {
		neg = f.neg
	}

	// Coefficient (Addition)
	if (d.neg != e.neg) != f.neg {
		dcoef = dcoef.dist(fcoef)
	} else {
		dcoef, ok = dcoef.add(fcoef)
		if !ok {
			return Decimal{}, false
		}
	}

	g, err := newSafe(neg, dcoef, scale)
	if err != nil {
		return Decimal{}, false
	}
	return g, true
}

func fmaBint(d, e, f Decimal) Decimal {
	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)
	fcoef := getBint()
	defer putBint(fcoef)
	d.loadCoef(dcoef)
	e.loadCoef(ecoef)
	f.loadCoef(fcoef)

	// Coefficient (Multiplication)
	dcoef.mul(dcoef, ecoef)

	// Alignment and scale
	scale := d.Scale() + e.Scale()
	switch {
	case f.Scale() < scale:
		fcoef.lsh(fcoef, scale-f.Scale())
	case scale < f.Scale():
		dcoef.lsh(dcoef, f.Scale()-scale)
		scale = f.Scale()
	}

	// Sign
	var neg bool
	if dcoef.cmp(fcoef) > 0 {
		neg = d.neg != e.neg
	} else {
		neg = f.neg
	}

	// Coefficient (Addition)
	if (d.neg != e.neg) != f.neg {
		dcoef.dist(dcoef, fcoef)
	} else {
		dcoef.add(dcoef, fcoef)
	}

	g, err := newFromBint(neg, dcoef, scale)
	if err != nil {
		panic(fmt.Sprintf("%q.FMA(%q, %q) failed: %v", d, e, f, err))
	}
	return g
}

// Pow returns d raised to the given exponent.
// The result is exact for non-negative exponents.
// For a negative exponent the inverse of the power is computed under the
// [Decimal.Quo] contract, so Pow returns [ErrInexactDivision] when that
// inverse has no terminating decimal expansion and [ErrDivisionByZero]
// when d is zero.
func (d Decimal) Pow(exp int) (Decimal, error) {
	// Special case: negative exponent
	if exp < 0 {
		f, err := d.Inv()
		if err != nil {
			return Decimal{}, err
		}
		g, err := f.Pow(-(exp + 1))
		if err != nil {
			return Decimal{}, err // unexpected by design
		}
		return g.Mul(f), nil
	}

	// General case: exponentiation by squaring
	f, g := one, d
	for e := exp; e > 0; e >>= 1 {
		if e&1 != 0 {
			f = f.Mul(g)
		}
		if e > 1 {
			g = g.Mul(g)
		}
	}
	return f, nil
}

// Quo returns the exact quotient of d and e.
// The quotient of two decimals terminates if and only if, in lowest terms,
// its denominator has no prime factors other than 2 and 5.
// The result carries at least max(0, d.Scale() - e.Scale()) digits after the
// decimal point and no further trailing zeros.
//
// Quo returns an error:
//   - [ErrDivisionByZero] if e is zero;
//   - [ErrInexactDivision] if the exact quotient does not terminate,
//     for example, when dividing 1 by 3.
//
// Also see methods [Decimal.QuoRound] and [Decimal.QuoRem].
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	// Special case: zero divisor
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}

	// Special case: zero dividend
	if d.IsZero() {
		scale := d.Scale() - e.Scale()
		if scale < 0 {
			scale = 0
		}
		return newSafe(false, 0, scale)
	}

	// General case
	f, ok := quoFint(d, e)
	if !ok {
		var err error
		f, err = quoBint(d, e)
		if err != nil {
			return Decimal{}, err
		}
	}

	// Trailing zeros
	scale := d.Scale() - e.Scale()
	if scale < 0 {
		scale = 0
	}
	return f.Trim(scale), nil
}

func quoFint(d, e Decimal) (Decimal, bool) {
	if d.bcoef != nil || e.bcoef != nil {
		return Decimal{}, false
	}

	dcoef, ecoef := d.coef, e.coef
	var ok bool

	// Scale
	scale := d.Scale() - e.Scale()

	// Dividend alignment
	if p := maxFintPrec - dcoef.prec(); p > 0 {
		dcoef, ok = dcoef.lsh(p)
		if !ok {
			return Decimal{}, false
		}
		scale = scale + p
	}

	// Divisor alignment
	if t := ecoef.ntz(); t > 0 {
		ecoef = ecoef.rshDown(t)
		scale = scale + t
	}

	// Coefficient
	dcoef, ok = dcoef.quo(ecoef)
	if !ok {
		return Decimal{}, false
	}

	// Scale normalization
	if scale < 0 {
		dcoef, ok = dcoef.lsh(-scale)
		if !ok {
			return Decimal{}, false
		}
		scale = 0
	}

	f, err := newSafe(d.neg != e.neg, dcoef, scale)
	if err != nil {
		return Decimal{}, false
	}
	return f, true
}

func quoBint(d, e Decimal) (Decimal, error) {
	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)
	d.loadCoef(dcoef)
	e.loadCoef(ecoef)

	// Fraction reduction
	g := getBint()
	defer putBint(g)
	g.gcd(dcoef, ecoef)
	dcoef.quo(dcoef, g)
	ecoef.quo(ecoef, g)

	// Exactness check: the reduced divisor must be of the form 2^a * 5^b
	rest := getBint()
	defer putBint(rest)
	a := rest.strip(ecoef, btwo)
	b := rest.strip(rest, bfive)
	if rest.cmp(bpow10[0]) != 0 {
		return Decimal{}, ErrInexactDivision
	}
	shift := a
	if b > a {
		shift = b
	}

	// Coefficient
	dcoef.lsh(dcoef, shift)
	dcoef.quo(dcoef, ecoef)

	// Scale
	scale := d.Scale() - e.Scale() + shift
	if scale < 0 {
		dcoef.lsh(dcoef, -scale)
		scale = 0
	}

	return newFromBint(d.neg != e.neg, dcoef, scale)
}

// QuoRound returns the quotient of d and e rounded to the specified number of
// digits after the decimal point using "half to even" rounding.
// Unlike [Decimal.Quo] it never fails on non-terminating quotients.
//
// QuoRound returns an error:
//   - [ErrDivisionByZero] if e is zero;
//   - if the scale is negative.
func (d Decimal) QuoRound(e Decimal, scale int) (Decimal, error) {
	if scale < 0 || maxScale < scale {
		return Decimal{}, errScaleRange
	}
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}

	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)
	d.loadCoef(dcoef)
	e.loadCoef(ecoef)

	// Alignment
	shift := scale + e.Scale() - d.Scale()
	switch {
	case shift > 0:
		dcoef.lsh(dcoef, shift)
	case shift < 0:
		ecoef.lsh(ecoef, -shift)
	}

	// Coefficient
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	q.quoRem(dcoef, ecoef, r)

	// Rounding
	r.dbl(r) // r = r * 2
	switch ecoef.cmp(r) {
	case -1:
		q.inc(q) // q = q + 1
	case 0:
		// half-to-even
		if q.isOdd() {
			q.inc(q) // q = q + 1
		}
	}

	return newFromBint(d.neg != e.neg, q, scale)
}

// QuoRem returns the exact quotient and remainder of d and e such that
// d = q * e + r, where q is an integer truncated towards zero and the sign of
// r matches the sign of d.
//
// QuoRem returns [ErrDivisionByZero] if e is zero.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	if e.IsZero() {
		return Decimal{}, Decimal{}, ErrDivisionByZero
	}

	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)
	d.loadCoef(dcoef)
	e.loadCoef(ecoef)

	// Alignment and scale
	scale := d.Scale()
	switch {
	case e.Scale() < d.Scale():
		ecoef.lsh(ecoef, d.Scale()-e.Scale())
	case d.Scale() < e.Scale():
		dcoef.lsh(dcoef, e.Scale()-d.Scale())
		scale = e.Scale()
	}

	// Coefficients
	qcoef := getBint()
	defer putBint(qcoef)
	rcoef := getBint()
	defer putBint(rcoef)
	qcoef.quoRem(dcoef, ecoef, rcoef)

	q, err = newFromBint(d.neg != e.neg, qcoef, 0)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	r, err = newFromBint(d.neg, rcoef, scale)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return q, r, nil
}

// Inv returns the exact inverse of d.
// Also see method [Decimal.Quo].
//
// Inv returns an error:
//   - [ErrDivisionByZero] if d is zero;
//   - [ErrInexactDivision] if the exact inverse does not terminate.
func (d Decimal) Inv() (Decimal, error) {
	return one.Quo(d)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}

	// General case
	if r, ok := cmpFint(d, e); ok {
		return r
	}
	return cmpBint(d, e)
}

func cmpFint(d, e Decimal) (int, bool) {
	if d.bcoef != nil || e.bcoef != nil {
		return 0, false
	}

	dcoef, ecoef := d.coef, e.coef
	var ok bool

	// Alignment
	switch {
	case e.Scale() < d.Scale():
		ecoef, ok = ecoef.lsh(d.Scale() - e.Scale())
		if !ok {
			return 0, false
		}
	case d.Scale() < e.Scale():
		dcoef, ok = dcoef.lsh(e.Scale() - d.Scale())
		if !ok {
			return 0, false
		}
	}

	// Comparison
	switch {
	case ecoef < dcoef:
		return d.Sign(), true
	case dcoef < ecoef:
		return -e.Sign(), true
	default:
		return 0, true
	}
}

func cmpBint(d, e Decimal) int {
	dcoef := getBint()
	defer putBint(dcoef)
	ecoef := getBint()
	defer putBint(ecoef)
	d.loadCoef(dcoef)
	e.loadCoef(ecoef)

	// Alignment
	switch {
	case e.Scale() < d.Scale():
		ecoef.lsh(ecoef, d.Scale()-e.Scale())
	case d.Scale() < e.Scale():
		dcoef.lsh(dcoef, e.Scale()-d.Scale())
	}

	// Comparison
	switch dcoef.cmp(ecoef) {
	case 1:
		return d.Sign()
	case -1:
		return -e.Sign()
	default:
		return 0
	}
}

// CmpTotal compares the representation of d and e and returns:
//
//	-1 if d < e
//	-1 if d == e && d.scale > e.scale
//	 0 if d == e && d.scale == e.scale
//	+1 if d == e && d.scale < e.scale
//	+1 if d > e
//
// Also see method [Decimal.Cmp].
func (d Decimal) CmpTotal(e Decimal) int {
	switch d.Cmp(e) {
	case -1:
		return -1
	case 1:
		return 1
	}
	switch {
	case e.Scale() < d.Scale():
		return -1
	case d.Scale() < e.Scale():
		return 1
	}
	return 0
}

// Equal compares d and e numerically, ignoring trailing fractional zeros:
// 2.4 and 2.40 are equal.
// Also see method [Decimal.Cmp].
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Max returns the maximum of d and e.
// Also see method [Decimal.CmpTotal].
func (d Decimal) Max(e Decimal) Decimal {
	if d.CmpTotal(e) >= 0 {
		return d
	}
	return e
}

// Min returns the minimum of d and e.
// Also see method [Decimal.CmpTotal].
func (d Decimal) Min(e Decimal) Decimal {
	if d.CmpTotal(e) <= 0 {
		return d
	}
	return e
}

// Clamp returns d bounded to the range between min and max inclusive.
// Clamp returns an error if min is greater than max.
func (d Decimal) Clamp(min, max Decimal) (Decimal, error) {
	if min.Cmp(max) > 0 {
		return Decimal{}, errClampRange
	}
	if d.Cmp(min) < 0 {
		return min, nil
	}
	if d.Cmp(max) > 0 {
		return max, nil
	}
	return d, nil
}

// Int64 returns a pair of integers representing the whole and (possibly
// rounded) fractional parts of d such that d ≈ whole + frac / 10^scale.
// The fractional part is rounded to the given scale using "half to even"
// rounding. Both parts carry the sign of d.
// If either part cannot be represented as an int64, or the scale is negative,
// the method returns false.
func (d Decimal) Int64(scale int) (whole, frac int64, ok bool) {
	if scale < 0 || maxScale < scale {
		return 0, 0, false
	}
	f := d.Round(scale)

	w := getBint()
	defer putBint(w)
	r := getBint()
	defer putBint(r)
	f.loadCoef(w)

	var y *bint
	if scale < len(bpow10) {
		y = bpow10[scale]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(scale)
	}
	w.quoRem(w, y, r)

	if !(*big.Int)(w).IsInt64() || !(*big.Int)(r).IsInt64() {
		return 0, 0, false
	}
	whole, frac = (*big.Int)(w).Int64(), (*big.Int)(r).Int64()
	if f.neg {
		whole, frac = -whole, -frac
	}
	return whole, frac, true
}

// Float64 returns the nearest binary floating-point number rounded
// using "round half to even" (same as [strconv.ParseFloat]).
// The conversion is generally lossy; see the package documentation for why
// that loss is the very thing this type exists to avoid.
//
// Float64 returns false if the value is outside the float64 range.
func (d Decimal) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.String(), 64)
	return f, err == nil
}

// NullDecimal represents a decimal that can be null.
// Its zero value is null.
// NullDecimal is popular with GORM, sqlx, and other ORMs.
type NullDecimal struct {
	Decimal Decimal
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
// Also see method [Decimal.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullDecimal) Scan(value any) error {
	if value == nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return nil
	}
	err := n.Decimal.Scan(value)
	if err != nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// Also see method [Decimal.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullDecimal) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.Value()
}
