/*
Package decimal implements immutable arbitrary-precision decimal numbers.
It is specifically designed for calculations where binary floating point
is unacceptable: a decimal literal such as 0.1 has no exact finite binary
representation, so float64 arithmetic accumulates representation error,
whereas this package computes 0.1 + 0.2 as exactly 0.3.

# Representation

[Decimal] is a struct with three logical fields:

  - Sign: a boolean indicating whether the decimal is negative.
    The number zero is never negative.
  - Coefficient: an unsigned integer representing the numeric value of the
    decimal without the decimal point.
  - Scale: a non-negative integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2
    represents the value 123.45.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

The coefficient is unbounded: it is kept in a uint64 while the value has
at most 19 digits and transparently switches to a [big.Int] beyond that.
In this approach, the same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have
different scales and coefficients.

Special values such as NaN, Infinity, or negative zeros are not supported.
This ensures that arithmetic operations always produce either valid decimals
or errors.

# Operations

Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using uint64 arithmetic.
    If no overflow occurs, the result is immediately returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated with unbounded precision using [big.Int]
    arithmetic.

In both steps the result is exact.
Construction, [Decimal.Add], [Decimal.Sub], [Decimal.Mul], [Decimal.FMA],
and [Decimal.Pow] with a non-negative exponent never round and never fail:
the coefficient grows as needed and no digit is ever dropped.

Division is the only operation whose exact result may not be representable
as a finite decimal.
The package makes the choice explicit instead of rounding silently:

  - [Decimal.Quo], [Decimal.Inv], and [Decimal.Pow] with a negative exponent
    return the exact quotient when it terminates, and [ErrInexactDivision]
    when it does not (for example, 1 divided by 3).
  - [Decimal.QuoRound] always succeeds by rounding the quotient half to even
    at a caller-provided scale.
  - [Decimal.QuoRem] returns an exact integer quotient and remainder.

# Rounding

No implicit rounding ever occurs.
Explicit rounding is available through the following methods:

  - half-to-even rounding:
    [Decimal.Round], [Decimal.Quantize], [Decimal.QuoRound].
  - rounding towards positive infinity:
    [Decimal.Ceil].
  - rounding towards negative infinity:
    [Decimal.Floor].
  - rounding towards zero:
    [Decimal.Trunc].

See the documentation for each method for more details.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Decimal.String], [Decimal.Format].
  - from/to float64:
    [NewFromFloat64], [Decimal.Float64].
  - from/to int64:
    [New], [NewFromInt64], [Decimal.Int64].
  - from/to big.Int:
    [NewFromBigInt], [Decimal.Coef].
  - from/to packed binary-coded decimal:
    [ParseBCD], [Decimal.BCD].

[Decimal] implements [encoding.TextMarshaler] and [encoding.TextUnmarshaler],
so it can be used with [encoding/json] and similar packages without
additional glue. It also implements [sql.Scanner] and [driver.Valuer];
use [NullDecimal] for nullable columns.

# Errors

All methods are pure and, with the exception of the Must* helpers and
misuse of rounding methods with negative scales, panic-free.
Errors are returned in the following cases:

  - Invalid Format.
    [Parse] accepts an optional sign, a sequence of digits, and at most one
    decimal point. Any other input, including leading or trailing whitespace,
    fails with an error wrapping [ErrInvalidFormat]. Malformed input is never
    repaired or guessed at.

  - Division by Zero.
    Unlike the standard library, [Decimal.Quo], [Decimal.QuoRound],
    [Decimal.QuoRem], and [Decimal.Inv] do not panic when dividing by 0.
    Instead, they return [ErrDivisionByZero].

  - Inexact Division.
    [Decimal.Quo] and [Decimal.Inv] return [ErrInexactDivision] when the
    exact quotient has no finite decimal representation.

[big.Int]: https://pkg.go.dev/math/big#Int
[encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
[encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
[sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
[driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
*/
package decimal
