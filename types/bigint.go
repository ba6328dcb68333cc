package types

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// BigInt is a big integer amount as blockchain expects it for tx.
type BigInt big.Int

// AmountHumanReadable is a decimal amount as a human expects it for readability.
type AmountHumanReadable decimal.Decimal

func (amount BigInt) String() string {
	bigInt := big.Int(amount)
	return bigInt.String()
}

// Int converts an BigInt into *bit.Int
func (amount BigInt) Int() *big.Int {
	bigInt := big.Int(amount)
	return &bigInt
}

func (amount BigInt) Sign() int {
	bigInt := big.Int(amount)
	return bigInt.Sign()
}

// Uint64 converts an BigInt into uint64
func (amount BigInt) Uint64() uint64 {
	bigInt := big.Int(amount)
	return bigInt.Uint64()
}

// Use the underlying big.Int.Cmp()
func (amount *BigInt) Cmp(other *BigInt) int {
	return amount.Int().Cmp(other.Int())
}

// Use the underlying big.Int.Add()
func (amount *BigInt) Add(x *BigInt) BigInt {
	sum := *amount
	return BigInt(*sum.Int().Add(sum.Int(), x.Int()))
}

// Use the underlying big.Int.Mul()
func (amount *BigInt) Mul(x *BigInt) BigInt {
	prod := *amount
	return BigInt(*prod.Int().Mul(prod.Int(), x.Int()))
}

// Use the underlying big.Int.Div()
func (amount *BigInt) Div(x *BigInt) BigInt {
	quot := *amount
	return BigInt(*quot.Int().Div(quot.Int(), x.Int()))
}

var zero = big.NewInt(0)

// MaxUint256Bits is the width of every amount the contract accepts.
const MaxUint256Bits = 256

func (amount *BigInt) IsZero() bool {
	return amount.Int().Cmp(zero) == 0
}

func (amount *BigInt) ToHuman(decimals int32) AmountHumanReadable {
	dec := decimal.NewFromBigInt(amount.Int(), -decimals)
	return AmountHumanReadable(dec)
}

func (amount BigInt) ApplyGasPriceMultiplier(chain *ChainConfig) BigInt {
	if chain.ChainGasMultiplier > 0.01 {
		return MultiplyByFloat(amount, chain.ChainGasMultiplier)
	}
	// no multiplier configured, return same
	return amount
}

func MultiplyByFloat(amount BigInt, multiplier float64) BigInt {
	if amount.Sign() == 0 {
		return amount
	}
	// We are computing (1000000 * multiplier * amount) / 1000000
	precision := uint64(1000000)
	multBig := NewBigIntFromUint64(uint64(float64(precision) * multiplier))
	divBig := NewBigIntFromUint64(precision)
	product := multBig.Mul(&amount)
	result := product.Div(&divBig)
	return result
}

// NewBigIntFromUint64 creates a new BigInt from a uint64
func NewBigIntFromUint64(u64 uint64) BigInt {
	bigInt := new(big.Int).SetUint64(u64)
	return BigInt(*bigInt)
}

// NewBigIntFromInt64 creates a new BigInt from a int64
func NewBigIntFromInt64(i64 int64) BigInt {
	bigInt := new(big.Int).SetInt64(i64)
	return BigInt(*bigInt)
}

// NewBigIntFromStr creates a new BigInt from a string
func NewBigIntFromStr(str string) BigInt {
	var ok bool
	var bigInt *big.Int
	bigInt, ok = new(big.Int).SetString(str, 0)
	if !ok {
		return NewBigIntFromUint64(0)
	}
	return BigInt(*bigInt)
}

// NewAmountHumanReadableFromStr creates a new AmountHumanReadable from a string
func NewAmountHumanReadableFromStr(str string) (AmountHumanReadable, error) {
	decimal, err := decimal.NewFromString(str)
	return AmountHumanReadable(decimal), err
}

func (amount AmountHumanReadable) Decimal() decimal.Decimal {
	return decimal.Decimal(amount)
}

func (amount AmountHumanReadable) String() string {
	return decimal.Decimal(amount).String()
}

// Format renders the amount with at least one fractional digit, "2" becomes "2.0".
func (amount AmountHumanReadable) Format() string {
	s := decimal.Decimal(amount).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseAmount converts a user supplied decimal string into base units. The
// conversion is exact: empty, non-numeric, negative or zero input and input with
// more fractional digits than decimals all fail with ErrInvalidAmount.
func ParseAmount(str string, decimals int32) (BigInt, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return BigInt{}, WrapErr(ErrInvalidAmount, fmt.Errorf("amount is empty"))
	}
	// decimal accepts exponents, which hide the real precision of the input
	if strings.ContainsAny(str, "eE") {
		return BigInt{}, WrapErr(ErrInvalidAmount, fmt.Errorf("%q is not a decimal number", str))
	}
	dec, err := decimal.NewFromString(str)
	if err != nil {
		return BigInt{}, WrapErr(ErrInvalidAmount, fmt.Errorf("%q is not a decimal number", str))
	}
	if dec.Sign() <= 0 {
		return BigInt{}, WrapErr(ErrInvalidAmount, fmt.Errorf("amount must be positive, got %s", str))
	}
	// trailing zeros shift into integers, any other excess precision does not
	units := dec.Shift(decimals)
	if !units.IsInteger() {
		return BigInt{}, WrapErr(ErrInvalidAmount, fmt.Errorf("%s has more than %d fractional digits", str, decimals))
	}
	result := units.BigInt()
	if result.BitLen() > MaxUint256Bits {
		return BigInt{}, WrapErr(ErrInvalidAmount, fmt.Errorf("%s does not fit in uint256", str))
	}
	return BigInt(*result), nil
}

// FormatAmount renders base units as a decimal string with at least one
// fractional digit.
func FormatAmount(units BigInt, decimals int32) string {
	return units.ToHuman(decimals).Format()
}

func (b AmountHumanReadable) MarshalJSON() ([]byte, error) {
	return []byte("\"" + b.String() + "\""), nil
}

func (b *AmountHumanReadable) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	str := strings.Trim(string(p), "\"")
	decimal, err := decimal.NewFromString(str)
	if err != nil {
		return err
	}
	*b = AmountHumanReadable(decimal)
	return nil
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	return []byte("\"" + b.String() + "\""), nil
}

func (b *BigInt) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	str := strings.Trim(string(p), "\"")
	var z big.Int
	_, ok := z.SetString(str, 10)
	if !ok {
		return fmt.Errorf("not a valid big integer: %s", p)
	}
	*b = BigInt(z)
	return nil
}
