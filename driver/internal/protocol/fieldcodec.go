// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
	"github.com/sap-thirdparty/hdbproto/driver/unicode/cesu8"
)

// fixed size field wire sizes.
const (
	tinyintFieldSize    = 1
	smallintFieldSize   = 2
	integerFieldSize    = 4
	bigintFieldSize     = 8
	realFieldSize       = 4
	doubleFieldSize     = 8
	dateFieldSize       = 4
	timeFieldSize       = 4
	timestampFieldSize  = dateFieldSize + timeFieldSize
	longdateFieldSize   = 8
	seconddateFieldSize = 8
	daydateFieldSize    = 4
	secondtimeFieldSize = 4
	decimalFieldSize    = 16
	fixed8FieldSize     = 8
	fixed12FieldSize    = 12
	fixed16FieldSize    = 16

	lobInputParametersSize = 9
)

// fieldPrmSize returns the wire size an input parameter of the given type
// code, value, length and fraction (scale, for decimal types) occupies.
func fieldPrmSize(tc typeCode, v any, length, fraction int) int {
	switch tc {
	case tcBoolean:
		return tinyintFieldSize
	case tcTinyint:
		return tinyintFieldSize
	case tcSmallint:
		return smallintFieldSize
	case tcInteger:
		return integerFieldSize
	case tcBigint:
		return bigintFieldSize
	case tcReal:
		return realFieldSize
	case tcDouble:
		return doubleFieldSize
	case tcDate:
		return dateFieldSize
	case tcTime:
		return timeFieldSize
	case tcTimestamp:
		return timestampFieldSize
	case tcLongdate:
		return longdateFieldSize
	case tcSeconddate:
		return seconddateFieldSize
	case tcDaydate:
		return daydateFieldSize
	case tcSecondtime:
		return secondtimeFieldSize
	case tcDecimal:
		return decimalFieldSize
	case tcFixed8:
		return fixed8FieldSize
	case tcFixed12:
		return fixed12FieldSize
	case tcFixed16:
		return fixed16FieldSize
	case tcChar, tcVarchar, tcString, tcBinary, tcVarbinary, tcStPoint, tcStGeometry:
		switch v := v.(type) {
		case []byte:
			return varBytesSize(len(v))
		case string:
			return varBytesSize(len(v))
		default:
			return -1
		}
	case tcAlphanum:
		return fieldPrmSize(tcVarchar, v, length, fraction)
	case tcNchar, tcNvarchar, tcNstring, tcShorttext:
		switch v := v.(type) {
		case []byte:
			return varBytesSize(cesu8.Size(v))
		case string:
			return varBytesSize(cesu8.StringSize(v))
		default:
			return -1
		}
	case tcBlob, tcClob, tcLocator, tcBintext, tcText, tcNclob, tcNlocator:
		return lobInputParametersSize
	default:
		panic(fmt.Sprintf("invalid type code %s", tc))
	}
}

// encodeFieldPrm encodes an already converted input parameter value v of the
// given type code onto the wire.
func encodeFieldPrm(e *encoding.Encoder, tc typeCode, v any, length, fraction int) error {
	switch tc {
	case tcBoolean:
		// boolean has no high bit null marker: false =:= 0, null =:= 1, true =:= 2
		if v == nil {
			e.Byte(1)
			return nil
		}
		b, err := asBoolPrm(tc, v)
		if err != nil {
			return err
		}
		if b {
			e.Byte(2)
		} else {
			e.Byte(0)
		}
		return nil
	case tcTinyint:
		i, err := asInt64Prm(tc, v)
		if err != nil {
			return err
		}
		e.Byte(byte(i))
		return nil
	case tcSmallint:
		i, err := asInt64Prm(tc, v)
		if err != nil {
			return err
		}
		e.Int16(int16(i))
		return nil
	case tcInteger:
		i, err := asInt64Prm(tc, v)
		if err != nil {
			return err
		}
		e.Int32(int32(i))
		return nil
	case tcBigint:
		i, err := asInt64Prm(tc, v)
		if err != nil {
			return err
		}
		e.Int64(i)
		return nil
	case tcReal:
		f, err := asFloat64Prm(tc, v)
		if err != nil {
			return err
		}
		e.Float32(float32(f))
		return nil
	case tcDouble:
		f, err := asFloat64Prm(tc, v)
		if err != nil {
			return err
		}
		e.Float64(f)
		return nil
	case tcDate:
		t, err := asTimePrm(tc, v)
		if err != nil {
			return err
		}
		encodeDate(e, t)
		return nil
	case tcTime:
		t, err := asTimePrm(tc, v)
		if err != nil {
			return err
		}
		encodeTime(e, t)
		return nil
	case tcTimestamp:
		t, err := asTimePrm(tc, v)
		if err != nil {
			return err
		}
		encodeDate(e, t)
		encodeTime(e, t)
		return nil
	case tcLongdate:
		t, err := asTimePrm(tc, v)
		if err != nil {
			return err
		}
		e.Int64(convertTimeToLongdate(t))
		return nil
	case tcSeconddate:
		t, err := asTimePrm(tc, v)
		if err != nil {
			return err
		}
		e.Int64(convertTimeToSeconddate(t))
		return nil
	case tcDaydate:
		t, err := asTimePrm(tc, v)
		if err != nil {
			return err
		}
		e.Int32(int32(convertTimeToDayDate(t)))
		return nil
	case tcSecondtime:
		t, err := asTimePrm(tc, v)
		if err != nil {
			return err
		}
		e.Int32(convertTimeToSecondtime(t))
		return nil
	case tcDecimal:
		r, err := asRatPrm(tc, v)
		if err != nil {
			return err
		}
		m, exp := ratToDecimal(r)
		e.Decimal(m, exp)
		return nil
	case tcFixed8, tcFixed12, tcFixed16:
		r, err := asRatPrm(tc, v)
		if err != nil {
			return err
		}
		e.Fixed(ratToFixed(r, fraction), fixedFieldSize(tc))
		return nil
	case tcChar, tcVarchar, tcString, tcBinary, tcVarbinary, tcStPoint, tcStGeometry:
		switch v := v.(type) {
		case []byte:
			return encodeVarBytes(e, v)
		case string:
			return encodeVarString(e, v)
		default:
			return newConvertError(tc, v, nil)
		}
	case tcAlphanum:
		return encodeFieldPrm(e, tcVarchar, v, length, fraction)
	case tcNchar, tcNvarchar, tcNstring, tcShorttext:
		switch v := v.(type) {
		case []byte:
			return encodeCESU8Bytes(e, v)
		case string:
			return encodeCESU8String(e, v)
		default:
			return newConvertError(tc, v, nil)
		}
	case tcBlob, tcClob, tcLocator, tcBintext, tcText, tcNclob, tcNlocator:
		descr, ok := v.(*LobInDescr)
		if !ok {
			return newConvertError(tc, v, nil)
		}
		descr.writeFirst(e)
		return nil
	default:
		panic(fmt.Sprintf("invalid type code %s", tc))
	}
}

func fixedFieldSize(tc typeCode) int {
	switch tc {
	case tcFixed8:
		return fixed8FieldSize
	case tcFixed12:
		return fixed12FieldSize
	case tcFixed16:
		return fixed16FieldSize
	default:
		panic(fmt.Sprintf("invalid fixed type code %s", tc))
	}
}

func asBoolPrm(tc typeCode, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, newConvertError(tc, v, nil)
	}
	return b, nil
}

func asInt64Prm(tc typeCode, v any) (int64, error) {
	switch v := v.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int64:
		return v, nil
	case uint64:
		return int64(v), nil
	default:
		return 0, newConvertError(tc, v, nil)
	}
}

func asFloat64Prm(tc typeCode, v any) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, newConvertError(tc, v, nil)
	}
	return f, nil
}

func asTimePrm(tc typeCode, v any) (time.Time, error) {
	t, ok := v.(time.Time)
	if !ok {
		return zeroTime, newConvertError(tc, v, nil)
	}
	return t.UTC(), nil
}

func asRatPrm(tc typeCode, v any) (*big.Rat, error) {
	switch v := v.(type) {
	case *big.Rat:
		return v, nil
	case big.Rat:
		return &v, nil
	default:
		return nil, newConvertError(tc, v, nil)
	}
}

// ratToFixed converts a decimal value into its FIXED8/12/16 two's complement
// mantissa at the given scale (digits after the decimal point), rounding
// half away from zero.
func ratToFixed(r *big.Rat, scale int) *big.Int {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	if scale > 0 {
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
		num.Mul(num, pow)
	}
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	rem.Abs(rem)
	rem.Lsh(rem, 1)
	if rem.Cmp(den) >= 0 {
		if num.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// fixedToRat is the inverse of ratToFixed.
func fixedToRat(m *big.Int, scale int) *big.Rat {
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	return new(big.Rat).SetFrac(m, den)
}

// ratToDecimal converts a decimal value into the (mantissa, exponent) pair
// the 16-byte DECIMAL wire format expects, keeping prec significant fractional
// digits (sufficient precision for values that did not originate from a
// FIXED column, which carries its own scale instead).
func ratToDecimal(r *big.Rat) (*big.Int, int) {
	const prec = 34
	s := new(big.Rat).Abs(r).FloatString(prec)
	dot := strings.IndexByte(s, '.')
	digits := s[:dot] + s[dot+1:]
	exp := -(len(s) - dot - 1)
	m := new(big.Int)
	m.SetString(digits, 10)
	if r.Sign() < 0 {
		m.Neg(m)
	}
	return m, exp
}
