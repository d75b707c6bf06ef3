package protocol

import (
	"fmt"
	"math"
	"time"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
)

func decodeLobResult(d *encoding.Decoder, isCharBased bool) (any, error) {
	descr := &LobOutDescr{IsCharBased: isCharBased}
	descr.ltc = lobTypecode(d.Int8())
	descr.Opt = LobOptions(d.Int8())
	if descr.Opt.isNull() {
		return nil, nil
	}
	d.Skip(2)
	descr.NumChar = d.Int64()
	descr.numByte = d.Int64()
	descr.ID = LocatorID(d.Uint64())
	size := int(d.Int32())
	descr.B = make([]byte, size)
	d.Bytes(descr.B)
	return descr, nil
}

func decodeBoolean(d *encoding.Decoder) (any, error) {
	// false =:= 0, null =:= 1, true =:= 2 (no high bit null marker)
	switch b := d.Byte(); b {
	case 1:
		return nil, nil
	default:
		return b != 0, nil
	}
}

func decodeReal(d *encoding.Decoder) (any, error) {
	v := d.Uint32()
	if v == realNullValue {
		return nil, nil
	}
	return float64(math.Float32frombits(v)), nil
}

func decodeDouble(d *encoding.Decoder) (any, error) {
	v := d.Uint64()
	if v == doubleNullValue {
		return nil, nil
	}
	return math.Float64frombits(v), nil
}

func decodeDateField(d *encoding.Decoder) (any, error) {
	year, month, day, null := decodeDate(d)
	if null {
		return nil, nil
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

func decodeTimeField(d *encoding.Decoder) (any, error) {
	// time read keeps seconds and milliseconds (the wire value has millisecond precision)
	hour, minute, nanosecs, null := decodeTime(d)
	if null {
		return nil, nil
	}
	return time.Date(1, 1, 1, hour, minute, 0, nanosecs, time.UTC), nil
}

func decodeTimestampField(d *encoding.Decoder) (any, error) {
	year, month, day, dateNull := decodeDate(d)
	hour, minute, nanosecs, timeNull := decodeTime(d)
	if dateNull || timeNull {
		return nil, nil
	}
	return time.Date(year, month, day, hour, minute, 0, nanosecs, time.UTC), nil
}

func decodeLongdateField(d *encoding.Decoder) (any, error) {
	v := d.Int64()
	if v == longdateNullValue {
		return nil, nil
	}
	return convertLongdateToTime(v), nil
}

func decodeSeconddateField(d *encoding.Decoder) (any, error) {
	v := d.Int64()
	if v == seconddateNullValue {
		return nil, nil
	}
	return convertSeconddateToTime(v), nil
}

func decodeDaydateField(d *encoding.Decoder) (any, error) {
	v := d.Int32()
	if v == daydateNullValue {
		return nil, nil
	}
	return convertDaydateToTime(int64(v)), nil
}

func decodeSecondtimeField(d *encoding.Decoder) (any, error) {
	v := d.Int32()
	if v == secondtimeNullValue {
		return nil, nil
	}
	return convertSecondtimeToTime(v), nil
}

func decodeDecimalField(d *encoding.Decoder) (any, error) {
	m, exp, err := d.Decimal()
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return fixedToRat(m, -exp), nil
}

func decodeFixedField(d *encoding.Decoder, size, scale int) (any, error) {
	m := d.Fixed(size)
	if m == nil {
		return nil, nil
	}
	return fixedToRat(m, scale), nil
}

func decodeVarField(d *encoding.Decoder) (any, error) {
	size, null := decodeVarBytesSize(d)
	if null {
		return nil, nil
	}
	b := make([]byte, size)
	d.Bytes(b)
	return b, nil
}

func decodeAlphanumField(d *encoding.Decoder) (any, error) {
	size, null := decodeVarBytesSize(d)
	if null {
		return nil, nil
	}
	switch d.Dfv() {
	case dfvLevel1:
		b := make([]byte, size)
		d.Bytes(b)
		return b, nil
	default:
		/*
			byte:
			- high bit set -> numeric
			- high bit unset -> alpha
			- bits 0-6: field size
		*/
		d.Byte() // ignore for the moment
		b := make([]byte, size-1)
		d.Bytes(b)
		return b, nil
	}
}

func decodeCesu8Field(d *encoding.Decoder) (any, error) {
	size, null := decodeVarBytesSize(d)
	if null {
		return nil, nil
	}
	return d.CESU8Bytes(size)
}

func decodeResult(tc typeCode, d *encoding.Decoder, scale int) (any, error) {
	switch tc {
	case tcBoolean:
		return decodeBoolean(d)
	case tcTinyint:
		if !d.Bool() { // null value
			return nil, nil
		}
		return int64(d.Byte()), nil
	case tcSmallint:
		if !d.Bool() { // null value
			return nil, nil
		}
		return int64(d.Int16()), nil
	case tcInteger:
		if !d.Bool() { // null value
			return nil, nil
		}
		return int64(d.Int32()), nil
	case tcBigint:
		if !d.Bool() { // null value
			return nil, nil
		}
		return d.Int64(), nil
	case tcReal:
		return decodeReal(d)
	case tcDouble:
		return decodeDouble(d)
	case tcDate:
		return decodeDateField(d)
	case tcTime:
		return decodeTimeField(d)
	case tcTimestamp:
		return decodeTimestampField(d)
	case tcLongdate:
		return decodeLongdateField(d)
	case tcSeconddate:
		return decodeSeconddateField(d)
	case tcDaydate:
		return decodeDaydateField(d)
	case tcSecondtime:
		return decodeSecondtimeField(d)
	case tcDecimal:
		return decodeDecimalField(d)
	case tcFixed8:
		return decodeFixedField(d, fixed8FieldSize, scale)
	case tcFixed12:
		return decodeFixedField(d, fixed12FieldSize, scale)
	case tcFixed16:
		return decodeFixedField(d, fixed16FieldSize, scale)
	case tcChar, tcVarchar, tcString, tcBinary, tcVarbinary, tcStPoint, tcStGeometry:
		return decodeVarField(d)
	case tcAlphanum:
		return decodeAlphanumField(d)
	case tcNchar, tcNvarchar, tcNstring, tcShorttext:
		return decodeCesu8Field(d)
	case tcBlob, tcClob, tcLocator, tcBintext:
		return decodeLobResult(d, false)
	case tcText, tcNclob, tcNlocator:
		return decodeLobResult(d, true)
	default:
		panic(fmt.Sprintf("invalid type code %s", tc))
	}
}

func decodeLobParameter(d *encoding.Decoder) (any, error) {
	// real decoding (sniffer) not yet supported
	// descr := &LobInDescr{}
	// descr.Opt = LobOptions(d.Byte())
	// descr._size = int(d.Int32())
	// descr.pos = int(d.Int32())
	d.Byte()
	d.Int32()
	d.Int32()
	return nil, nil
}

func decodeParameter(tc typeCode, d *encoding.Decoder, scale int) (any, error) {
	switch tc {
	case tcBoolean:
		return decodeBoolean(d)
	case tcTinyint:
		return int64(d.Byte()), nil
	case tcSmallint:
		return int64(d.Int16()), nil
	case tcInteger:
		return int64(d.Int32()), nil
	case tcBigint:
		return d.Int64(), nil
	case tcReal:
		return decodeReal(d)
	case tcDouble:
		return decodeDouble(d)
	case tcDate:
		return decodeDateField(d)
	case tcTime:
		return decodeTimeField(d)
	case tcTimestamp:
		return decodeTimestampField(d)
	case tcLongdate:
		return decodeLongdateField(d)
	case tcSeconddate:
		return decodeSeconddateField(d)
	case tcDaydate:
		return decodeDaydateField(d)
	case tcSecondtime:
		return decodeSecondtimeField(d)
	case tcDecimal:
		return decodeDecimalField(d)
	case tcFixed8:
		return decodeFixedField(d, fixed8FieldSize, scale)
	case tcFixed12:
		return decodeFixedField(d, fixed12FieldSize, scale)
	case tcFixed16:
		return decodeFixedField(d, fixed16FieldSize, scale)
	case tcChar, tcVarchar, tcString, tcBinary, tcVarbinary, tcStPoint, tcStGeometry:
		return decodeVarField(d)
	case tcAlphanum:
		return decodeAlphanumField(d)
	case tcNchar, tcNvarchar, tcNstring, tcShorttext:
		return decodeCesu8Field(d)
	case tcBlob, tcClob, tcLocator, tcBintext:
		return decodeLobParameter(d)
	case tcText, tcNclob, tcNlocator:
		return decodeLobParameter(d)
	default:
		panic(fmt.Sprintf("invalid type code %s", tc))
	}
}
