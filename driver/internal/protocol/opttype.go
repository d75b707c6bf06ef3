// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"fmt"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
)

// optType is the codec for a single option value as stored in a ClientContext,
// ConnectOptions, DBConnectInfo or generic Options[K] map. Unlike fields of a
// resultset or a parameter list, option values are untyped Go values tagged
// with their own type code on the wire, so size/encode take the value
// explicitly instead of threading it through a field descriptor.
type optType interface {
	typeCode() typeCode
	size(v any) int
	encode(enc *encoding.Encoder, v any) error
	decode(dec *encoding.Decoder) any
}

type optBooleanType bool
type optTinyintType int8
type optIntType int32
type optBigintType int64
type optDoubleType float64
type optStringType string
type optBstringType []byte

func (optBooleanType) typeCode() typeCode { return tcBoolean }
func (optBooleanType) size(v any) int     { return 1 }
func (optBooleanType) encode(enc *encoding.Encoder, v any) error {
	b, ok := v.(optBooleanType)
	if !ok {
		return fmt.Errorf("invalid option value %[1]T %[1]v", v)
	}
	enc.Bool(bool(b))
	return nil
}
func (optBooleanType) decode(dec *encoding.Decoder) any { return optBooleanType(dec.Bool()) }

func (optTinyintType) typeCode() typeCode { return tcTinyint }
func (optTinyintType) size(v any) int     { return 1 }
func (optTinyintType) encode(enc *encoding.Encoder, v any) error {
	i, ok := v.(optTinyintType)
	if !ok {
		return fmt.Errorf("invalid option value %[1]T %[1]v", v)
	}
	enc.Int8(int8(i))
	return nil
}
func (optTinyintType) decode(dec *encoding.Decoder) any { return optTinyintType(dec.Int8()) }

func (optIntType) typeCode() typeCode { return tcInteger }
func (optIntType) size(v any) int     { return 4 }
func (optIntType) encode(enc *encoding.Encoder, v any) error {
	i, ok := v.(optIntType)
	if !ok {
		return fmt.Errorf("invalid option value %[1]T %[1]v", v)
	}
	enc.Int32(int32(i))
	return nil
}
func (optIntType) decode(dec *encoding.Decoder) any { return optIntType(dec.Int32()) }

func (optBigintType) typeCode() typeCode { return tcBigint }
func (optBigintType) size(v any) int     { return 8 }
func (optBigintType) encode(enc *encoding.Encoder, v any) error {
	i, ok := v.(optBigintType)
	if !ok {
		return fmt.Errorf("invalid option value %[1]T %[1]v", v)
	}
	enc.Int64(int64(i))
	return nil
}
func (optBigintType) decode(dec *encoding.Decoder) any { return optBigintType(dec.Int64()) }

func (optDoubleType) typeCode() typeCode { return tcDouble }
func (optDoubleType) size(v any) int     { return 8 }
func (optDoubleType) encode(enc *encoding.Encoder, v any) error {
	f, ok := v.(optDoubleType)
	if !ok {
		return fmt.Errorf("invalid option value %[1]T %[1]v", v)
	}
	enc.Float64(float64(f))
	return nil
}
func (optDoubleType) decode(dec *encoding.Decoder) any { return optDoubleType(dec.Float64()) }

// string and binary-string option values are length prefixed (2 bytes) rather
// than using the 1/3/5 byte indicator scheme of typed char/binary fields.
func (optStringType) typeCode() typeCode { return tcString }
func (optStringType) size(v any) int {
	s, ok := v.(optStringType)
	if !ok {
		return 0
	}
	return 2 + len(s)
}
func (optStringType) encode(enc *encoding.Encoder, v any) error {
	s, ok := v.(optStringType)
	if !ok {
		return fmt.Errorf("invalid option value %[1]T %[1]v", v)
	}
	enc.Int16(int16(len(s)))
	enc.String(string(s))
	return nil
}
func (optStringType) decode(dec *encoding.Decoder) any {
	size := int(dec.Int16())
	b := make([]byte, size)
	dec.Bytes(b)
	return optStringType(b)
}

func (optBstringType) typeCode() typeCode { return tcBstring }
func (optBstringType) size(v any) int {
	b, ok := v.(optBstringType)
	if !ok {
		return 0
	}
	return 2 + len(b)
}
func (optBstringType) encode(enc *encoding.Encoder, v any) error {
	b, ok := v.(optBstringType)
	if !ok {
		return fmt.Errorf("invalid option value %[1]T %[1]v", v)
	}
	enc.Int16(int16(len(b)))
	enc.Bytes(b)
	return nil
}
func (optBstringType) decode(dec *encoding.Decoder) any {
	size := int(dec.Int16())
	b := make([]byte, size)
	dec.Bytes(b)
	return optBstringType(b)
}

// getOptType returns the optType descriptor matching the dynamic type of v.
func getOptType(v any) optType {
	switch v.(type) {
	case optBooleanType:
		return optBooleanType(false)
	case optTinyintType:
		return optTinyintType(0)
	case optIntType:
		return optIntType(0)
	case optBigintType:
		return optBigintType(0)
	case optDoubleType:
		return optDoubleType(0)
	case optStringType:
		return optStringType("")
	case optBstringType:
		return optBstringType(nil)
	default:
		panic(fmt.Sprintf("invalid option value type %T", v))
	}
}

func (tc typeCode) optType() optType {
	switch tc {
	case tcBoolean:
		return optBooleanType(false)
	case tcTinyint:
		return optTinyintType(0)
	case tcInteger:
		return optIntType(0)
	case tcBigint:
		return optBigintType(0)
	case tcDouble:
		return optDoubleType(0)
	case tcString:
		return optStringType("")
	case tcBstring:
		return optBstringType(nil)
	default:
		panic(fmt.Sprintf("missing optType for typeCode %s", tc))
	}
}
