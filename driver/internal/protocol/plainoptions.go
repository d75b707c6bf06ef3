// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
)

// plainOptions is the int8-keyed option map shared by the option parts whose
// key type is a plain int8 alias (dbConnectInfo) and used as the common
// lookup surface for typed accessors (asString/asInt/asBool).
type plainOptions map[int8]any

func (o plainOptions) size() int {
	size := 2 * len(o) // option + type
	for _, v := range o {
		ot := getOptType(v)
		size += ot.size(v)
	}
	return size
}

func (o plainOptions) numArg() int { return len(o) }

func (o *plainOptions) decode(dec *encoding.Decoder, numArg int) error {
	*o = plainOptions{}
	for i := 0; i < numArg; i++ {
		k := dec.Int8()
		tc := typeCode(dec.Byte())
		ot := tc.optType()
		(*o)[k] = ot.decode(dec)
	}
	return dec.Error()
}

func (o plainOptions) encode(enc *encoding.Encoder) error {
	for k, v := range o {
		enc.Int8(k)
		ot := getOptType(v)
		enc.Int8(int8(ot.typeCode()))
		if err := ot.encode(enc, v); err != nil {
			return err
		}
	}
	return nil
}

func (o plainOptions) asString(k int8) string {
	if v, ok := o[k].(optStringType); ok {
		return string(v)
	}
	return ""
}

func (o plainOptions) asInt(k int8) int {
	if v, ok := o[k].(optIntType); ok {
		return int(v)
	}
	return 0
}

func (o plainOptions) asBool(k int8) bool {
	if v, ok := o[k].(optBooleanType); ok {
		return bool(v)
	}
	return false
}

// plain copies the connect options into the int8-keyed plainOptions map so
// the typed accessors can be reused across all option bag flavours.
func (co ConnectOptions) plain() plainOptions {
	o := make(plainOptions, len(co))
	for k, v := range co {
		o[int8(k)] = v
	}
	return o
}

// fullVersionString returns the CoFullVersionString connect option value.
func (co ConnectOptions) fullVersionString() string {
	return co.plain().asString(int8(CoFullVersionString))
}
