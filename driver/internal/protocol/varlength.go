// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"fmt"
	"math"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
	"github.com/sap-thirdparty/hdbproto/driver/unicode/cesu8"
)

// length indicator byte values for variable length fields.
const (
	bytesLenIndNullValue byte = 255
	bytesLenIndSmall     byte = 245
	bytesLenIndMedium    byte = 246
	bytesLenIndBig       byte = 247
)

// varBytesSize returns the wire size of a variable length field of size bytes,
// including its length indicator.
func varBytesSize(size int) int {
	switch {
	case size <= int(bytesLenIndSmall):
		return size + 1
	case size <= math.MaxInt16:
		return size + 3
	default:
		return size + 5
	}
}

func encodeVarBytesSize(e *encoding.Encoder, size int) error {
	switch {
	case size <= int(bytesLenIndSmall):
		e.Byte(byte(size))
	case size <= math.MaxInt16:
		e.Byte(bytesLenIndMedium)
		e.Int16(int16(size))
	case size <= math.MaxInt32:
		e.Byte(bytesLenIndBig)
		e.Int32(int32(size))
	default:
		return fmt.Errorf("max argument length %d of string exceeded", size)
	}
	return nil
}

func encodeVarBytes(e *encoding.Encoder, p []byte) error {
	if err := encodeVarBytesSize(e, len(p)); err != nil {
		return err
	}
	e.Bytes(p)
	return nil
}

func encodeVarString(e *encoding.Encoder, s string) error {
	if err := encodeVarBytesSize(e, len(s)); err != nil {
		return err
	}
	e.String(s)
	return nil
}

func encodeCESU8Bytes(e *encoding.Encoder, p []byte) error {
	if err := encodeVarBytesSize(e, cesu8.Size(p)); err != nil {
		return err
	}
	e.CESU8Bytes(p)
	return nil
}

func encodeCESU8String(e *encoding.Encoder, s string) error {
	if err := encodeVarBytesSize(e, cesu8.StringSize(s)); err != nil {
		return err
	}
	e.CESU8String(s)
	return nil
}

// decodeVarBytesSize reads the length indicator of a variable length field and
// reports whether the field is null.
func decodeVarBytesSize(d *encoding.Decoder) (int, bool) {
	ind := d.Byte()
	switch {
	case ind == bytesLenIndNullValue:
		return 0, true
	case ind <= bytesLenIndSmall:
		return int(ind), false
	case ind == bytesLenIndMedium:
		return int(d.Int16()), false
	case ind == bytesLenIndBig:
		return int(d.Int32()), false
	default:
		return 0, false
	}
}

func decodeVarBytes(d *encoding.Decoder) ([]byte, error) {
	size, null := decodeVarBytesSize(d)
	if null {
		return nil, nil
	}
	b := make([]byte, size)
	d.Bytes(b)
	return b, nil
}

func decodeVarString(d *encoding.Decoder) (string, error) {
	b, err := decodeVarBytes(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeCESU8String(d *encoding.Decoder) (string, error) {
	size, null := decodeVarBytesSize(d)
	if null {
		return "", nil
	}
	b, err := d.CESU8Bytes(size)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// shortBytes en-/decodes a byte slice prefixed by a single length byte, as
// used for the fixed, short fields of the initial authentication exchange
// (method names, empty parameters).
type shortBytes struct{}

var authShortBytes shortBytes

func (shortBytes) encode(e *encoding.Encoder, b []byte) error {
	if len(b) > math.MaxUint8 {
		return fmt.Errorf("max argument length %d exceeded", len(b))
	}
	e.Byte(byte(len(b)))
	e.Bytes(b)
	return nil
}

func (shortBytes) decode(d *encoding.Decoder) []byte {
	size := d.Byte()
	b := make([]byte, size)
	d.Bytes(b)
	return b
}

// shortCESU8String is like shortBytes but for CESU-8 encoded unicode strings
// (e.g. the JWT authentication method's user name fields).
type shortCESU8String struct{}

var authShortCESU8String shortCESU8String

func (shortCESU8String) encode(e *encoding.Encoder, s string) error {
	size := cesu8.StringSize(s)
	if size > math.MaxUint8 {
		return fmt.Errorf("max argument length %d exceeded", size)
	}
	e.Byte(byte(size))
	e.CESU8String(s)
	return nil
}

func (shortCESU8String) decode(d *encoding.Decoder) (string, error) {
	size := d.Byte()
	b, err := d.CESU8Bytes(int(size))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
