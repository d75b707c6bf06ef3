// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
	"github.com/sap-thirdparty/hdbproto/driver/unicode/cesu8"
)

// Command is a cesu8-encoded SQL command text.
type Command []byte

func (c Command) String() string { return string(c) }
func (c *Command) resize(size int) {
	if c == nil || size > cap(*c) {
		*c = make([]byte, size)
	} else {
		*c = (*c)[:size]
	}
}
func (c Command) size() int { return cesu8.Size(c) }
func (c *Command) decode(dec *encoding.Decoder, ph *PartHeader) error {
	c.resize(int(ph.bufferLength))
	var err error
	if *c, err = dec.CESU8Bytes(len(*c)); err != nil {
		return err
	}
	return dec.Error()
}
func (c Command) encode(enc *encoding.Encoder) error { enc.CESU8Bytes(c); return nil }
