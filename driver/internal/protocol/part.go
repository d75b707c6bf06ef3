// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"fmt"
	"math"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
)

const (
	partHeaderSize = 16
	maxPartNum     = math.MaxInt16
)

// MaxNumArg is the largest argument count a single part header can carry
// (argumentCount is encoded as a signed 16 bit wire field).
const MaxNumArg = maxPartNum

// partReader is implemented by parts the driver is able to read from the wire.
type partReader interface {
	Part
	decode(dec *encoding.Decoder, ph *PartHeader) error
}

// partWriter is implemented by parts the driver is able to write to the wire.
type partWriter interface {
	Part
	numArg() int
	size() int
	encode(enc *encoding.Encoder) error
}

// partReadWriter is implemented by parts that are exchanged in both directions,
// e.g. authentication parts whose shape depends on the negotiated method.
type partReadWriter interface {
	partReader
	partWriter
}

type partAttributes int8

const (
	paLastPacket      partAttributes = 0x01
	paNextPacket      partAttributes = 0x02
	paFirstPacket     partAttributes = 0x04
	paRowNotFound     partAttributes = 0x08
	paResultsetClosed partAttributes = 0x10
)

var partAttributesText = map[partAttributes]string{
	paLastPacket:      "lastPacket",
	paNextPacket:      "nextPacket",
	paFirstPacket:     "firstPacket",
	paRowNotFound:     "rowNotFound",
	paResultsetClosed: "resultsetClosed",
}

func (k partAttributes) String() string {
	t := make([]string, 0, len(partAttributesText))
	for attr, text := range partAttributesText {
		if (k & attr) != 0 {
			t = append(t, text)
		}
	}
	return fmt.Sprintf("%v", t)
}

// ResultsetClosed reports whether the server closed the resultset cursor.
func (k partAttributes) ResultsetClosed() bool { return (k & paResultsetClosed) == paResultsetClosed }

// LastPacket reports whether this part carries the last packet of a multi-packet reply.
func (k partAttributes) LastPacket() bool { return (k & paLastPacket) == paLastPacket }

// NoRows reports whether the last packet carried zero rows.
func (k partAttributes) NoRows() bool {
	attrs := paLastPacket | paRowNotFound
	return (k & attrs) == attrs
}

// PartHeader is the 16-byte header preceding every part body.
type PartHeader struct {
	PartKind         PartKind
	partAttributes   partAttributes
	argumentCount    int16
	bigArgumentCount int32
	bufferLength     int32
	bufferSize       int32
}

func (h *PartHeader) String() string {
	return fmt.Sprintf("kind %s partAttributes %s argumentCount %d bigArgumentCount %d bufferLength %d bufferSize %d",
		h.PartKind,
		h.partAttributes,
		h.argumentCount,
		h.bigArgumentCount,
		h.bufferLength,
		h.bufferSize,
	)
}

// Attrs returns the part attributes flags.
func (h *PartHeader) Attrs() partAttributes { return h.partAttributes }

func (h *PartHeader) setNumArg(numArg int) error {
	if numArg > maxPartNum {
		return fmt.Errorf("maximum number of arguments %d exceeded", numArg)
	}
	h.argumentCount = int16(numArg)
	h.bigArgumentCount = 0
	return nil
}

func (h *PartHeader) numArg() int {
	if h.bigArgumentCount != 0 {
		panic("part header: bigArgumentCount is set")
	}
	return int(h.argumentCount)
}

func (h *PartHeader) encode(enc *encoding.Encoder) error {
	enc.Int8(int8(h.PartKind))
	enc.Int8(int8(h.partAttributes))
	enc.Int16(h.argumentCount)
	enc.Int32(h.bigArgumentCount)
	enc.Int32(h.bufferLength)
	enc.Int32(h.bufferSize)
	return nil
}

func (h *PartHeader) decode(dec *encoding.Decoder) error {
	h.PartKind = PartKind(dec.Int8())
	h.partAttributes = partAttributes(dec.Int8())
	h.argumentCount = dec.Int16()
	h.bigArgumentCount = dec.Int32()
	h.bufferLength = dec.Int32()
	h.bufferSize = dec.Int32()
	return dec.Error()
}
