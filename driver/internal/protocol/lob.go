// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"fmt"
	"io"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
)

const writeLobRequestSize = 21

// LocatorID identifies a server side lob locator used for piecewise lob streaming.
type LocatorID uint64

func (id LocatorID) String() string { return fmt.Sprintf("%d", id) }

// LobOptions are the per-chunk flags exchanged while streaming lob data.
type LobOptions int8

const (
	loNullindicator LobOptions = 0x01
	loDataincluded  LobOptions = 0x02
	loLastdata      LobOptions = 0x04
)

var lobOptionsText = map[LobOptions]string{
	loNullindicator: "null indicator",
	loDataincluded:  "data included",
	loLastdata:      "last data",
}

func (o LobOptions) String() string {
	t := make([]string, 0, len(lobOptionsText))
	for option, text := range lobOptionsText {
		if (o & option) != 0 {
			t = append(t, text)
		}
	}
	return fmt.Sprintf("%v", t)
}

func (o LobOptions) isNull() bool     { return (o & loNullindicator) != 0 }
func (o LobOptions) isLastData() bool { return (o & loLastdata) != 0 }

// lobTypecode identifies the lob column type a lob descriptor was read for.
type lobTypecode int8

const (
	ltcUndefined lobTypecode = 0
	ltcBlob      lobTypecode = 1
	ltcClob      lobTypecode = 2
	ltcNclob     lobTypecode = 3
)

// LobOutDescr describes a lob value as returned in a result or output parameter.
// Additional chunks are fetched lazily via the session's ReadLob roundtrip.
type LobOutDescr struct {
	IsCharBased bool
	ltc         lobTypecode
	Opt         LobOptions
	NumChar     int64
	numByte     int64
	ID          LocatorID
	B           []byte
}

func (d *LobOutDescr) String() string {
	return fmt.Sprintf("charBased %t opt %s numChar %d numByte %d id %d", d.IsCharBased, d.Opt, d.NumChar, d.numByte, d.ID)
}

// LobInDescr describes a lob value to be streamed to the server as an input
// parameter. Data is pulled from the wrapped reader chunk by chunk.
type LobInDescr struct {
	Opt LobOptions
	pos int32
	b   []byte
	r   io.Reader
	eof bool
}

func newLobInDescr(r io.Reader) *LobInDescr { return &LobInDescr{r: r} }

func (d *LobInDescr) setPos(pos int) { d.pos = int32(pos) }
func (d *LobInDescr) size() int      { return len(d.b) }

// fetchNext reads the next chunk (at most chunkSize bytes) from the underlying
// reader and returns whether it was the last one.
func (d *LobInDescr) fetchNext(chunkSize int) (bool, error) {
	if d.eof {
		return true, nil
	}
	buf := make([]byte, chunkSize)
	n, err := io.ReadFull(d.r, buf)
	switch {
	case err == io.ErrUnexpectedEOF || err == io.EOF:
		d.eof = true
	case err != nil:
		return false, err
	}
	d.b = buf[:n]
	d.Opt = loDataincluded
	if d.eof {
		d.Opt |= loLastdata
	}
	return d.eof, nil
}

func (d *LobInDescr) writeFirst(enc *encoding.Encoder) {
	enc.Byte(byte(d.Opt))
	enc.Int32(int32(len(d.b)))
	enc.Int32(d.pos)
}

// WriteLobDescr pairs an input lob descriptor with the locator id the server
// assigned to it so subsequent chunks can be written to the right lob.
type WriteLobDescr struct {
	*LobInDescr
	id LocatorID
}

func (d *WriteLobDescr) String() string { return fmt.Sprintf("id %d", d.id) }

// ReadLobRequest asks the server for the next chunk of a result lob.
type ReadLobRequest struct {
	id        LocatorID
	ofs       int64
	chunkSize int32
}

func (r *ReadLobRequest) String() string {
	return fmt.Sprintf("id %d ofs %d chunkSize %d", r.id, r.ofs, r.chunkSize)
}
func (r *ReadLobRequest) encode(enc *encoding.Encoder) error {
	enc.Uint64(uint64(r.id))
	enc.Int64(r.ofs + 1) // 1-based
	enc.Int32(r.chunkSize)
	enc.Zeroes(4)
	return nil
}

// ReadLobReply carries one fetched lob chunk.
type ReadLobReply struct {
	id  LocatorID
	opt LobOptions
	b   []byte
}

func (r *ReadLobReply) String() string { return fmt.Sprintf("id %d opt %s len(b) %d", r.id, r.opt, len(r.b)) }
func (r *ReadLobReply) decode(dec *encoding.Decoder, ph *PartHeader) error {
	r.id = LocatorID(dec.Uint64())
	r.opt = LobOptions(dec.Int8())
	chunkLen := int(dec.Int32())
	dec.Skip(3)
	r.b = make([]byte, chunkLen)
	dec.Bytes(r.b)
	return dec.Error()
}

// WriteLobRequest writes one chunk per pending input lob descriptor.
type WriteLobRequest struct {
	descrs []*WriteLobDescr
}

func (r *WriteLobRequest) String() string { return fmt.Sprintf("descrs %v", r.descrs) }
func (r *WriteLobRequest) size() int {
	size := 0
	for _, d := range r.descrs {
		size += writeLobRequestSize + len(d.b)
	}
	return size
}
func (r *WriteLobRequest) numArg() int { return len(r.descrs) }
func (r *WriteLobRequest) encode(enc *encoding.Encoder) error {
	for _, d := range r.descrs {
		enc.Uint64(uint64(d.id))
		opt := loDataincluded
		if d.Opt.isLastData() {
			opt |= loLastdata
		}
		enc.Int8(int8(opt))
		enc.Int64(-1) // offset (-1 := append)
		enc.Int32(int32(len(d.b)))
		enc.Bytes(d.b)
	}
	return nil
}

// WriteLobReply returns the locator ids assigned to the lobs the server wants
// written, one id per still-incomplete descriptor.
type WriteLobReply struct {
	ids []LocatorID
}

func (r *WriteLobReply) String() string { return fmt.Sprintf("ids %v", r.ids) }
func (r *WriteLobReply) decode(dec *encoding.Decoder, ph *PartHeader) error {
	numArg := ph.numArg()
	r.ids = resizeSlice(r.ids, numArg)
	for i := 0; i < numArg; i++ {
		r.ids[i] = LocatorID(dec.Uint64())
	}
	return dec.Error()
}
