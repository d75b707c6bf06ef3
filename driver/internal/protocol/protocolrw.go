// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"bufio"
	"context"
	"io"

	"golang.org/x/text/transform"

	"github.com/sap-thirdparty/hdbproto/driver/internal/exp/slog"
)

// protocolReader is a context-less wrapper around Reader for use by Session,
// whose methods do not carry a context.Context of their own.
type protocolReader struct {
	ctx context.Context
	rd  Reader
	dfv int
}

func newProtocolReader(sniffer bool, rd io.Reader, decoder func() transform.Transformer) *protocolReader {
	var r Reader
	if sniffer {
		r = NewClientReader(rd, false, slog.Default(), decoder)
	} else {
		r = NewDBReader(rd, false, slog.Default(), decoder)
	}
	return &protocolReader{ctx: context.Background(), rd: r, dfv: dfvLevel1}
}

func (r *protocolReader) readProlog() error { return r.rd.ReadProlog(r.ctx) }
func (r *protocolReader) iterateParts(partFn func(ph *PartHeader)) error {
	return r.rd.IterateParts(r.ctx, partFn)
}
func (r *protocolReader) read(part partReader) error     { return r.rd.Read(r.ctx, part) }
func (r *protocolReader) readSkip() error                 { return r.rd.ReadSkip(r.ctx) }
func (r *protocolReader) sessionID() int64                { return r.rd.SessionID() }
func (r *protocolReader) functionCode() FunctionCode       { return r.rd.FunctionCode() }
func (r *protocolReader) setDfv(dfv int)                   { r.dfv = dfv }

// protocolWriter is a context-less wrapper around Writer for use by Session.
type protocolWriter struct {
	ctx context.Context
	wr  Writer
}

func newProtocolWriter(wr *bufio.Writer, encoder func() transform.Transformer, sv map[string]string) *protocolWriter {
	return &protocolWriter{ctx: context.Background(), wr: NewWriter(wr, false, slog.Default(), encoder, sv)}
}

func (w *protocolWriter) writeProlog() error { return w.wr.WriteProlog(w.ctx) }
func (w *protocolWriter) write(sessionID int64, mt MessageType, commit bool, writers ...partWriter) error {
	return w.wr.Write(w.ctx, sessionID, mt, commit, writers...)
}
