// SPDX-FileCopyrightText: 2014-2021 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"fmt"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
)

const (
	segmentHeaderSize = 24
)

// FunctionCode classifies a reply segment (select, insert, ddl, ...).
type FunctionCode int16

const (
	FcNil                     FunctionCode = 0
	FcDDL                     FunctionCode = 10
	FcInsert                  FunctionCode = 11
	FcUpdate                  FunctionCode = 12
	FcDelete                  FunctionCode = 13
	FcSelect                  FunctionCode = 14
	FcSelectForUpdate         FunctionCode = 16
	FcExplain                 FunctionCode = 17
	FcDBProcedureCall         FunctionCode = 18
	FcDBProcedureCallWithResult FunctionCode = 19
	FcFetch                   FunctionCode = 20
	FcCommit                  FunctionCode = 21
	FcRollback                FunctionCode = 22
	FcSavepoint               FunctionCode = 23
	FcConnect                 FunctionCode = 24
	FcWriteLob                FunctionCode = 25
	FcReadLob                 FunctionCode = 26
	FcDisconnect              FunctionCode = 29
	FcCloseCursor             FunctionCode = 30
	FcFindLob                 FunctionCode = 31
	FcAuthenticate            FunctionCode = 32
	FcSetClientInfo           FunctionCode = 34
	FcXATransaction           FunctionCode = 36
	FcXopenXAStart            FunctionCode = 37
	FcXopenXAEnd              FunctionCode = 38
	FcXopenXAPrepare          FunctionCode = 39
	FcXopenXACommit           FunctionCode = 40
	FcXopenXARollback         FunctionCode = 41
	FcXopenXARecover          FunctionCode = 42
	FcXopenXAForget           FunctionCode = 43
)

var functionCodeText = map[FunctionCode]string{
	FcNil:                     "nil",
	FcDDL:                     "ddl",
	FcInsert:                  "insert",
	FcUpdate:                  "update",
	FcDelete:                  "delete",
	FcSelect:                  "select",
	FcSelectForUpdate:         "selectForUpdate",
	FcExplain:                 "explain",
	FcDBProcedureCall:         "dbProcedureCall",
	FcDBProcedureCallWithResult: "dbProcedureCallWithResult",
	FcFetch:                   "fetch",
	FcCommit:                  "commit",
	FcRollback:                "rollback",
	FcSavepoint:               "savepoint",
	FcConnect:                 "connect",
	FcWriteLob:                "writeLob",
	FcReadLob:                 "readLob",
	FcDisconnect:              "disconnect",
	FcCloseCursor:             "closeCursor",
	FcFindLob:                 "findLob",
	FcAuthenticate:            "authenticate",
	FcSetClientInfo:           "setClientInfo",
}

func (fc FunctionCode) String() string {
	if s, ok := functionCodeText[fc]; ok {
		return s
	}
	return fmt.Sprintf("functionCode(%d)", int16(fc))
}

// segmentHeader is the 24-byte header that starts each segment of a message
// (the reader iterates over every segment the message header announces).
type segmentHeader struct {
	segmentLength   int32
	segmentOfs      int32
	noOfParts       int16
	segmentNo       int16
	segmentKind     segmentKind
	messageType     MessageType
	commit          bool
	commandOptions  int8
	functionCode    FunctionCode
}

func (h *segmentHeader) String() string {
	switch h.segmentKind {
	case skRequest:
		return fmt.Sprintf("segmentLength %d segmentOfs %d noOfParts %d segmentNo %d segmentKind %s messageType %s commit %t commandOptions %d",
			h.segmentLength, h.segmentOfs, h.noOfParts, h.segmentNo, h.segmentKind, h.messageType, h.commit, h.commandOptions)
	default:
		return fmt.Sprintf("segmentLength %d segmentOfs %d noOfParts %d segmentNo %d segmentKind %s functionCode %s",
			h.segmentLength, h.segmentOfs, h.noOfParts, h.segmentNo, h.segmentKind, h.functionCode)
	}
}

func (h *segmentHeader) encode(enc *encoding.Encoder) error {
	enc.Int32(h.segmentLength)
	enc.Int32(h.segmentOfs)
	enc.Int16(h.noOfParts)
	enc.Int16(h.segmentNo)
	enc.Int8(int8(h.segmentKind))
	enc.Int8(int8(h.messageType))
	enc.Bool(h.commit)
	enc.Int8(h.commandOptions)
	enc.Zeroes(8)
	return nil
}

// decode reads the fixed 24-byte layout. The byte following segmentKind is
// message_type on an outgoing request segment and reply_type (functionCode)
// on an incoming reply/error segment - same wire position, different
// interpretation depending on segmentKind.
func (h *segmentHeader) decode(dec *encoding.Decoder) error {
	h.segmentLength = dec.Int32()
	h.segmentOfs = dec.Int32()
	h.noOfParts = dec.Int16()
	h.segmentNo = dec.Int16()
	h.segmentKind = segmentKind(dec.Int8())
	typeByte := dec.Int8()
	h.commit = dec.Bool()
	h.commandOptions = dec.Int8()
	switch h.segmentKind {
	case skRequest:
		h.messageType = MessageType(typeByte)
	default:
		h.functionCode = FunctionCode(typeByte)
	}
	dec.Skip(8)
	return dec.Error()
}
