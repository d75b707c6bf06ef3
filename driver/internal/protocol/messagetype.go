// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import "fmt"

// MessageType identifies the kind of request carried by a segment.
type MessageType int8

const (
	MtNil             MessageType = 0
	MtExecuteDirect   MessageType = 2
	MtPrepare         MessageType = 3
	MtAbapStream      MessageType = 4
	MtXAStart         MessageType = 5
	MtXAJoin          MessageType = 6
	MtExecute         MessageType = 13
	MtWriteLob        MessageType = 16
	MtReadLob         MessageType = 17
	MtFindLob         MessageType = 18
	MtAuthenticate    MessageType = 65
	MtConnect         MessageType = 66
	MtCommit          MessageType = 67
	MtRollback        MessageType = 68
	MtCloseResultset  MessageType = 69
	MtDropStatementID MessageType = 70
	MtFetchNext       MessageType = 71
	MtFetchAbsolute   MessageType = 72
	MtFetchRelative   MessageType = 73
	MtFetchFirst      MessageType = 74
	MtFetchLast       MessageType = 75
	MtDisconnect      MessageType = 77
	MtExecuteITab     MessageType = 78
	MtFetchNextITab   MessageType = 79
	MtInsertNextITab  MessageType = 80
	MtBatchPrepare    MessageType = 81
	MtDBConnectInfo   MessageType = 82
	MtXopenXAStart    MessageType = 83
	MtXopenXAEnd      MessageType = 84
	MtXopenXAPrepare  MessageType = 85
	MtXopenXACommit   MessageType = 86
	MtXopenXARollback MessageType = 87
	MtXopenXARecover  MessageType = 88
	MtXopenXAForget   MessageType = 89
)

var messageTypeText = map[MessageType]string{
	MtNil: "nil", MtExecuteDirect: "executeDirect", MtPrepare: "prepare",
	MtAbapStream: "abapStream", MtXAStart: "xaStart", MtXAJoin: "xaJoin",
	MtExecute: "execute", MtWriteLob: "writeLob", MtReadLob: "readLob",
	MtFindLob: "findLob", MtAuthenticate: "authenticate", MtConnect: "connect",
	MtCommit: "commit", MtRollback: "rollback", MtCloseResultset: "closeResultset",
	MtDropStatementID: "dropStatementID", MtFetchNext: "fetchNext",
	MtFetchAbsolute: "fetchAbsolute", MtFetchRelative: "fetchRelative",
	MtFetchFirst: "fetchFirst", MtFetchLast: "fetchLast", MtDisconnect: "disconnect",
	MtExecuteITab: "executeITab", MtFetchNextITab: "fetchNextITab",
	MtInsertNextITab: "insertNextITab", MtBatchPrepare: "batchPrepare",
	MtDBConnectInfo: "dbConnectInfo",
}

func (mt MessageType) String() string {
	if s, ok := messageTypeText[mt]; ok {
		return s
	}
	return fmt.Sprintf("messageType(%d)", int8(mt))
}

// ClientInfoSupported reports whether the server accepts a leading
// ClientInfo part for this message type.
func (mt MessageType) ClientInfoSupported() bool {
	return mt == MtPrepare || mt == MtExecuteDirect || mt == MtExecute
}
