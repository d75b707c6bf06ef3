// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

// PartKind identifies the wire format and semantics of a part's body.
type PartKind int8

// PartKind constants as defined by the HANA SQL command network protocol.
const (
	PkNil                  PartKind = 0
	PkCommand              PartKind = 3
	PkResultset            PartKind = 5
	PkError                PartKind = 6
	PkStatementID          PartKind = 10
	PkTransactionID        PartKind = 11
	PkRowsAffected         PartKind = 12
	PkResultsetID          PartKind = 13
	PkTopologyInformation  PartKind = 15
	PkTableLocation        PartKind = 16
	PkReadLobRequest       PartKind = 17
	PkReadLobReply         PartKind = 18
	PkAbapIStream          PartKind = 25
	PkAbapOStream          PartKind = 26
	PkCommandInfo          PartKind = 27
	PkWriteLobRequest      PartKind = 28
	PkClientContext        PartKind = 29
	PkWriteLobReply        PartKind = 30
	PkParameters           PartKind = 32
	PkAuthentication       PartKind = 33
	PkSessionContext       PartKind = 34
	PkClientID             PartKind = 35
	PkProfile              PartKind = 38
	PkStatementContext     PartKind = 39
	PkPartitionInformation PartKind = 40
	PkOutputParameters     PartKind = 41
	PkConnectOptions       PartKind = 42
	PkCommitOptions        PartKind = 43
	PkFetchOptions         PartKind = 44
	PkFetchSize            PartKind = 45
	PkParameterMetadata    PartKind = 47
	PkResultMetadata       PartKind = 48
	PkFindLobRequest       PartKind = 49
	PkFindLobReply         PartKind = 50
	PkClientInfo           PartKind = 57
	PkStreamData           PartKind = 58
	PkOStreamResult        PartKind = 59
	PkFetchedRowCount      PartKind = 60
	PkSearchedRowCount     PartKind = 61
	PkLastStreamData       PartKind = 62
	PkAuthenticationStatus PartKind = 64
	PkTransactionFlags     PartKind = 68
	PkDBConnectInfo        PartKind = 82
)

var partKindText = map[PartKind]string{
	PkNil:                  "nil",
	PkCommand:              "command",
	PkResultset:            "resultset",
	PkError:                "error",
	PkStatementID:          "statementID",
	PkTransactionID:        "transactionID",
	PkRowsAffected:         "rowsAffected",
	PkResultsetID:          "resultsetID",
	PkTopologyInformation:  "topologyInformation",
	PkTableLocation:        "tableLocation",
	PkReadLobRequest:       "readLobRequest",
	PkReadLobReply:         "readLobReply",
	PkAbapIStream:          "abapIStream",
	PkAbapOStream:          "abapOStream",
	PkCommandInfo:          "commandInfo",
	PkWriteLobRequest:      "writeLobRequest",
	PkClientContext:        "clientContext",
	PkWriteLobReply:        "writeLobReply",
	PkParameters:           "parameters",
	PkAuthentication:       "authentication",
	PkSessionContext:       "sessionContext",
	PkClientID:             "clientID",
	PkProfile:              "profile",
	PkStatementContext:     "statementContext",
	PkPartitionInformation: "partitionInformation",
	PkOutputParameters:     "outputParameters",
	PkConnectOptions:       "connectOptions",
	PkCommitOptions:        "commitOptions",
	PkFetchOptions:         "fetchOptions",
	PkFetchSize:            "fetchSize",
	PkParameterMetadata:    "parameterMetadata",
	PkResultMetadata:       "resultMetadata",
	PkFindLobRequest:       "findLobRequest",
	PkFindLobReply:         "findLobReply",
	PkClientInfo:           "clientInfo",
	PkStreamData:           "streamData",
	PkOStreamResult:        "oStreamResult",
	PkFetchedRowCount:      "fetchedRowCount",
	PkSearchedRowCount:     "searchedRowCount",
	PkLastStreamData:       "lastStreamData",
	PkAuthenticationStatus: "authenticationStatus",
	PkTransactionFlags:     "transactionFlags",
	PkDBConnectInfo:        "dbConnectInfo",
}

func (k PartKind) String() string {
	if t, ok := partKindText[k]; ok {
		return t
	}
	return "unknown"
}
