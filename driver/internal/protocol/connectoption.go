// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

// ConnectOption represents a connect option as exchanged during the
// Authenticate/Connect handshake.
type ConnectOption int8

// ConnectOption constants (subset relevant to this driver; the full option
// bag is server-defined and forward-compatible - unknown options just round-trip).
const (
	CoConnectionID                       ConnectOption = 1
	CoCompleteArrayExecution             ConnectOption = 2
	CoClientLocale                       ConnectOption = 3
	CoSupportsLargeBulkOperations        ConnectOption = 4
	CoDistributionEnabled                ConnectOption = 5
	CoPrimaryConnectionID                ConnectOption = 6
	CoPrimaryConnectionHost              ConnectOption = 7
	CoPrimaryConnectionPort              ConnectOption = 8
	CoCompleteDatatypeSupport            ConnectOption = 9
	CoLargeNumberOfParametersSupport     ConnectOption = 10
	CoSystemID                           ConnectOption = 11
	CoDataFormatVersion                  ConnectOption = 12
	CoAbapVarcharMode                    ConnectOption = 13
	CoSelectForUpdateSupported           ConnectOption = 14
	CoClientDistributionMode             ConnectOption = 15
	CoEngineDataFormatVersion            ConnectOption = 16
	CoDistributionProtocolVersion        ConnectOption = 17
	CoSplitBatchCommands                 ConnectOption = 18
	CoUseTransactionFlagsOnly            ConnectOption = 19
	CoRowSlotImageParameter              ConnectOption = 20
	CoIgnoreUnknownParts                 ConnectOption = 21
	CoTableOutputParameterMetadataSupport ConnectOption = 22
	CoDataFormatVersion2                 ConnectOption = 23
	CoItabParameter                      ConnectOption = 24
	CoDescribeTableOutputParameter       ConnectOption = 25
	CoColumnarResultSet                  ConnectOption = 26
	CoScrollableResultSet                ConnectOption = 27
	CoClientInfoNullValueSupported       ConnectOption = 28
	CoAssociatedConnectionID             ConnectOption = 29
	CoNonTransactionalPrepare            ConnectOption = 30
	CoFdaEnabled                         ConnectOption = 31
	CoOsUser                             ConnectOption = 32
	CoRowSlotImageResultSet              ConnectOption = 33
	CoEndianness                         ConnectOption = 34
	CoUpdateTopologyAnswer               ConnectOption = 35
	CoEnableArrayType                    ConnectOption = 36
	CoImplicitLobStreaming               ConnectOption = 37
	CoCachedViewProperty                 ConnectOption = 38
	CoXOpenXAProtocolSupported           ConnectOption = 39
	CoPrimaryCommitRedirectionSupported  ConnectOption = 40
	CoActiveActiveProtocolVersion        ConnectOption = 41
	CoActiveActiveConnOriginSite         ConnectOption = 42
	CoQueryTimeoutSupported              ConnectOption = 43
	CoFullVersionString                  ConnectOption = 44
	CoDatabaseName                       ConnectOption = 45
	CoBuildPlatform                      ConnectOption = 46
)

// client distribution mode values.
const (
	cdmOff                 optIntType = 0
	cdmConnection          optIntType = 1
	cdmStatement           optIntType = 2
	cdmConnectionStatement optIntType = 3
)

var connectOptionText = map[ConnectOption]string{
	CoConnectionID:                       "connectionID",
	CoCompleteArrayExecution:             "completeArrayExecution",
	CoClientLocale:                       "clientLocale",
	CoSupportsLargeBulkOperations:        "supportsLargeBulkOperations",
	CoDistributionEnabled:                "distributionEnabled",
	CoDataFormatVersion:                  "dataFormatVersion",
	CoSelectForUpdateSupported:           "selectForUpdateSupported",
	CoClientDistributionMode:             "clientDistributionMode",
	CoDistributionProtocolVersion:        "distributionProtocolVersion",
	CoSplitBatchCommands:                 "splitBatchCommands",
	CoDataFormatVersion2:                 "dataFormatVersion2",
	CoFullVersionString:                  "fullVersionString",
	CoDatabaseName:                       "databaseName",
}

func (o ConnectOption) String() string {
	if t, ok := connectOptionText[o]; ok {
		return t
	}
	return "unknown"
}
