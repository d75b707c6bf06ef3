// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

//go:generate stringer -type=typeCode,MessageType,ClientContextOption,ConnectOption,DBConnectInfoType,DataType,FunctionCode,PartKind,Cdm,endianess,segmentKind,statementContextType,topologyOption,transactionFlagType,dpv,lobTypecode -output=x_stringer.go
