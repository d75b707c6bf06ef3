//go:build go1.18
// +build go1.18

// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

// ClientContext represents a client context part.
type ClientContext = Options[ClientContextOption]

// ConnectOptions represents a connect options part.
type ConnectOptions = Options[ConnectOption]

// DBConnectInfo represents a database connect info part.
type DBConnectInfo = Options[DBConnectInfoType]

type statementContext = Options[statementContextType]
type transactionFlags = Options[transactionFlagType]
