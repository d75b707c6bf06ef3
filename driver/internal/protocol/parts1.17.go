//go:build !go1.18
// +build !go1.18

// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

// check if part types implement partWriter interface
var (
	_ partWriter = (*ClientContext)(nil)
	_ partWriter = (*ConnectOptions)(nil)
	_ partWriter = (*DBConnectInfo)(nil)
)

// check if part types implement partReader interface
var (
	_ partReader = (*ClientContext)(nil)
	_ partReader = (*ConnectOptions)(nil)
	_ partReader = (*transactionFlags)(nil)
	_ partReader = (*statementContext)(nil)
	_ partReader = (*DBConnectInfo)(nil)
)
