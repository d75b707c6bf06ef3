//go:build go1.18
// +build go1.18

// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

// check if part types implement partWriter interface
var _ partWriter = (*Options[ClientContextOption])(nil) // sufficient to check one option.

// check if part types implement partReader interface
var _ partReader = (*Options[ClientContextOption])(nil) // sufficient to check one option.
