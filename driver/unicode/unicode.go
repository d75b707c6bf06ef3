// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

// Package unicode provides helpers shared by the driver's CESU-8/UTF-8 codecs.
package unicode

import "errors"

// ErrInvalidUtf8 is returned when a byte sequence is not valid UTF-8.
var ErrInvalidUtf8 = errors.New("invalid utf8")
