// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"fmt"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
)

// StatementID represents a prepared statement handle.
type StatementID uint64

func (id StatementID) String() string { return fmt.Sprintf("%d", id) }
func (id *StatementID) decode(dec *encoding.Decoder, ph *PartHeader) error {
	*id = StatementID(dec.Uint64())
	return dec.Error()
}
func (id StatementID) encode(enc *encoding.Encoder) error { enc.Uint64(uint64(id)); return nil }
