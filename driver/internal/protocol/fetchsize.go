// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"fmt"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
)

// Fetchsize represents the number of rows the server should return per fetch.
type Fetchsize int32

func (s Fetchsize) String() string { return fmt.Sprintf("fetchsize %d", s) }
func (s *Fetchsize) decode(dec *encoding.Decoder, ph *PartHeader) error {
	*s = Fetchsize(dec.Int32())
	return dec.Error()
}
func (s Fetchsize) encode(enc *encoding.Encoder) error { enc.Int32(int32(s)); return nil }
