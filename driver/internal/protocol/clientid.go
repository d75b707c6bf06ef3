// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"fmt"
	"os"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
)

type ClientID []byte

// newClientID returns a ClientID built from the process id and hostname,
// identifying this client instance to the server.
func newClientID() ClientID {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return ClientID(fmt.Sprintf("%d@%s", os.Getpid(), hostname))
}

func (id ClientID) String() string { return string(id) }
func (id *ClientID) resize(size int) {
	if id == nil || size > cap(*id) {
		*id = make([]byte, size)
	} else {
		*id = (*id)[:size]
	}
}
func (id ClientID) size() int { return len(id) }
func (id *ClientID) decode(dec *encoding.Decoder, ph *PartHeader) error {
	id.resize(int(ph.bufferLength))
	dec.Bytes(*id)
	return dec.Error()
}
func (id ClientID) encode(enc *encoding.Encoder) error { enc.Bytes(id); return nil }
