// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"maps"
	"slices"

	p "github.com/sap-thirdparty/hdbproto/driver/internal/protocol"
)

// aliases for the generic wire option maps.
type connectOptions = p.Options[p.ConnectOption]
type dbConnectInfo = p.Options[p.DBConnectInfoType]
type clientContext = p.Options[p.ClientContextOption]

func cloneStringSlice(s []string) []string                       { return slices.Clone(s) }
func cloneStringStringMap(m map[string]string) map[string]string { return maps.Clone(m) }

func sortSliceUint64(s []uint64)                       { slices.Sort(s) }
func compactSliceUint64(s []uint64) []uint64           { return slices.Compact(s) }
func binarySearchSliceUint64(s []uint64, x uint64) int { i, _ := slices.BinarySearch(s, x); return i }
