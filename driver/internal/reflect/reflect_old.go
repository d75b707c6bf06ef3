//go:build !go1.22
// +build !go1.22

// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

// Delete after go1.21 is out of maintenance.

package reflect

import "reflect"

// TypeFor returns the reflect.Type for type T.
func TypeFor[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }
