// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

// Package reflect provides a TypeFor helper usable before go1.22, where
// reflect.TypeFor was added to the standard library.
package reflect
