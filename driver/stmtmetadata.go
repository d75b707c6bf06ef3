// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"reflect"

	p "github.com/sap-thirdparty/hdbproto/driver/internal/protocol"
)

// ColumnType describes one result column of a prepared statement, as
// reported through a StmtMetadata context value.
type ColumnType struct{ field *p.ResultField }

// Name returns the column's display name.
func (c ColumnType) Name() string { return c.field.Name() }

// ScanType returns the Go type the column's value is decoded into.
func (c ColumnType) ScanType() reflect.Type { return c.field.ScanType() }

// DatabaseTypeName returns the HANA wire type name of the column.
func (c ColumnType) DatabaseTypeName() string { return c.field.TypeName() }

// Nullable reports whether the column may contain NULL values.
func (c ColumnType) Nullable() bool { return c.field.Nullable() }

// StmtMetadata carries the column descriptors of a prepared statement back
// to the caller of PrepareContext, via a context value set with
// WithStmtMetadata - database/sql itself has no API for retrieving a
// statement's result shape before the first Query.
type StmtMetadata struct{ pr *p.PrepareResult }

// ColumnTypes returns the result column descriptors of the prepared statement.
func (m *StmtMetadata) ColumnTypes() []ColumnType {
	fields := m.pr.ResultFields()
	columnTypes := make([]ColumnType, len(fields))
	for i, f := range fields {
		columnTypes[i] = ColumnType{field: f}
	}
	return columnTypes
}

type stmtMetadataCtxKeyType struct{}

var stmtMetadataCtxKey stmtMetadataCtxKeyType

// WithStmtMetadata returns a context carrying md, to be filled in by the
// PrepareContext call the context is passed to.
func WithStmtMetadata(ctx context.Context, md *StmtMetadata) context.Context {
	return context.WithValue(ctx, stmtMetadataCtxKey, md)
}
