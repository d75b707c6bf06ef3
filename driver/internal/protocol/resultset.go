// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"database/sql/driver"
	"io"
	"reflect"
)

// PrepareResult is the server's answer to Prepare: the statement handle plus
// the input/output field descriptors needed to encode parameters and decode
// rows for every later Exec/Query/ExecCall/QueryCall against this statement.
type PrepareResult struct {
	session         *ConnectionCore
	fc              FunctionCode
	stmtID          uint64
	parameterFields []*ParameterField
	resultFields    []*ResultField
}

// IsProcedureCall returns true if the prepared statement is a CALL statement.
func (pr *PrepareResult) IsProcedureCall() bool { return pr.fc.IsProcedureCall() }

// NumField returns the number of parameter fields of the prepared statement.
func (pr *PrepareResult) NumField() int { return len(pr.parameterFields) }

// NumInputField returns the number of IN/INOUT parameter fields.
func (pr *PrepareResult) NumInputField() int {
	n := 0
	for _, f := range pr.parameterFields {
		if f.In() {
			n++
		}
	}
	return n
}

// StmtID returns the server side statement handle.
func (pr *PrepareResult) StmtID() uint64 { return pr.stmtID }

// ResultFields returns the result field descriptors of the prepared statement,
// if any (e.g. a prepared query, or a CALL statement with table outputs).
func (pr *PrepareResult) ResultFields() []*ResultField { return pr.resultFields }

var noColumns = []string{}

// noResult is the driver.Rows returned for statements that produce no rows
// (DDL, plain DML without a RETURNING clause).
type noResult struct{}

// NoResult is the shared driver.Rows value for statements without a result set.
var NoResult driver.Rows = noResult{}

func (noResult) Columns() []string              { return noColumns }
func (noResult) Close() error                   { return nil }
func (noResult) Next(dest []driver.Value) error { return io.EOF }

// resultSetState tracks whether a ResultSet may still be fetched from
// (Open) or has given up its server side handle (Closed) - either because
// CloseResultSet was acknowledged, or because the last packet already
// carried the server's own resultsetClosed attribute.
type resultSetState int

const (
	rsOpen resultSetState = iota
	rsClosed
)

// ResultSet is the cursor over the rows of a query: the result field
// descriptors, the resultset ID used for FetchNext/CloseResultSet, the row
// buffer currently held in memory, and a back-reference to the
// ConnectionCore it was fetched on. core is shared with every other
// statement and resultset on the same wire connection, so every method that
// touches it must be called with the caller's connection-wide mutex held -
// ResultSet itself holds no lock, by design, the same way queryResult held
// a bare *conn in the teacher's driver.
type ResultSet struct {
	session      *ConnectionCore
	fields       []*ResultField
	rsID         uint64
	fieldValues  []driver.Value
	decodeErrors DecodeErrors
	pos          int
	attrs        partAttributes
	state        resultSetState
	_columns     []string
}

// Columns implements the driver.Rows interface.
func (rs *ResultSet) Columns() []string {
	if rs._columns == nil {
		rs._columns = make([]string, len(rs.fields))
		for i, f := range rs.fields {
			rs._columns[i] = f.Name()
		}
	}
	return rs._columns
}

// Close implements the driver.Rows interface. It is idempotent: a resultset
// the server already closed (attrs.ResultsetClosed()) or one this call
// already closed returns nil without a round-trip.
func (rs *ResultSet) Close() error {
	if rs.state == rsClosed || rs.attrs.ResultsetClosed() {
		rs.state = rsClosed
		return nil
	}
	rs.state = rsClosed
	return rs.session.CloseResultsetID(rs.rsID)
}

func (rs *ResultSet) numRow() int {
	if len(rs.fields) == 0 || len(rs.fieldValues) == 0 {
		return 0
	}
	return len(rs.fieldValues) / len(rs.fields)
}

func (rs *ResultSet) copyRow(idx int, dest []driver.Value) {
	cols := len(rs.fields)
	copy(dest, rs.fieldValues[idx*cols:(idx+1)*cols])
}

// Next implements the driver.Rows interface: transparent fetch-on-empty when
// the buffer is exhausted but the server hasn't sent its last packet yet.
func (rs *ResultSet) Next(dest []driver.Value) error {
	if rs.pos >= rs.numRow() {
		if rs.attrs.LastPacket() {
			return io.EOF
		}
		if err := rs.session.fetchNext(rs); err != nil {
			rs.state = rsClosed
			return err
		}
		rs.pos = 0
		if rs.numRow() == 0 {
			return io.EOF
		}
	}
	rs.copyRow(rs.pos, dest)
	err := rs.decodeErrors.RowError(rs.pos)
	rs.pos++
	return err
}

// ColumnTypeDatabaseTypeName implements driver.RowsColumnTypeDatabaseTypeName.
func (rs *ResultSet) ColumnTypeDatabaseTypeName(idx int) string { return rs.fields[idx].TypeName() }

// ColumnTypeLength implements driver.RowsColumnTypeLength.
func (rs *ResultSet) ColumnTypeLength(idx int) (int64, bool) { return rs.fields[idx].TypeLength() }

// ColumnTypeNullable implements driver.RowsColumnTypeNullable.
func (rs *ResultSet) ColumnTypeNullable(idx int) (bool, bool) { return rs.fields[idx].Nullable(), true }

// ColumnTypePrecisionScale implements driver.RowsColumnTypePrecisionScale.
func (rs *ResultSet) ColumnTypePrecisionScale(idx int) (int64, int64, bool) {
	return rs.fields[idx].TypePrecisionScale()
}

// ColumnTypeScanType implements driver.RowsColumnTypeScanType.
func (rs *ResultSet) ColumnTypeScanType(idx int) reflect.Type { return rs.fields[idx].ScanType() }

var (
	_ driver.Rows                           = (*ResultSet)(nil)
	_ driver.RowsColumnTypeDatabaseTypeName = (*ResultSet)(nil)
	_ driver.RowsColumnTypeLength           = (*ResultSet)(nil)
	_ driver.RowsColumnTypeNullable         = (*ResultSet)(nil)
	_ driver.RowsColumnTypePrecisionScale   = (*ResultSet)(nil)
	_ driver.RowsColumnTypeScanType         = (*ResultSet)(nil)
)

// CallResult carries the output parameters of a stored procedure call,
// plus any table results it produced (appended as extra Rows for legacy
// callers that expect one resultset per OUT table parameter).
type CallResult struct {
	session      *ConnectionCore
	outputFields []*ParameterField
	fieldValues  []driver.Value
	decodeErrors DecodeErrors
	qrs          []*ResultSet
	eof          bool
	_columns     []string
}

// Columns implements the driver.Rows interface.
func (cr *CallResult) Columns() []string {
	if cr._columns == nil {
		cr._columns = make([]string, len(cr.outputFields))
		for i, f := range cr.outputFields {
			cr._columns[i] = f.name()
		}
	}
	return cr._columns
}

// Next implements the driver.Rows interface: a CallResult carries exactly
// one row of output parameter values.
func (cr *CallResult) Next(dest []driver.Value) error {
	if len(cr.fieldValues) == 0 || cr.eof {
		return io.EOF
	}
	copy(dest, cr.fieldValues)
	err := cr.decodeErrors.RowError(0)
	cr.eof = true
	return err
}

// Close implements the driver.Rows interface.
func (cr *CallResult) Close() error { return nil }

var _ driver.Rows = (*CallResult)(nil)
