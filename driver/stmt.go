// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"database/sql/driver"
	"fmt"

	p "github.com/sap-thirdparty/hdbproto/driver/internal/protocol"
)

// check if stmt implements all required interfaces.
var (
	_ driver.Stmt              = (*stmt)(nil)
	_ driver.StmtExecContext   = (*stmt)(nil)
	_ driver.StmtQueryContext  = (*stmt)(nil)
	_ driver.NamedValueChecker = (*stmt)(nil)
)

// stmt is a prepared statement bound to a connection. It carries no lock of
// its own - every method takes conn's mutex for the duration of its server
// call, same as the direct (non-prepared) conn.QueryContext/ExecContext.
type stmt struct {
	conn  *conn
	query string
	pr    *p.PrepareResult
}

func newStmt(c *conn, query string, pr *p.PrepareResult) *stmt {
	return &stmt{conn: c, query: query, pr: pr}
}

// NumInput returns -1: depending on the statement, valid argument counts are
// #parameters (plain exec/query), a multiple of #parameters (bulk exec), or
// #input parameters (procedure call) - database/sql skips its own check
// when NumInput is negative and leaves validation to ExecContext/QueryContext.
func (s *stmt) NumInput() int { return -1 }

func (s *stmt) Close() error {
	c := s.conn
	defer func() { c.metrics.chGauges <- gaugeMsg{idx: gaugeStmt, v: -1} }()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bad.Load() {
		return driver.ErrBadConn
	}
	return c.markBad(c.core.DropStatementID(s.pr.StmtID()))
}

// CheckNamedValue implements the NamedValueChecker interface.
func (s *stmt) CheckNamedValue(nv *driver.NamedValue) error {
	// conversion happens inside ConnectionCore.Exec/Query; custom arg types
	// (Lob, Decimal, ...) must bypass the default database/sql checks.
	return nil
}

// QueryContext implements the driver.StmtQueryContext interface. Procedure
// calls go through here too when they have output or table parameters: the
// server reply is a single CallResult row the caller scans like any other
// query result.
func (s *stmt) QueryContext(ctx context.Context, nvargs []driver.NamedValue) (driver.Rows, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.conn
	c.mu.Lock()
	defer c.mu.Unlock()

	if s.pr.IsProcedureCall() {
		rows, err := c.core.QueryCall(s.pr, nvargs)
		return rows, c.markBad(err)
	}
	rows, err := c.core.Query(s.pr, nvargs, !c.inTx.Load())
	return rows, c.markBad(err)
}

// ExecContext implements the driver.StmtExecContext interface.
func (s *stmt) ExecContext(ctx context.Context, nvargs []driver.NamedValue) (driver.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.conn
	c.mu.Lock()
	defer c.mu.Unlock()

	if s.pr.IsProcedureCall() {
		result, err := c.core.ExecCall(s.pr, nvargs)
		return result, c.markBad(err)
	}

	numField := s.pr.NumField()
	numNVArg := len(nvargs)
	switch {
	case numNVArg == 0:
		if numField != 0 {
			return nil, fmt.Errorf("invalid number of arguments %d - expected %d", numNVArg, numField)
		}
	case numNVArg == numField:
		// single row: fall through to the batched path below, which is a
		// no-op loop of exactly one iteration in this case.
	case numNVArg%numField != 0:
		return nil, fmt.Errorf("invalid number of arguments %d - multiple of %d expected", numNVArg, numField)
	}

	result, err := s.execBatched(c, nvargs, numField)
	return result, c.markBad(err)
}

// execBatched splits a bulk exec's flattened argument list into requests of
// at most bulkSize rows each: a distinct concern from ConnectionCore.Exec's
// own internal LOB piecewise-write splitting, which happens per server call
// regardless of how many rows that call carries.
func (s *stmt) execBatched(c *conn, nvargs []driver.NamedValue, numField int) (driver.Result, error) {
	if numField == 0 {
		return c.core.Exec(s.pr, nvargs, !c.inTx.Load())
	}

	bulkSize := c.attrs.bulkSize()
	numRec := len(nvargs) / numField
	var totalRowsAffected int64
	for from := 0; from < numRec; from += bulkSize {
		to := from + bulkSize
		if to > numRec {
			to = numRec
		}
		result, err := c.core.Exec(s.pr, nvargs[from*numField:to*numField], !c.inTx.Load())
		if result != nil {
			if rowsAffected, rErr := result.RowsAffected(); rErr == nil {
				totalRowsAffected += rowsAffected
			}
		}
		if err != nil {
			return driver.RowsAffected(totalRowsAffected), err
		}
	}
	return driver.RowsAffected(totalRowsAffected), nil
}
