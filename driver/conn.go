// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"bufio"
	"context"
	"crypto/tls"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/sap-thirdparty/hdbproto/driver/dial"
	"github.com/sap-thirdparty/hdbproto/driver/hdb"
	p "github.com/sap-thirdparty/hdbproto/driver/internal/protocol"
)

// ErrUnsupportedIsolationLevel is the error raised if a transaction is started with a not supported isolation level.
var ErrUnsupportedIsolationLevel = errors.New("unsupported isolation level")

// ErrNestedTransaction is the error raised if a transaction is created within a transaction as this is not supported by hdb.
var ErrNestedTransaction = errors.New("nested transactions are not supported")

// queries.
const (
	pingQuery                       = "select 1 from dummy"
	setIsolationLevelReadCommitted  = "set transaction isolation level read committed"
	setIsolationLevelRepeatableRead = "set transaction isolation level repeatable read"
	setIsolationLevelSerializable   = "set transaction isolation level serializable"
	setAccessModeReadOnly           = "set transaction read only"
	setAccessModeReadWrite          = "set transaction read write"
)

// check if conn implements all required interfaces.
var (
	_ driver.Conn               = (*conn)(nil)
	_ driver.ConnPrepareContext = (*conn)(nil)
	_ driver.Pinger             = (*conn)(nil)
	_ driver.ConnBeginTx        = (*conn)(nil)
	_ driver.ExecerContext      = (*conn)(nil)
	_ driver.QueryerContext     = (*conn)(nil)
	_ driver.NamedValueChecker  = (*conn)(nil)
	_ driver.Validator          = (*conn)(nil)
	_ Conn                      = (*conn)(nil)
)

// Conn enhances a connection with hdbproto specific connection functions.
type Conn interface {
	HDBVersion() *Version
	DatabaseName() string
	DBConnectInfo(ctx context.Context, databaseName string) (*DBConnectInfo, error)
	Stats() Stats
}

// isAuthError reports whether err is an hdb authentication failure, which a
// caller may want to treat differently from a plain bad connection.
func isAuthError(err error) bool {
	var hdbErrors *p.HdbErrors
	if !errors.As(err, &hdbErrors) {
		return false
	}
	return hdbErrors.Code() == p.HdbErrAuthenticationFailed
}

// unique connection number, used only for the per-connection logger.
var connNo atomic.Uint64

// conn is a single wire connection to hdb: a dialed TCP (optionally TLS)
// socket, the ConnectionCore wrapping it, and the mutex every method must
// hold for the duration of a server call - SPEC_FULL.md's concurrency model
// treats a session as single-threaded-cooperative, so the lock lives here,
// one layer above ConnectionCore/ResultSet, the same way the teacher's conn
// held the lock above its Session.
type conn struct {
	mu      sync.Mutex
	netConn net.Conn
	core    *p.ConnectionCore
	attrs   *connAttrs
	logger  *slog.Logger
	metrics *metrics
	bad     atomic.Bool
	inTx    atomic.Bool
}

func dialConn(ctx context.Context, attrs *connAttrs) (net.Conn, error) {
	dialer := attrs.dialer()
	opts := dial.DialerOptions{Timeout: attrs.timeout(), TCPKeepAlive: attrs.tcpKeepAlive()}
	netConn, err := dialer.DialContext(ctx, attrs.host(), opts)
	if err != nil {
		return nil, err
	}
	if tlsConfig := attrs.tlsConfig(); tlsConfig != nil {
		tlsConn := tls.Client(netConn, tlsConfig)
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			netConn.Close()
			return nil, err
		}
		return tlsConn, nil
	}
	return netConn, nil
}

func newConn(ctx context.Context, attrs *connAttrs, auth *authAttrs, sessionCfg *p.SessionConfig, rootMetrics *metrics) (*conn, error) {
	logger := attrs.logger().With(slog.Uint64("conn", connNo.Add(1)))

	netConn, err := dialConn(ctx, attrs)
	if err != nil {
		return nil, err
	}

	cfg := *sessionCfg // copy: auth.apply mutates credential fields per attempt
	auth.apply(&cfg)

	bufferSize := attrs.bufferSize()
	rw := bufio.NewReadWriter(bufio.NewReaderSize(netConn, bufferSize), bufio.NewWriterSize(netConn, bufferSize))

	core, err := p.NewConnectionCore(ctx, rw, &cfg)
	if err != nil {
		netConn.Close()
		if isAuthError(err) && auth.refresh() {
			// credentials changed since dial - let the caller retry via database/sql's
			// normal bad-connection retry path rather than looping here.
			return nil, fmt.Errorf("%w: %w", driver.ErrBadConn, err)
		}
		return nil, err
	}

	connMetrics := newMetrics(rootMetrics, rootMetrics.timeKeys)
	c := &conn{netConn: netConn, core: core, attrs: attrs, logger: logger, metrics: connMetrics}
	c.metrics.chGauges <- gaugeMsg{idx: gaugeConn, v: 1}
	return c, nil
}

// Close implements the driver.Conn interface.
func (c *conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics.chGauges <- gaugeMsg{idx: gaugeConn, v: -1}
	if c.bad.Load() {
		return c.netConn.Close()
	}
	err := c.core.Disconnect()
	if closeErr := c.netConn.Close(); err == nil {
		err = closeErr
	}
	return err
}

// IsValid implements the driver.Validator interface.
func (c *conn) IsValid() bool { return !c.bad.Load() }

func (c *conn) markBad(err error) error {
	if err != nil {
		c.bad.Store(true)
	}
	return err
}

// Ping implements the driver.Pinger interface.
func (c *conn) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.core.QueryDirect(pingQuery, !c.inTx.Load())
	return c.markBad(err)
}

// PrepareContext implements the driver.ConnPrepareContext interface.
func (c *conn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	pr, err := c.core.Prepare(query)
	if err != nil {
		return nil, c.markBad(err)
	}
	if md, ok := ctx.Value(stmtMetadataCtxKey).(*StmtMetadata); ok {
		md.pr = pr
	}
	c.metrics.chGauges <- gaugeMsg{idx: gaugeStmt, v: 1}
	return newStmt(c, query, pr), nil
}

// BeginTx implements the driver.ConnBeginTx interface.
func (c *conn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.inTx.Load() {
		return nil, ErrNestedTransaction
	}

	var isolationLevelQuery string
	switch sql.IsolationLevel(opts.Isolation) {
	case sql.LevelDefault, sql.LevelReadCommitted:
		isolationLevelQuery = setIsolationLevelReadCommitted
	case sql.LevelRepeatableRead:
		isolationLevelQuery = setIsolationLevelRepeatableRead
	case sql.LevelSerializable:
		isolationLevelQuery = setIsolationLevelSerializable
	default:
		return nil, ErrUnsupportedIsolationLevel
	}
	accessModeQuery := setAccessModeReadWrite
	if opts.ReadOnly {
		accessModeQuery = setAccessModeReadOnly
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.core.ExecDirect(isolationLevelQuery, false); err != nil {
		return nil, c.markBad(err)
	}
	if _, err := c.core.ExecDirect(accessModeQuery, false); err != nil {
		return nil, c.markBad(err)
	}
	c.inTx.Store(true)
	c.metrics.chGauges <- gaugeMsg{idx: gaugeTx, v: 1}
	return newTx(c), nil
}

// QueryContext implements the driver.QueryerContext interface.
func (c *conn) QueryContext(ctx context.Context, query string, nvargs []driver.NamedValue) (driver.Rows, error) {
	if len(nvargs) != 0 {
		return nil, driver.ErrSkip // fast path not possible (prepare needed)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	rows, err := c.core.QueryDirect(query, !c.inTx.Load())
	return rows, c.markBad(err)
}

// ExecContext implements the driver.ExecerContext interface.
func (c *conn) ExecContext(ctx context.Context, query string, nvargs []driver.NamedValue) (driver.Result, error) {
	if len(nvargs) != 0 {
		return nil, driver.ErrSkip // fast path not possible (prepare needed)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	result, err := c.core.ExecDirect(query, !c.inTx.Load())
	return result, c.markBad(err)
}

// CheckNamedValue implements the NamedValueChecker interface.
func (c *conn) CheckNamedValue(nv *driver.NamedValue) error {
	// conversion happens inside ConnectionCore.Exec/Query; custom arg types
	// (Lob, Decimal, ...) must bypass the default database/sql checks.
	return nil
}

// HDBVersion implements the Conn interface.
func (c *conn) HDBVersion() *Version { return c.core.HDBVersion() }

// DatabaseName implements the Conn interface.
func (c *conn) DatabaseName() string { return c.core.DatabaseName() }

// DBConnectInfo implements the Conn interface.
func (c *conn) DBConnectInfo(ctx context.Context, databaseName string) (*DBConnectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	ci, err := c.core.DBConnectInfo(databaseName)
	return ci, c.markBad(err)
}

// Stats implements the Conn interface, returning a snapshot of this
// connection's open statement/transaction counts and server round-trip
// timings.
func (c *conn) Stats() Stats { return c.metrics.stats() }

// transaction.

var _ driver.Tx = (*tx)(nil)

type tx struct {
	conn   *conn
	closed atomic.Bool
}

func newTx(conn *conn) *tx { return &tx{conn: conn} }

func (t *tx) Commit() error   { return t.close(false) }
func (t *tx) Rollback() error { return t.close(true) }

func (t *tx) close(rollback bool) error {
	c := t.conn
	defer c.inTx.Store(false)

	if c.bad.Load() {
		return driver.ErrBadConn
	}
	if closed := t.closed.Swap(true); closed {
		return nil
	}
	defer func() { c.metrics.chGauges <- gaugeMsg{idx: gaugeTx, v: -1} }()

	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if rollback {
		err = c.core.Rollback()
	} else {
		err = c.core.Commit()
	}
	return c.markBad(err)
}

// Version is the hdb server version reported during connect.
type Version = hdb.Version

// DBConnectInfo provides connection routing information about another
// database on the same system as reported by hdb.
type DBConnectInfo = hdb.DBConnectInfo
