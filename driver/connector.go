// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"database/sql/driver"
	"sync"
	"time"

	"github.com/sap-thirdparty/hdbproto/driver/common"
	"github.com/sap-thirdparty/hdbproto/driver/dial"
	"github.com/sap-thirdparty/hdbproto/driver/internal/container/vermap"
	"github.com/sap-thirdparty/hdbproto/driver/internal/dsn"
	p "github.com/sap-thirdparty/hdbproto/driver/internal/protocol"
	"github.com/sap-thirdparty/hdbproto/driver/unicode/cesu8"
)

// Connector default values.
const (
	DefaultDfv          = common.DfvLevel8 // default client data format version.
	DefaultFetchSize    = 32                // default value fetchSize.
	DefaultLobChunkSize = 4096              // default value lobChunkSize.
	DefaultLegacy       = false             // default value legacy.
)

// Connector minimal/maximal values.
const (
	minFetchSize    = 1       // minimal fetchSize value.
	minLobChunkSize = 128     // minimal lobChunkSize.
	maxLobChunkSize = 1 << 14 // maximal lobChunkSize.
)

// SessionVariables maps session variables to their values. All defined
// session variables are set once, right after a database connection opens.
type SessionVariables map[string]string

var _ driver.Connector = (*Connector)(nil)

// A Connector represents an hdb driver in a fixed configuration: it can be
// passed to sql.OpenDB directly, bypassing a string based data source name,
// and is the only way to supply credential refresh callbacks, a custom
// dial.Dialer, or a TLS config built out of band.
type Connector struct {
	connAttrs
	authAttrs

	mu               sync.RWMutex
	applicationName  string
	locale           string
	fetchSize        int
	lobChunkSize     int
	dfv              int
	legacy           bool
	sessionVariables *vermap.VerMap

	rootMetrics *metrics
}

func newConnector() *Connector {
	loadStatsCfgOnce.Do(func() {
		if err := loadStatsCfg(); err != nil {
			panic(err) // statscfg.json is compiled in; a parse failure here is a build defect, not a runtime one.
		}
	})
	c := &Connector{
		connAttrs:        *newConnAttrs(),
		applicationName:  DriverName,
		fetchSize:        DefaultFetchSize,
		lobChunkSize:     DefaultLobChunkSize,
		dfv:              DefaultDfv,
		legacy:           DefaultLegacy,
		sessionVariables: vermap.NewVerMap(),
	}
	c.rootMetrics = newMetrics(nil, statsCfg.TimeBuckets)
	return c
}

// NewBasicAuthConnector creates a Connector authenticating with a fixed
// username/password pair.
func NewBasicAuthConnector(host, username, password string) *Connector {
	c := newConnector()
	c.connAttrs.setHost(host)
	c.authAttrs._username = username
	c.authAttrs._password = password
	return c
}

// NewDSNConnector creates a Connector from a hdbsql[s]:// data source name
// (see spec.md §6 / driver/internal/dsn for the recognized properties).
func NewDSNConnector(dataSourceName string) (*Connector, error) {
	d, err := dsn.Parse(dataSourceName)
	if err != nil {
		return nil, err
	}
	c := newConnector()
	c.connAttrs.setHost(d.Host)
	c.authAttrs._username = d.Username
	c.authAttrs._password = d.Password
	if d.DefaultSchema != "" {
		c.connAttrs.setDefaultSchema(d.DefaultSchema)
	}
	if d.FetchSize != 0 {
		c.SetFetchSize(d.FetchSize)
	}
	if d.Timeout != 0 {
		c.connAttrs.setTimeout(d.Timeout)
	}
	if d.Locale != "" {
		c.SetLocale(d.Locale)
	}
	if d.PingInterval != 0 {
		c.connAttrs.setPingInterval(d.PingInterval)
	}
	if d.TLS != nil {
		if err := c.connAttrs.setTLS(d.TLS.ServerName, d.TLS.InsecureSkipVerify, d.TLS.RootCAFiles); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Host returns the host of the connector.
func (c *Connector) Host() string { return c.connAttrs.host() }

// SetHost sets the host (and port) of the connector.
func (c *Connector) SetHost(host string) { c.connAttrs.setHost(host) }

// SetDialer sets a custom dialer used to establish the network connection to
// hdb, e.g. a proxy.Dialer routing through a SOCKS5 gateway. A nil dialer
// resets the connector to dial.DefaultDialer.
func (c *Connector) SetDialer(dialer dial.Dialer) { c.connAttrs.setDialer(dialer) }

// SetDSN reconfigures the connector's host, credentials and recognized
// properties from a hdbsql[s]:// data source name, e.g. to switch a
// long-lived Connector over to a test database.
func (c *Connector) SetDSN(dataSourceName string) error {
	d, err := dsn.Parse(dataSourceName)
	if err != nil {
		return err
	}
	c.connAttrs.setHost(d.Host)
	c.authAttrs._username = d.Username
	c.authAttrs._password = d.Password
	if d.DefaultSchema != "" {
		c.SetDefaultSchema(d.DefaultSchema)
	}
	if d.FetchSize != 0 {
		c.SetFetchSize(d.FetchSize)
	}
	if d.Timeout != 0 {
		c.connAttrs.setTimeout(d.Timeout)
	}
	if d.Locale != "" {
		c.SetLocale(d.Locale)
	}
	if d.PingInterval != 0 {
		c.connAttrs.setPingInterval(d.PingInterval)
	}
	if d.TLS != nil {
		return c.connAttrs.setTLS(d.TLS.ServerName, d.TLS.InsecureSkipVerify, d.TLS.RootCAFiles)
	}
	return nil
}

// DefaultSchema returns the default database schema of the connector.
func (c *Connector) DefaultSchema() string { return c.connAttrs.defaultSchema() }

// SetDefaultSchema sets the default database schema of the connector.
func (c *Connector) SetDefaultSchema(schema string) error {
	c.connAttrs.setDefaultSchema(schema)
	return nil
}

// PingInterval returns the connector's connection ping interval.
func (c *Connector) PingInterval() time.Duration { return c.connAttrs.pingInterval() }

// SetPingInterval sets the connector's connection ping interval. The value
// is stored and reported by PingInterval only; connections opened by the
// connector are not pinged periodically.
func (c *Connector) SetPingInterval(d time.Duration) error {
	c.connAttrs.setPingInterval(d)
	return nil
}

// BulkSize returns the maximum number of rows sent to hdb per bulk-exec wire
// message.
func (c *Connector) BulkSize() int { return c.connAttrs.bulkSize() }

// SetBulkSize sets the maximum number of rows sent to hdb per bulk-exec wire
// message, clamped to [minBulkSize, maxBulkSize].
func (c *Connector) SetBulkSize(bulkSize int) error {
	c.connAttrs.setBulkSize(bulkSize)
	return nil
}

// Locale returns the client locale of the connector.
func (c *Connector) Locale() string { c.mu.RLock(); defer c.mu.RUnlock(); return c.locale }

// SetLocale sets the client locale of the connector.
func (c *Connector) SetLocale(locale string) { c.mu.Lock(); defer c.mu.Unlock(); c.locale = locale }

// ApplicationName returns the client application name reported to hdb.
func (c *Connector) ApplicationName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.applicationName
}

// SetApplicationName sets the client application name reported to hdb.
func (c *Connector) SetApplicationName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applicationName = name
}

// FetchSize returns the fetchSize of the connector.
func (c *Connector) FetchSize() int { c.mu.RLock(); defer c.mu.RUnlock(); return c.fetchSize }

// SetFetchSize sets the number of rows fetched from the database per
// resultset round-trip, clamped to minFetchSize.
func (c *Connector) SetFetchSize(fetchSize int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if fetchSize < minFetchSize {
		fetchSize = minFetchSize
	}
	c.fetchSize = fetchSize
	return nil
}

// LobChunkSize returns the lobChunkSize of the connector.
func (c *Connector) LobChunkSize() int { c.mu.RLock(); defer c.mu.RUnlock(); return c.lobChunkSize }

// SetLobChunkSize sets the piecewise LOB write/read chunk size, clamped to
// [minLobChunkSize, maxLobChunkSize].
func (c *Connector) SetLobChunkSize(lobChunkSize int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case lobChunkSize < minLobChunkSize:
		lobChunkSize = minLobChunkSize
	case lobChunkSize > maxLobChunkSize:
		lobChunkSize = maxLobChunkSize
	}
	c.lobChunkSize = lobChunkSize
	return nil
}

// Dfv returns the client data format version of the connector.
func (c *Connector) Dfv() int { c.mu.RLock(); defer c.mu.RUnlock(); return c.dfv }

// SetDfv sets the client data format version of the connector, falling back
// to DefaultDfv if dfv is not one of common.SupportedDfvs.
func (c *Connector) SetDfv(dfv int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if common.IsSupportedDfv(dfv) {
		c.dfv = dfv
	} else {
		c.dfv = DefaultDfv
	}
	return nil
}

// Legacy returns the connector legacy flag. The flag is copied into the
// session configuration; the protocol layer does not read it, so it does not
// change the wire encoding.
func (c *Connector) Legacy() bool { c.mu.RLock(); defer c.mu.RUnlock(); return c.legacy }

// SetLegacy sets the connector legacy flag.
func (c *Connector) SetLegacy(b bool) error { c.mu.Lock(); defer c.mu.Unlock(); c.legacy = b; return nil }

// SessionVariables returns a copy of the session variables stored in the connector.
func (c *Connector) SessionVariables() SessionVariables {
	m := c.sessionVariables.LoadMap()
	sv := make(SessionVariables, len(m))
	for k, v := range m {
		sv[k] = v
	}
	return sv
}

// SetSessionVariables sets the session variables of the connector: applied
// once, right after the connection handshake completes.
func (c *Connector) SetSessionVariables(sessionVariables SessionVariables) error {
	c.sessionVariables.StoreMap(sessionVariables)
	return nil
}

// Stats returns a snapshot of driver-wide statistics aggregated across every
// connection this connector has opened.
func (c *Connector) Stats() Stats { return c.rootMetrics.stats() }

func (c *Connector) sessionConfig() *p.SessionConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &p.SessionConfig{
		DriverVersion:    DriverVersion,
		DriverName:       DriverName,
		ApplicationName:  c.applicationName,
		SessionVariables: c.sessionVariables,
		Locale:           c.locale,
		FetchSize:        c.fetchSize,
		LobChunkSize:     c.lobChunkSize,
		Dfv:              c.dfv,
		Legacy:           c.legacy,
		CESU8Decoder:     cesu8.DefaultDecoder,
		CESU8Encoder:     cesu8.DefaultEncoder,
	}
}

// Connect implements the database/sql/driver.Connector interface.
func (c *Connector) Connect(ctx context.Context) (driver.Conn, error) {
	return newConn(ctx, &c.connAttrs, &c.authAttrs, c.sessionConfig(), c.rootMetrics)
}

// Driver implements the database/sql/driver.Connector interface.
func (c *Connector) Driver() driver.Driver { return drv }

// NativeDriver returns the package-level *Driver singleton registered under
// DriverName, for callers (e.g. prometheus collectors) that want the
// aggregate statistics across every sql.Open(DriverName, ...) connection
// rather than just this Connector's own.
func (c *Connector) NativeDriver() *Driver { return drv }
