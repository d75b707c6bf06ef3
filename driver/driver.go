// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

// Package driver implements a database/sql/driver for the SAP HANA database
// wire protocol.
package driver

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"sync"
)

// DriverVersion is the version number of this driver.
const DriverVersion = "1.0.0"

// DriverName is the driver name to use with sql.Open for hdb databases.
const DriverName = "hdb"

var drv = newDriver()

func init() { sql.Register(DriverName, drv) }

// Driver is the database/sql/driver.Driver registered under DriverName. Every
// connection opened via sql.Open(DriverName, dsn) - as opposed to a Connector
// built directly with NewBasicAuthConnector/NewDSNConnector - shares this
// single instance's statistics, since sql.Open carries no per-Connector
// handle of its own.
type Driver struct {
	rootMetrics *metrics
}

func newDriver() *Driver {
	loadStatsCfgOnce.Do(func() {
		if err := loadStatsCfg(); err != nil {
			panic(err)
		}
	})
	return &Driver{rootMetrics: newMetrics(nil, statsCfg.TimeBuckets)}
}

var (
	_ driver.Driver        = (*Driver)(nil)
	_ driver.DriverContext = (*Driver)(nil)
)

// Open implements the driver.Driver interface.
func (d *Driver) Open(dataSourceName string) (driver.Conn, error) {
	connector, err := d.openConnector(dataSourceName)
	if err != nil {
		return nil, err
	}
	return connector.Connect(context.Background())
}

// OpenConnector implements the driver.DriverContext interface.
func (d *Driver) OpenConnector(dataSourceName string) (driver.Connector, error) {
	return d.openConnector(dataSourceName)
}

func (d *Driver) openConnector(dataSourceName string) (*Connector, error) {
	c, err := NewDSNConnector(dataSourceName)
	if err != nil {
		return nil, err
	}
	c.rootMetrics = d.rootMetrics
	return c, nil
}

// Stats returns a snapshot of statistics aggregated across every connection
// opened via sql.Open(DriverName, dsn).
func (d *Driver) Stats() Stats { return d.rootMetrics.stats() }

var loadStatsCfgOnce sync.Once
