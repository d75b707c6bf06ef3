// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"bytes"
	"sync"

	p "github.com/sap-thirdparty/hdbproto/driver/internal/protocol"
)

// authAttrs is holding authentication relevant attributes.
type authAttrs struct {
	mu                      sync.RWMutex
	_username, _password    string // basic authentication
	_clientCert, _clientKey []byte // X509
	_token                  string // JWT
	_refreshPassword        func() (password string, ok bool)
	_refreshClientCert      func() (clientCert, clientKey []byte, ok bool)
	_refreshToken           func() (token string, ok bool)
}

/*
keep c as the instance name, so that the generated help does have the same variable name when object is
included in connector
*/

// apply copies the credential fields into a session configuration about to
// authenticate a new ConnectionCore (internal/protocol.newAuth picks the
// concrete SCRAM/X509/JWT method from whichever of these is set).
func (c *authAttrs) apply(cfg *p.SessionConfig) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cfg.Username = c._username
	cfg.Password = c._password
	cfg.Token = c._token
	cfg.ClientCert = c._clientCert
	cfg.ClientKey = c._clientKey
}

// refresh re-queries any configured credential callbacks and reports
// whether a value changed, so the caller can retry a failed connect attempt.
func (c *authAttrs) refresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	changed := false
	if fn := c._refreshPassword; fn != nil {
		if password, ok := fn(); ok && c._password != password {
			c._password = password
			changed = true
		}
	}
	if fn := c._refreshToken; fn != nil {
		if token, ok := fn(); ok && c._token != token {
			c._token = token
			changed = true
		}
	}
	if fn := c._refreshClientCert; fn != nil {
		if clientCert, clientKey, ok := fn(); ok && (!bytes.Equal(c._clientCert, clientCert) || !bytes.Equal(c._clientKey, clientKey)) {
			c._clientCert, c._clientKey = clientCert, clientKey
			changed = true
		}
	}
	return changed
}

// Username returns the username of the connector.
func (c *authAttrs) Username() string { c.mu.RLock(); defer c.mu.RUnlock(); return c._username }

// Password returns the basic authentication password of the connector.
func (c *authAttrs) Password() string { c.mu.RLock(); defer c.mu.RUnlock(); return c._password }

// SetPassword sets the basic authentication password of the connector.
func (c *authAttrs) SetPassword(password string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c._password = password
}

// RefreshPassword returns the callback function for basic authentication password refresh.
func (c *authAttrs) RefreshPassword() func() (password string, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c._refreshPassword
}

// SetRefreshPassword sets the callback function for basic authentication password refresh.
func (c *authAttrs) SetRefreshPassword(refreshPassword func() (password string, ok bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c._refreshPassword = refreshPassword
}

// ClientCert returns the X509 authentication client certificate and key of the connector.
func (c *authAttrs) ClientCert() (clientCert, clientKey []byte) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c._clientCert, c._clientKey
}

// RefreshClientCert returns the callback function for X509 authentication client certificate and key refresh.
func (c *authAttrs) RefreshClientCert() func() (clientCert, clientKey []byte, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c._refreshClientCert
}

// SetRefreshClientCert sets the callback function for X509 authentication client certificate and key refresh.
func (c *authAttrs) SetRefreshClientCert(refreshClientCert func() (clientCert, clientKey []byte, ok bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c._refreshClientCert = refreshClientCert
}

// Token returns the JWT authentication token of the connector.
func (c *authAttrs) Token() string { c.mu.RLock(); defer c.mu.RUnlock(); return c._token }

// RefreshToken returns the callback function for JWT authentication token refresh.
func (c *authAttrs) RefreshToken() func() (token string, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c._refreshToken
}

// SetRefreshToken sets the callback function for JWT authentication token refresh.
func (c *authAttrs) SetRefreshToken(refreshToken func() (token string, ok bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c._refreshToken = refreshToken
}
