// Copyright 2025 The ocp-visualizer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lookup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"

	"github.com/ocp-visualizer/ocp-visualizer/pkg/config"
	log "github.com/sirupsen/logrus"

	// registers the "trino" database/sql driver
	_ "github.com/trinodb/trino-go-client/trino"
)

// TrinoDriver is the database/sql driver name used by default
const TrinoDriver = "trino"

var (
	// ErrUnreachable is returned when the database host cannot be resolved or reached
	ErrUnreachable = errors.New("database unreachable")
	// ErrNotInitialized is returned when the manager is used before Initialize
	ErrNotInitialized = errors.New("connection manager not initialized, call Initialize first")
)

// Guidance is shown to the operator when the database cannot be reached
const Guidance = `Database connection failed. Please ensure you are connected to the Red Hat VPN.
You can connect to the VPN using:
    - GlobalProtect VPN client
    - Or visit: https://vpn.redhat.com

After connecting to the VPN, please try running the program again.`

// Resolver resolves host names, *net.Resolver satisfies it
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Manager owns the connection pool
type Manager struct {
	cfg      config.DatabaseConfig
	driver   string
	dsn      string
	resolver Resolver
	mu       sync.Mutex
	db       *sql.DB
}

// Option customizes a Manager
type Option func(*Manager)

// WithDriver swaps the driver and DSN, the reachability check still targets cfg.Host
func WithDriver(driver, dsn string) Option {
	return func(m *Manager) {
		m.driver = driver
		m.dsn = dsn
	}
}

// WithResolver replaces the resolver used by the reachability check
func WithResolver(r Resolver) Option {
	return func(m *Manager) {
		m.resolver = r
	}
}

// NewManager returns a manager for the Trino endpoint described by cfg
func NewManager(cfg config.DatabaseConfig, opts ...Option) *Manager {
	m := &Manager{
		cfg:      cfg,
		driver:   TrinoDriver,
		dsn:      DSN(cfg),
		resolver: net.DefaultResolver,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DSN builds the Trino data source name
func DSN(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "https",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
	}
	if cfg.Username != "" {
		u.User = url.User(cfg.Username)
	}
	q := url.Values{}
	q.Set("catalog", cfg.Catalog)
	q.Set("schema", cfg.Schema)
	if cfg.Source != "" {
		q.Set("source", cfg.Source)
	}
	if cfg.AccessToken != "" {
		q.Set("accessToken", cfg.AccessToken)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Initialize checks the host resolves, opens the pool and pings it
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db != nil {
		return nil
	}
	checkCtx, cancel := context.WithTimeout(ctx, m.cfg.PoolTimeout)
	defer cancel()
	if m.cfg.Host != "" {
		if _, err := m.resolver.LookupHost(checkCtx, m.cfg.Host); err != nil {
			return fmt.Errorf("%w: resolving %s: %v", ErrUnreachable, m.cfg.Host, err)
		}
	}
	db, err := sql.Open(m.driver, m.dsn)
	if err != nil {
		return fmt.Errorf("opening %s connection: %w", m.driver, err)
	}
	db.SetMaxOpenConns(m.cfg.PoolSize + m.cfg.MaxOverflow)
	db.SetMaxIdleConns(m.cfg.PoolSize)
	if err := db.PingContext(checkCtx); err != nil {
		db.Close()
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	log.Infof("Successfully connected to %s", m.cfg.Host)
	m.db = db
	return nil
}

// Acquire takes a connection from the pool, waiting at most PoolTimeout
func (m *Manager) Acquire(ctx context.Context) (*sql.Conn, error) {
	m.mu.Lock()
	db := m.db
	m.mu.Unlock()
	if db == nil {
		return nil, ErrNotInitialized
	}
	acquireCtx, cancel := context.WithTimeout(ctx, m.cfg.PoolTimeout)
	defer cancel()
	conn, err := db.Conn(acquireCtx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}
	return conn, nil
}

// Release hands a connection back to the pool
func (m *Manager) Release(conn *sql.Conn) {
	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		log.Warnf("Error releasing connection: %v", err)
		return
	}
	log.Debug("Connection closed")
}

// Close disposes of the pool. Calling it more than once is harmless
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	log.Info("Database resources cleaned up")
	return err
}
