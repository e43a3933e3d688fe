// Package mongo owns the process-wide MongoDB connection handle.
//
// The client is created once at startup and shared by every request. When the
// first ping fails the handle stays unset; Ready re-pings with the cached client
// so the service recovers once the server becomes reachable.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"

	"item-service/pkg/log"
)

const defaultConnectTimeout = 5 * time.Second

var (
	ErrNotConnected = errors.New("database connection is not established")
	ErrNoDatabase   = errors.New("no database name in configuration or connection string")
)

// Config describes how to reach the database.
type Config struct {
	URL            string
	Database       string
	ConnectTimeout time.Duration
}

// Manager holds the shared client and the resolved database handle.
type Manager struct {
	cfg Config
	l   log.Logger

	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
}

// New creates a Manager without connecting. Until Connect succeeds, Ready and
// Database report ErrNotConnected.
func New(cfg Config, l log.Logger) *Manager {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	return &Manager{cfg: cfg, l: l}
}

// Connect creates the client and verifies the server with a ping. A ping failure
// keeps the client for later retries; a configuration failure does not.
func (m *Manager) Connect(ctx context.Context) error {
	dbName, err := databaseName(m.cfg)
	if err != nil {
		return err
	}

	client, err := mongo.Connect(options.Client().
		ApplyURI(m.cfg.URL).
		SetConnectTimeout(m.cfg.ConnectTimeout).
		SetServerSelectionTimeout(m.cfg.ConnectTimeout))
	if err != nil {
		return fmt.Errorf("mongo.Connect: %w", err)
	}

	m.mu.Lock()
	m.client = client
	m.cfg.Database = dbName
	m.mu.Unlock()

	if err := m.ping(ctx, client); err != nil {
		return err
	}

	m.l.Infof(ctx, "pkg.mongo.Connect: connected to database %q", dbName)
	return nil
}

// Ready reports whether a database handle is available, re-pinging if needed.
func (m *Manager) Ready(ctx context.Context) error {
	m.mu.RLock()
	db, client := m.db, m.client
	m.mu.RUnlock()

	if db != nil {
		return nil
	}
	if client == nil {
		return ErrNotConnected
	}
	return m.ping(ctx, client)
}

// Database returns the shared handle.
func (m *Manager) Database(ctx context.Context) (*mongo.Database, error) {
	if err := m.Ready(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db, nil
}

// Close disconnects the client. Safe to call on a Manager that never connected.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.client = nil
	m.db = nil
	m.mu.Unlock()

	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo.Disconnect: %w", err)
	}
	m.l.Info(ctx, "pkg.mongo.Close: database connection closed")
	return nil
}

// ping checks client and caches the database handle, unless client was
// replaced or closed in the meantime.
func (m *Manager) ping(ctx context.Context, client *mongo.Client) error {
	m.mu.RLock()
	dbName := m.cfg.Database
	m.mu.RUnlock()

	pingCtx, cancel := context.WithTimeout(ctx, m.cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrNotConnected, err)
	}

	m.mu.Lock()
	if m.client == client {
		m.db = client.Database(dbName)
	}
	m.mu.Unlock()
	return nil
}

// databaseName prefers the explicit setting and falls back to the URL path.
func databaseName(cfg Config) (string, error) {
	if cfg.Database != "" {
		return cfg.Database, nil
	}
	cs, err := connstring.ParseAndValidate(cfg.URL)
	if err != nil {
		return "", fmt.Errorf("connstring.ParseAndValidate: %w", err)
	}
	if cs.Database == "" {
		return "", ErrNoDatabase
	}
	return cs.Database, nil
}
