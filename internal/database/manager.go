package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Dias221467/Birthday_Wall/internal/config"
	"github.com/Dias221467/Birthday_Wall/pkg/apperrors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"
)

// Connector opens a client to the database. It is called at most once at a time.
type Connector func(ctx context.Context) (*mongo.Client, error)

// Provider hands out the shared database handle.
type Provider interface {
	Acquire(ctx context.Context) (*mongo.Database, error)
}

var errClosed = errors.New("connection manager is closed")

// Manager lazily connects to MongoDB and caches the handle for the lifetime of the process.
// Concurrent callers share a single in-flight connection attempt; a failed attempt is
// forgotten so that the next Acquire retries.
type Manager struct {
	dbName  string
	timeout time.Duration
	connect Connector

	group singleflight.Group

	mu     sync.RWMutex
	client *mongo.Client
	db     *mongo.Database
	closed bool
}

// NewManager creates a Manager. A nil connector dials cfg.MongoURI.
func NewManager(cfg *config.Config, connector Connector) *Manager {
	if connector == nil {
		connector = MongoConnector(cfg.MongoURI, cfg.ConnectTimeout)
	}
	return &Manager{
		dbName:  cfg.DBName,
		timeout: cfg.ConnectTimeout,
		connect: connector,
	}
}

// MongoConnector connects and pings so that bad credentials or unreachable hosts surface
// on Acquire rather than on the first query.
func MongoConnector(uri string, timeout time.Duration) Connector {
	return func(ctx context.Context) (*mongo.Client, error) {
		opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(timeout)
		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return client, nil
	}
}

// Init connects eagerly. Failure is logged and left for the next Acquire to retry.
func (m *Manager) Init(ctx context.Context) {
	if _, err := m.Acquire(ctx); err != nil {
		logrus.WithError(err).Warn("Initial MongoDB connection failed, will retry on demand")
	}
}

// Acquire returns the cached database handle, connecting first if needed.
func (m *Manager) Acquire(ctx context.Context) (*mongo.Database, error) {
	if db, err := m.cached(); db != nil || err != nil {
		return db, err
	}

	ch := m.group.DoChan("connect", func() (interface{}, error) {
		if db, err := m.cached(); db != nil || err != nil {
			return db, err
		}
		return m.dial()
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*mongo.Database), nil
	case <-ctx.Done():
		return nil, apperrors.Connection("gave up waiting for database connection", ctx.Err())
	}
}

func (m *Manager) cached() (*mongo.Database, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, apperrors.Connection("database unavailable", errClosed)
	}
	return m.db, nil
}

// dial runs detached from any single caller so that one cancelled request does not fail
// every caller sharing the attempt.
func (m *Manager) dial() (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	client, err := m.connect(ctx)
	if err != nil {
		logrus.WithError(err).Error("MongoDB connection error")
		return nil, apperrors.Connection("could not connect to database", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		_ = client.Disconnect(context.Background())
		return nil, apperrors.Connection("database unavailable", errClosed)
	}
	m.client = client
	m.db = client.Database(m.dbName)
	logrus.WithField("database", m.dbName).Info("MongoDB connected")
	return m.db, nil
}

// Ping checks the cached connection. It does not connect.
func (m *Manager) Ping(ctx context.Context) error {
	m.mu.RLock()
	client := m.client
	m.mu.RUnlock()
	if client == nil {
		return apperrors.Connection("database not connected", nil)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return apperrors.Connection("database ping failed", err)
	}
	return nil
}

// Close disconnects the client. Acquire fails after Close.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.client, m.db, m.closed = nil, nil, true
	m.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
