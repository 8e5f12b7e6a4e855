package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	t.Helper()

	return &Config{
		Driver:          DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "data", "test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
	}
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		want    string
		wantErr bool
	}{
		{
			name:   "sqlite path",
			config: &Config{Driver: DriverSQLite, Path: "data/uploads.db"},
			want:   "file:data/uploads.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		},
		{
			name: "postgres settings",
			config: &Config{
				Driver:   DriverPostgres,
				Host:     "localhost",
				Port:     5432,
				User:     "app",
				Password: "secret",
				Database: "diagrams",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 user=app password=secret dbname=diagrams sslmode=disable",
		},
		{
			name:    "unknown driver",
			config:  &Config{Driver: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := tt.config.DSN()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dsn)
		})
	}
}

func TestNewClient_UnknownDriver(t *testing.T) {
	logger := slog.Default()

	client, err := NewClient(&Config{Driver: "oracle"}, logger)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestClient_SQLite(t *testing.T) {
	logger := slog.Default()

	client, err := NewClient(testConfig(t), logger)
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()

	require.NotNil(t, client.GetDB())
	require.NoError(t, client.Ping(ctx))
	require.NoError(t, client.HealthCheck(ctx))

	err = client.ExecContext(ctx, `
		CREATE TABLE uploads (
			id         TEXT PRIMARY KEY,
			filename   TEXT NOT NULL,
			size_bytes INTEGER NOT NULL
		)
	`)
	require.NoError(t, err)

	err = client.ExecContext(ctx,
		"INSERT INTO uploads (id, filename, size_bytes) VALUES (?, ?, ?)",
		"abc123", "sketch.png", 2048,
	)
	require.NoError(t, err)

	var filename string
	err = client.GetContext(ctx, &filename,
		"SELECT filename FROM uploads WHERE id = ?", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "sketch.png", filename)

	err = client.GetContext(ctx, &filename,
		"SELECT filename FROM uploads WHERE id = ?", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	var names []string
	err = client.SelectContext(ctx, &names, "SELECT filename FROM uploads")
	require.NoError(t, err)
	assert.Len(t, names, 1)
}

func TestClient_NamedExec(t *testing.T) {
	logger := slog.Default()

	client, err := NewClient(testConfig(t), logger)
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()

	err = client.ExecContext(ctx, `
		CREATE TABLE uploads (
			id       TEXT PRIMARY KEY,
			filename TEXT NOT NULL
		)
	`)
	require.NoError(t, err)

	arg := map[string]interface{}{
		"id":       "def456",
		"filename": "circuit.jpg",
	}
	err = client.NamedExecContext(ctx,
		"INSERT INTO uploads (id, filename) VALUES (:id, :filename)", arg)
	require.NoError(t, err)

	var filename string
	err = client.GetContext(ctx, &filename,
		"SELECT filename FROM uploads WHERE id = ?", "def456")
	require.NoError(t, err)
	assert.Equal(t, "circuit.jpg", filename)
}

func TestClient_Rebind(t *testing.T) {
	logger := slog.Default()

	client, err := NewClient(testConfig(t), logger)
	require.NoError(t, err)
	defer client.Close()

	// sqlite keeps ? bindvars as-is
	assert.Equal(t,
		"SELECT id FROM uploads WHERE id = ?",
		client.Rebind("SELECT id FROM uploads WHERE id = ?"),
	)
}
