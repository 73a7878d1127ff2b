package db

import (
	"database/sql"
	"database/sql/driver"
	"testing"

	"ordernest-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "localhost",
		DBUser:     "test_user",
		DBPassword: "test_password",
		DBName:     "test_db",
		DBPort:     "5432",
	}

	expected := "host=localhost user=test_user password=test_password dbname=test_db port=5432 sslmode=disable"
	assert.Equal(t, expected, buildDSN(cfg))
}

func TestNewDatabase_ConnectionFailure(t *testing.T) {
	cfg := &config.Config{
		DBHost: "invalid_host",
		DBPort: "5432",
	}

	db, err := NewDatabase(cfg)

	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to ping DB")
}

func TestNewDatabase_InvalidDriver(t *testing.T) {
	cfg := &config.Config{}

	db, err := newDatabaseWithDriver(cfg, "unregistered_driver")

	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to connect to DB")
}

// A minimal driver so the happy path can be exercised without a running
// database.

type stubDriver struct{}

func (d *stubDriver) Open(name string) (driver.Conn, error) { return &stubConn{}, nil }

type stubConn struct{}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) { return &stubStmt{}, nil }
func (c *stubConn) Close() error                              { return nil }
func (c *stubConn) Begin() (driver.Tx, error)                 { return nil, nil }

type stubStmt struct{}

func (s *stubStmt) Close() error                                    { return nil }
func (s *stubStmt) NumInput() int                                   { return 0 }
func (s *stubStmt) Exec(args []driver.Value) (driver.Result, error) { return nil, nil }
func (s *stubStmt) Query(args []driver.Value) (driver.Rows, error)  { return nil, nil }

func init() {
	sql.Register("stub_driver", &stubDriver{})
}

func TestNewDatabase_Success(t *testing.T) {
	cfg := &config.Config{DBHost: "localhost"}

	db, err := newDatabaseWithDriver(cfg, "stub_driver")

	assert.NoError(t, err)
	assert.NotNil(t, db)
}
