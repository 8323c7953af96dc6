package commons

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DbFactory hands out sqlite databases under a temporary directory.
type DbFactory struct {
	TempDir string
	Timeout time.Duration
}

const TimeoutInSeconds = 10

func NewDbFactory() *DbFactory {
	tempDir, err := os.MkdirTemp("", "gatewayctl-test-*")
	if err != nil {
		slog.Error("Error creating temp dir", "err", err)
		panic(err)
	}

	return &DbFactory{
		TempDir: tempDir,
		Timeout: TimeoutInSeconds * time.Second,
	}
}

func (d *DbFactory) CreateDb(sqliteFileName string) *sqlx.DB {
	sqlitePath := filepath.Join(d.TempDir, sqliteFileName)
	slog.Debug("commons: creating sqlite db", "sqlitePath", sqlitePath)
	return sqlx.MustConnect("sqlite3", sqlitePath)
}

// Path returns where a file with the given name would live in the temp dir.
func (d *DbFactory) Path(fileName string) string {
	return filepath.Join(d.TempDir, fileName)
}

func (d *DbFactory) Cleanup() {
	if d.TempDir != "" {
		slog.Debug("commons: cleaning up temp dir", "tempDir", d.TempDir)
		err := os.RemoveAll(d.TempDir)
		if err != nil {
			slog.Error("Error removing temp dir", "err", err)
		}
	}
}
