package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/arcanosig/arcano/backend/internal/config"
)

// Open bootstraps the configured database. SQLite is the zero-config default;
// postgres is selected with ARCANO_DB_DRIVER=postgres.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "postgres":
		return openDialector(postgres.Open(cfg.DSN), "postgres")
	case "sqlite", "":
		return Connect(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Connect opens a SQLite database at the given filesystem path.
func Connect(dbPath string) (*gorm.DB, error) {
	db, err := openDialector(sqlite.Open(dbPath+sqlitePragmas(dbPath)), "sqlite")
	if err != nil {
		return nil, err
	}

	// SQLite serialises writers; a single connection avoids SQLITE_BUSY under load.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func openDialector(d gorm.Dialector, name string) (*gorm.DB, error) {
	db, err := gorm.Open(d, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", name, err)
	}
	return db, nil
}

func sqlitePragmas(dbPath string) string {
	sep := "?"
	for _, r := range dbPath {
		if r == '?' {
			sep = "&"
			break
		}
	}
	return sep + "_busy_timeout=5000"
}
