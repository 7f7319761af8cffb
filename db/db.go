package db

import (
	"strings"
	"time"

	"github.com/oliverisaac/pinboard/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every model managed by AutoMigrate, parents first.
var Tables = []any{
	&types.User{},
	&types.Board{},
	&types.Note{},
}

// Open connects to the database selected by cfg.DBDriver and migrates it.
func Open(cfg types.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case types.DriverPostgres:
		dialector = postgres.Open(cfg.DBDSN)
	case types.DriverSQLite, "":
		dialector = sqlite.Open(sqliteDSN(cfg.DBPath))
	default:
		return nil, errors.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	return open(dialector)
}

// OpenSQLite opens a sqlite database at dsn. Tests use it with in-memory DSNs.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	return open(sqlite.Open(sqliteDSN(dsn)))
}

// sqliteDSN turns on foreign key enforcement, a busy timeout and immediate
// write locks for every pooled connection. Immediate transactions make a
// read-then-write transaction wait for other writers instead of failing.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	for _, t := range Tables {
		if err := db.AutoMigrate(t); err != nil {
			return errors.Wrapf(err, "Failed to migrate %T", t)
		}
	}
	return nil
}

func newGormLogger() logger.Interface {
	level := logger.Warn
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		level = logger.Info
	}
	return logger.New(logrus.StandardLogger(), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
