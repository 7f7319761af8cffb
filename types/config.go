package types

import (
	errs "errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/oliverisaac/goli"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Listen       string
	AllowSignup  bool
	FreeTags     bool
	CSRF         bool
	SecureCookie bool
	CookieSecret []byte
	DBDriver     string
	DBPath       string
	DBDSN        string
	LogLevel     logrus.Level
}

func ConfigFromEnv() (Config, error) {
	ret := Config{}
	var retErr error
	var err error

	ret.Listen = goli.DefaultEnv("PINBOARD_LISTEN", ":8080")

	ret.AllowSignup, err = strconv.ParseBool(goli.DefaultEnv("PINBOARD_ALLOW_SIGNUP", "true"))
	if err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "parsing PINBOARD_ALLOW_SIGNUP"))
	}

	ret.FreeTags, err = strconv.ParseBool(goli.DefaultEnv("PINBOARD_FREE_TAGS", "false"))
	if err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "parsing PINBOARD_FREE_TAGS"))
	}

	ret.CSRF, err = strconv.ParseBool(goli.DefaultEnv("PINBOARD_CSRF", "true"))
	if err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "parsing PINBOARD_CSRF"))
	}

	ret.SecureCookie, err = strconv.ParseBool(goli.DefaultEnv("PINBOARD_SECURE_COOKIE", "false"))
	if err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "parsing PINBOARD_SECURE_COOKIE"))
	}

	ret.LogLevel, err = logrus.ParseLevel(goli.DefaultEnv("PINBOARD_LOG_LEVEL", "info"))
	if err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "parsing PINBOARD_LOG_LEVEL"))
	}

	cookieSecret, ok := os.LookupEnv("PINBOARD_COOKIE_STORE_SECRET")
	if !ok || cookieSecret == "" {
		retErr = errs.Join(retErr, fmt.Errorf("You must define env PINBOARD_COOKIE_STORE_SECRET"))
	} else {
		ret.CookieSecret = []byte(cookieSecret)
	}

	ret.DBDriver = strings.ToLower(goli.DefaultEnv("PINBOARD_DB_DRIVER", DriverSQLite))
	switch ret.DBDriver {
	case DriverSQLite:
		ret.DBPath, ok = os.LookupEnv("PINBOARD_DB_PATH")
		if !ok {
			retErr = errs.Join(retErr, fmt.Errorf("You must define env PINBOARD_DB_PATH"))
		} else if _, err := os.Stat(path.Dir(ret.DBPath)); err != nil {
			retErr = errs.Join(retErr, errors.Wrap(err, "Directory for PINBOARD_DB_PATH must exist"))
		}
	case DriverPostgres:
		ret.DBDSN, ok = os.LookupEnv("PINBOARD_DB_DSN")
		if !ok || ret.DBDSN == "" {
			retErr = errs.Join(retErr, fmt.Errorf("You must define env PINBOARD_DB_DSN when PINBOARD_DB_DRIVER=postgres"))
		}
	default:
		retErr = errs.Join(retErr, fmt.Errorf("Unsupported PINBOARD_DB_DRIVER %q", ret.DBDriver))
	}

	return ret, retErr
}

// String masks the cookie secret and the postgres DSN.
func (c Config) String() string {
	target := c.DBPath
	if c.DBDriver == DriverPostgres {
		target = "***"
	}
	return fmt.Sprintf("Config{Listen: %s, DB: %s(%s), AllowSignup: %t, FreeTags: %t, CSRF: %t}",
		c.Listen, c.DBDriver, target, c.AllowSignup, c.FreeTags, c.CSRF)
}
