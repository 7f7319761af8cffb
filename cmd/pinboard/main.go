package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/oliverisaac/goli"
	"github.com/oliverisaac/pinboard/db"
	"github.com/oliverisaac/pinboard/service"
	"github.com/oliverisaac/pinboard/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func init() {
	goli.InitLogrus(logrus.DebugLevel)
}

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Debug("no .env file loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pinboard",
		Short:         "Sticky-notes boards for every user",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the web server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database tables and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				_, _, err := setup()
				if err == nil {
					logrus.Info("Database is up to date")
				}
				return err
			},
		},
		newUserCmd(),
	)
	return root
}

// setup loads config from the environment and opens the migrated database.
func setup() (types.Config, *gorm.DB, error) {
	cfg, err := types.ConfigFromEnv()
	if err != nil {
		return cfg, nil, errors.Wrap(err, "loading config")
	}
	logrus.SetLevel(cfg.LogLevel)
	logrus.Infof("Starting with %s", cfg)

	gdb, err := db.Open(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, gdb, nil
}

func newService(cfg types.Config, gdb *gorm.DB) *service.Service {
	return service.New(gdb, service.WithFreeTags(cfg.FreeTags))
}
