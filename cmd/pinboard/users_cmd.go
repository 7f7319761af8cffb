package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	var username, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gdb, err := setup()
			if err != nil {
				return err
			}
			user, err := newService(cfg, gdb).CreateUser(cmd.Context(), username, password)
			if err != nil {
				return errors.Wrapf(err, "creating user %q", username)
			}
			logrus.Infof("Created user %s (id %d)", user.Username, user.ID)
			return nil
		},
	}
	create.Flags().StringVar(&username, "username", "", "login name")
	create.Flags().StringVar(&password, "password", "", "password, at least 8 characters")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	userCmd.AddCommand(create)
	return userCmd
}
