package main

import (
	"errors"
	"fmt"

	"github.com/mmdatafocus/grange_backend/models"
	"github.com/spf13/cobra"
)

var seedAdminOpts struct {
	email     string
	password  string
	firstName string
	lastName  string
	phone     string
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the admin user holding every operation",
	Long: `Creates the user if the email is unknown, grants access to active and
inactive entities and links the admin role, which is given every registered
operation. Running it again is safe; an existing user keeps its password.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if seedAdminOpts.email == "" || seedAdminOpts.password == "" {
			return errors.New("--email and --password are required")
		}
		ctx := cmd.Context()
		store, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if _, err := store.Operations.Sync(ctx, models.OperationRegistry); err != nil {
			return err
		}
		user, err := store.SeedAdmin(ctx, &models.UserInput{
			Names:     seedAdminOpts.firstName + " " + seedAdminOpts.lastName,
			FirstName: seedAdminOpts.firstName,
			LastName:  seedAdminOpts.lastName,
			Email:     seedAdminOpts.email,
			Phone:     seedAdminOpts.phone,
			Password:  seedAdminOpts.password,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin user %d (%s) ready\n", user.ID, user.Email)
		return nil
	},
}

func init() {
	f := seedAdminCmd.Flags()
	f.StringVar(&seedAdminOpts.email, "email", "", "admin email")
	f.StringVar(&seedAdminOpts.password, "password", "", "admin password, at least 6 characters")
	f.StringVar(&seedAdminOpts.firstName, "first-name", "Admin", "first name")
	f.StringVar(&seedAdminOpts.lastName, "last-name", "Grange", "last name")
	f.StringVar(&seedAdminOpts.phone, "phone", "999999999", "phone number in the configured region")
}
