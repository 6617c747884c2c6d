package main

import (
	"fmt"

	"pet-clinic/internal/domain/users"
	"pet-clinic/internal/ports/auth"

	"github.com/spf13/cobra"
)

var provisionFlags struct {
	email    string
	password string
	name     string
	phone    string
}

var provisionCmd = &cobra.Command{
	Use:       "provision <admin|vet>",
	Short:     "Create a staff account",
	Long:      `Crea una cuenta admin o vet directo en la base. Sirve para el primer admin, que no puede darse de alta por la API.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"admin", "vet"},
	RunE: func(cmd *cobra.Command, args []string) error {
		role, ok := auth.ParseRole(args[0])
		if !ok || role == auth.RoleOwner {
			return fmt.Errorf("role must be admin or vet, got %q", args[0])
		}

		svcs, closeFn, err := maintenanceServices(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer closeFn()

		u, err := svcs.Users.Provision(cmd.Context(), users.RegisterInput{
			Email:    provisionFlags.email,
			Password: provisionFlags.password,
			FullName: provisionFlags.name,
			Phone:    provisionFlags.phone,
		}, role)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", role, u.Email, u.ID)
		return nil
	},
}

func init() {
	f := provisionCmd.Flags()
	f.StringVar(&provisionFlags.email, "email", "", "account email")
	f.StringVar(&provisionFlags.password, "password", "", "account password (min 8 chars)")
	f.StringVar(&provisionFlags.name, "name", "", "full name")
	f.StringVar(&provisionFlags.phone, "phone", "", "phone (optional)")
	_ = provisionCmd.MarkFlagRequired("email")
	_ = provisionCmd.MarkFlagRequired("password")
	_ = provisionCmd.MarkFlagRequired("name")
}
