package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/remindcal/internal/service"
)

// SignupCmd — регистрация пользователя.
func SignupCmd(app *App) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Identity.Signup(cmd.Context(), username, email, password)
			switch {
			case errors.Is(err, service.ErrEmptyUsername),
				errors.Is(err, service.ErrEmptyEmail),
				errors.Is(err, service.ErrEmptyPassword):
				return err
			case err != nil:
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Printf("User %s created with ID: %d\n", user.Username, user.UserID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "unique username (required)")
	cmd.Flags().StringVarP(&email, "email", "e", "", "unique email (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (required)")

	return cmd
}
