package command

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chasingSublimity/Traveler/internal/domain"
	"github.com/chasingSublimity/Traveler/internal/repo"
	"github.com/chasingSublimity/Traveler/internal/service"
)

func userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User commands",
	}
	cmd.AddCommand(userCreateCommand())
	return cmd
}

func userCreateCommand() *cobra.Command {
	var firstName, lastName string
	cmd := &cobra.Command{
		Use:   "create USERNAME",
		Short: "Create user",
		Long: "Creates a user with the provided user name. The password is read from\n" +
			"stdin or through the interactive prompt.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			pool, err := openPool(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			password, err := prompt(os.Stdin, cmd.ErrOrStderr(), "password: ")
			if err != nil {
				return err
			}

			users := service.NewUserService(repo.NewUserRepo(pool))
			user, err := users.Create(cmd.Context(), domain.NewUser{
				FirstName: firstName,
				LastName:  lastName,
				UserName:  args[0],
				Password:  password,
			})
			if err != nil {
				return err
			}

			slog.InfoContext(cmd.Context(), "created user",
				slog.String("user_name", user.UserName),
				slog.String("id", user.ID.String()),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	_ = cmd.MarkFlagRequired("last-name")
	return cmd
}
