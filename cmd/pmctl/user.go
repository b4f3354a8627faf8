package main

import (
	"fmt"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var userIn service.CreateUserInput

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create [username]",
	Short: "Create a user",
	Args:  cobra.ExactArgs(1),
	RunE: withContainer(func(cmd *cobra.Command, args []string, inj *do.Injector) error {
		users := do.MustInvoke[service.UserService](inj)

		in := userIn
		in.Username = args[0]
		u, err := users.Create(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s, role %s)\n", u.ID, u.Username, u.Role)
		return nil
	}),
}

func init() {
	userCreateCmd.Flags().StringVar(&userIn.Email, "email", "", "email address")
	userCreateCmd.Flags().StringVar(&userIn.Role, "role", model.RoleMember, "access role: admin, manager, member, viewer")
	userCreateCmd.Flags().StringVar(&userIn.JobRole, "job-role", "", "job role matched by template assignee_role")
	userCreateCmd.Flags().StringVar(&userIn.Locale, "locale", "", "preferred locale")
	userCmd.AddCommand(userCreateCmd)
}
