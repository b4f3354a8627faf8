package main

import (
	"fmt"
	"time"

	"github.com/bizplatform/pmcore/internal/config"
	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/bizplatform/pmcore/internal/pkg/utils/tokens"
	"github.com/google/uuid"
	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var (
	tokenUser string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API bearer token for a user",
	RunE: withContainer(func(cmd *cobra.Command, _ []string, inj *do.Injector) error {
		cfg := do.MustInvoke[*config.Config](inj)
		users := do.MustInvoke[service.UserService](inj)

		id, err := uuid.Parse(tokenUser)
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", tokenUser, err)
		}
		u, err := users.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}

		ttl := tokenTTL
		if ttl <= 0 {
			ttl = time.Duration(cfg.Auth.TokenTTLSec) * time.Second
		}
		tok, err := tokens.Generate(u.ID, cfg.Auth.JwtSecret, cfg.Auth.Issuer, ttl, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	}),
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "user id")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime, defaults to auth.tokenTTLSec")
	_ = tokenCmd.MarkFlagRequired("user")
}
