package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/habitual/internal/api"
	"github.com/terraincognita07/habitual/internal/config"
)

func newTokenCommand(st *state) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for --owner, signed with SECRET_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secretKey, err := config.ResolveSecretKey()
			if err != nil {
				return err
			}
			token, err := api.IssueToken(secretKey, st.ownerID, ttl, nowFunc())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", api.DefaultTokenTTL, "token lifetime")
	return cmd
}
