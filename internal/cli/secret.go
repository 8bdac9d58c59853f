package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/habitual/internal/security"
)

func newSecretCommand() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Print a random value for SECRET_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := security.GenerateSecretKey(length)
			if err != nil {
				return fmt.Errorf("generate secret key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "length", security.DefaultSecretKeyLength, "number of characters")
	return cmd
}
