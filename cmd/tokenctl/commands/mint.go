package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMintCmd creates the token minting command
func NewMintCmd() *cobra.Command {
	var subject string
	var ttl int64

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint a session token",
		Long:  "Mint a signed session token for a subject using TOKEN_SECRET and EXPIRES_IN from the environment. A configured EXPIRES_IN overrides --ttl, same as it does for the server's issuance endpoints.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if subject == "" {
				return fmt.Errorf("required flag: --subject")
			}
			if ttl < 0 {
				return fmt.Errorf("--ttl must be a positive number of seconds")
			}

			codec, err := loadCodec()
			if err != nil {
				return err
			}

			tok, err := codec.Encode(subject, ttl)
			if err != nil {
				return fmt.Errorf("failed to mint token: %w", err)
			}

			fmt.Println(tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject (user id) to mint the token for")
	cmd.Flags().Int64Var(&ttl, "ttl", 0, "Per-call TTL in seconds (ignored when EXPIRES_IN is configured)")

	return cmd
}
