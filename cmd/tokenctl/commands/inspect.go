package commands

import (
	"fmt"
	"time"

	"github.com/benvon/identity-gateway/internal/auth"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the token inspection command
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <token>",
		Short: "Verify and print a session token's claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := loadCodec()
			if err != nil {
				return err
			}

			claims, err := codec.Decode(args[0])
			if err != nil {
				return fmt.Errorf("invalid token: %w", err)
			}

			fmt.Printf("subject:    %s\n", claims.Subject)
			fmt.Printf("issued_at:  %s\n", time.Unix(claims.IssuedAt, 0).UTC().Format(time.RFC3339))
			fmt.Printf("expires_at: %s\n", time.Unix(claims.ExpiresAt, 0).UTC().Format(time.RFC3339))

			now := time.Now().Unix()
			if claims.ExpiresAt <= now-auth.ExpiryGraceSeconds {
				fmt.Println("state:      expired")
			} else {
				fmt.Println("state:      valid")
			}
			return nil
		},
	}

	return cmd
}
