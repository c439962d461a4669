package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"direct-ads/internal/adapter/direct"
)

var oauthTokenCmd = &cobra.Command{
	Use:   "oauth-token <code>",
	Short: "Exchange an OAuth confirmation code for an access token",
	Long: `Exchanges the confirmation code shown after authorizing the
application at DIRECT_OAUTH_URL for an access token. Store the printed
token in DIRECT_OAUTH_TOKEN.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hc := &http.Client{Timeout: cfg.Direct.Timeout}
		token, err := direct.ExchangeCode(cmd.Context(), cfg.Direct, hc, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}
