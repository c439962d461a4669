package direct

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"direct-ads/internal/config/configs"
)

// OAuthError is returned when the authorization server does not hand out an
// access token for a confirmation code.
type OAuthError struct {
	Err error
}

func (e *OAuthError) Error() string {
	return fmt.Sprintf("yandex oauth: %v", e.Err)
}

func (e *OAuthError) Unwrap() error {
	return e.Err
}

// OAuthConfig builds the authorization-code flow configuration for the
// platform's OAuth server.
func OAuthConfig(cfg configs.Direct) *oauth2.Config {
	base := strings.TrimRight(cfg.OAuthURL, "/") + "/"
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   base + "authorize",
			TokenURL:  base + "token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// ExchangeCode trades a confirmation code for an access token. The token
// is returned to the operator, who stores it in DIRECT_OAUTH_TOKEN.
func ExchangeCode(ctx context.Context, cfg configs.Direct, hc *http.Client, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", &OAuthError{Err: fmt.Errorf("empty confirmation code")}
	}
	if hc != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, hc)
	}
	tok, err := OAuthConfig(cfg).Exchange(ctx, code)
	if err != nil {
		return "", &OAuthError{Err: err}
	}
	if tok.AccessToken == "" {
		return "", &OAuthError{Err: fmt.Errorf("no access_token in response")}
	}
	return tok.AccessToken, nil
}
