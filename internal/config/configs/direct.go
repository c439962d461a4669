package configs

import "time"

// Direct holds the ad platform endpoints and credentials. OAuthToken is the
// access token used for every API call; ClientID and ClientSecret are only
// needed to exchange a confirmation code for a new token.
type Direct struct {
	APIURL    string `env:"API_URL" envDefault:"https://api.direct.yandex.com/json/v5/"`
	LegacyURL string `env:"LEGACY_URL" envDefault:"https://api.direct.yandex.ru/live/v4/json/"`
	OAuthURL  string `env:"OAUTH_URL" envDefault:"https://oauth.yandex.ru/"`

	OAuthToken   string `env:"OAUTH_TOKEN"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`

	// Locale is sent as Accept-Language and as the legacy "locale" field.
	Locale string `env:"LOCALE" envDefault:"ru"`
	// Timeout bounds one HTTP round trip. Zero means no timeout.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`
}
