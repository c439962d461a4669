package direct

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"direct-ads/internal/config/configs"
	"direct-ads/internal/core/domain"
)

func newTestClient(t *testing.T, srv *httptest.Server, token string) (*Client, *Metrics) {
	t.Helper()
	metrics := NewMetrics(prometheus.NewRegistry())
	c, err := NewClient(configs.Direct{
		APIURL:     srv.URL + "/json/v5",
		LegacyURL:  srv.URL + "/live/v4/json/",
		OAuthToken: token,
	}, Options{HTTPClient: srv.Client(), Metrics: metrics})
	require.NoError(t, err)
	return c, metrics
}

func TestCallSendsAuthenticatedRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/json/v5/campaigns", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "ru", r.Header.Get("Accept-Language"))
		assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))

		var body struct {
			Method string         `json:"method"`
			Params map[string]any `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "get", body.Method)
		assert.Contains(t, body.Params, "SelectionCriteria")

		_, _ = io.WriteString(w, `{"result":{"Campaigns":[{"Id":1,"Name":"a"}]}}`)
	}))
	defer srv.Close()

	c, metrics := newTestClient(t, srv, "tok-1")
	res, err := c.Call(context.Background(), "campaigns", "get", map[string]any{"SelectionCriteria": map[string]any{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Campaigns":[{"Id":1,"Name":"a"}]}`, string(res))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.calls.WithLabelValues("v5", "campaigns.get", "ok")))
}

func TestCallReturnsRemoteErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"error_code":8000,"error_string":"Invalid request"}}`)
	}))
	defer srv.Close()

	c, metrics := newTestClient(t, srv, "tok")
	_, err := c.Call(context.Background(), "campaigns", "resume", nil)

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "campaigns.resume", remote.Method)
	assert.Contains(t, remote.Payload, "8000")
	assert.Nil(t, remote.Err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.calls.WithLabelValues("v5", "campaigns.resume", "error")))
}

func TestCallNullErrorIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error":null,"result":{}}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, "tok")
	res, err := c.Call(context.Background(), "campaigns", "get", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(res))
}

func TestCallTransportFailureIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, "tok")
	_, err := c.Call(context.Background(), "campaigns", "get", nil)

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	require.Error(t, remote.Err)
	assert.Contains(t, remote.Err.Error(), "http status 502")
}

func TestCallNon2xxWithoutPlatformErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"message":"unavailable"}`)
	}))
	defer srv.Close()

	c, metrics := newTestClient(t, srv, "tok")
	res, err := c.Call(context.Background(), "campaigns", "get", nil)
	assert.Nil(t, res)
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	require.Error(t, remote.Err)
	assert.Contains(t, remote.Err.Error(), "http status 503")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.calls.WithLabelValues("v5", "campaigns.get", "error")))

	legacy, err := c.CallLegacy(context.Background(), "GetBalance", []int64{1})
	assert.Nil(t, legacy)
	require.ErrorAs(t, err, &remote)
	assert.Contains(t, remote.Err.Error(), "http status 503")
}

func TestCallNon2xxKeepsPlatformError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"error_code":8000}}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, "tok")
	_, err := c.Call(context.Background(), "campaigns", "get", nil)
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Contains(t, remote.Payload, "8000")
}

func TestCallEmptyErrorObjectIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error":{},"result":{}}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, "tok")
	_, err := c.Call(context.Background(), "campaigns", "get", nil)
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "{}", remote.Payload)
}

func TestCallTokenSourceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent without a token")
	}))
	defer srv.Close()

	tokenErr := errors.New("revoked")
	c, err := NewClient(configs.Direct{APIURL: srv.URL, LegacyURL: srv.URL}, Options{
		HTTPClient: srv.Client(),
		Tokens:     failingTokens{err: tokenErr},
	})
	require.NoError(t, err)

	_, err = c.Call(context.Background(), "campaigns", "get", nil)
	assert.ErrorIs(t, err, tokenErr)
}

func TestCallReadsTokenOnEveryCall(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"result":{}}`)
	}))
	defer srv.Close()

	tokens := &rotatingTokens{values: []string{"first", "second"}}
	c, err := NewClient(configs.Direct{APIURL: srv.URL, LegacyURL: srv.URL}, Options{
		HTTPClient: srv.Client(),
		Tokens:     tokens,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = c.Call(context.Background(), "campaigns", "get", nil)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"Bearer first", "Bearer second"}, seen)
}

func TestCallLegacySendsTokenAndLocale(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/live/v4/json/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "GetBalance", body["method"])
		assert.Equal(t, "tok-4", body["token"])
		assert.Equal(t, "ru", body["locale"])
		assert.Equal(t, []any{float64(42)}, body["param"])

		_, _ = io.WriteString(w, `{"data":[{"CampaignID":42,"Rest":100}]}`)
	}))
	defer srv.Close()

	c, metrics := newTestClient(t, srv, "tok-4")
	resp, err := c.CallLegacy(context.Background(), "GetBalance", []int64{42})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"CampaignID":42,"Rest":100}]`, string(resp.Data))
	assert.Nil(t, resp.ErrorCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.calls.WithLabelValues("v4", "GetBalance", "ok")))
}

func TestCallLegacyErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error_code":53,"error_str":"Authorization error"}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, "tok")
	_, err := c.CallLegacy(context.Background(), "GetSummaryStat", map[string]any{})

	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "GetSummaryStat", remote.Method)
	assert.Contains(t, remote.Payload, "error_code: 53")
	assert.Contains(t, remote.Payload, "Authorization error")
}

func TestCallLegacyZeroErrorCodeIsStillAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error_code":0}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv, "tok")
	_, err := c.CallLegacy(context.Background(), "GetBalance", nil)
	assert.Error(t, err)
}

func TestNewClientRequiresURLs(t *testing.T) {
	_, err := NewClient(configs.Direct{LegacyURL: "http://x"}, Options{})
	assert.Error(t, err)
	_, err = NewClient(configs.Direct{APIURL: "http://x"}, Options{})
	assert.Error(t, err)
}

type failingTokens struct{ err error }

func (f failingTokens) Token() (*oauth2.Token, error) { return nil, f.err }

type rotatingTokens struct {
	values []string
	i      int
}

func (r *rotatingTokens) Token() (*oauth2.Token, error) {
	v := r.values[r.i%len(r.values)]
	r.i++
	return &oauth2.Token{AccessToken: v}, nil
}
