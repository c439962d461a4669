package direct

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"direct-ads/internal/core/domain"
	"direct-ads/internal/core/port"
)

type legacyRequest struct {
	Method string `json:"method"`
	Token  string `json:"token"`
	Locale string `json:"locale"`
	Param  any    `json:"param"`
}

// CallLegacy invokes method on the legacy live API and returns the whole
// response. A non-null error_code is returned as *domain.RemoteError.
func (c *Client) CallLegacy(ctx context.Context, method string, param any) (_ *port.LegacyResponse, err error) {
	start := time.Now()
	defer func() { c.observe("v4", method, start, err) }()
	c.logger.Debug("direct legacy api method called", slog.String("method", method))

	token, err := c.accessToken()
	if err != nil {
		return nil, transportError(method, err)
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json; charset=utf-8")

	body := legacyRequest{Method: method, Token: token, Locale: c.locale, Param: param}
	var resp port.LegacyResponse
	statusErr, err := c.post(ctx, c.legacyURL, headers, body, &resp)
	if err != nil {
		return nil, transportError(method, err)
	}
	if resp.ErrorCode != nil {
		payload := fmt.Sprintf("error_code: %d in response", *resp.ErrorCode)
		if resp.ErrorStr != "" {
			payload += " (" + resp.ErrorStr + ")"
		}
		err = &domain.RemoteError{Method: method, Payload: payload}
		return nil, err
	}
	if statusErr != nil {
		err = transportError(method, statusErr)
		return nil, err
	}
	return &resp, nil
}
