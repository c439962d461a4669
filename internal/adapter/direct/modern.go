package direct

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"direct-ads/internal/core/domain"
)

type modernRequest struct {
	Method string `json:"method"`
	Params any    `json:"params"`
}

type modernResponse struct {
	Error  json.RawMessage `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Call invokes method on the given service endpoint of the modern API and
// returns the "result" object. A populated "error" object in the reply is
// returned as *domain.RemoteError carrying the raw payload.
func (c *Client) Call(ctx context.Context, endpoint, method string, params any) (_ json.RawMessage, err error) {
	name := endpoint + "." + method
	start := time.Now()
	defer func() { c.observe("v5", name, start, err) }()

	token, err := c.accessToken()
	if err != nil {
		return nil, transportError(name, err)
	}
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	headers.Set("Accept-Language", c.locale)
	headers.Set("Content-Type", "application/json; charset=utf-8")

	var resp modernResponse
	statusErr, err := c.post(ctx, c.apiURL+endpoint, headers, modernRequest{Method: method, Params: params}, &resp)
	if err != nil {
		return nil, transportError(name, err)
	}
	if populated(resp.Error) {
		err = &domain.RemoteError{Method: name, Payload: string(resp.Error)}
		return nil, err
	}
	if statusErr != nil {
		err = transportError(name, statusErr)
		return nil, err
	}
	return resp.Result, nil
}

// populated reports whether the error member is present and not null. An
// empty object still counts as an error.
func populated(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s != "" && s != "null"
}
