package port

import (
	"context"
	"encoding/json"
)

// DirectGateway is the outbound port to the ad platform. It speaks both the
// modern JSON API and the legacy live API. Every failure, whether reported
// by the platform or by the transport, is a *domain.RemoteError.
type DirectGateway interface {
	// Call invokes method on the modern API service endpoint (e.g.
	// "campaigns") and returns the "result" object.
	Call(ctx context.Context, endpoint, method string, params any) (json.RawMessage, error)
	// CallLegacy invokes method on the legacy API and returns the whole
	// response.
	CallLegacy(ctx context.Context, method string, param any) (*LegacyResponse, error)
}

// LegacyResponse is the envelope of the legacy API.
type LegacyResponse struct {
	Data        json.RawMessage `json:"data"`
	ErrorCode   *int            `json:"error_code"`
	ErrorStr    string          `json:"error_str,omitempty"`
	ErrorDetail string          `json:"error_detail,omitempty"`
}
