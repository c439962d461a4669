package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"direct-ads/internal/core/domain"
	"direct-ads/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockDirectUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockDirectUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "# metrics")
	})
	return svc, NewHandler(svc, logger, Options{Metrics: metrics}).Router()
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListCampaigns(t *testing.T) {
	svc, h := newTestHandler(t)
	d := "jurist-msk"
	svc.EXPECT().ListCampaigns(mock.Anything, []int64{1, 2}).Return([]domain.Campaign{
		{ID: 1, Name: "a", State: domain.StateOn, Status: domain.StatusAccepted, Domain: &d, Chosen: true},
		{ID: 2, Name: "b", State: domain.StateSuspended, Status: domain.StatusAccepted},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns?ids=1,2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	assert.JSONEq(t, `[
		{"id":1,"name":"a","state":"ON","status":"ACCEPTED","on":true,"domain":"jurist-msk","chosen":true},
		{"id":2,"name":"b","state":"SUSPENDED","status":"ACCEPTED","on":false,"domain":null,"chosen":false}
	]`, rec.Body.String())
}

func TestListCampaignsBadIDs(t *testing.T) {
	_, h := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns?ids=1,x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCampaignsRemoteError(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ListCampaigns(mock.Anything, []int64(nil)).
		Return(nil, &domain.RemoteError{Method: "campaigns.get", Payload: "boom"})

	rec := serve(h, http.MethodGet, "/api/v1/campaigns", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetCampaignNotFound(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(nil, nil)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCampaign(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetCampaign(mock.Anything, int64(7)).
		Return(&domain.Campaign{ID: 7, Name: "seven", State: domain.StateOff}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"seven"`)
	assert.Contains(t, rec.Body.String(), `"on":false`)
}

func TestSetChosen(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		SetCampaignChosen(mock.Anything, int64(7), true, mock.MatchedBy(func(d *string) bool {
			return d != nil && *d == "auto"
		})).
		Return(nil)

	rec := serve(h, http.MethodPut, "/api/v1/campaigns/7/chosen", `{"chosen":true,"domain":"auto"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSetChosenStoreError(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().SetCampaignChosen(mock.Anything, int64(7), false, (*string)(nil)).Return(errors.New("db down"))

	rec := serve(h, http.MethodPut, "/api/v1/campaigns/7/chosen", `{"chosen":false}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSetCampaignState(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().SetCampaignState(mock.Anything, int64(7), true).Return(domain.Succeeded(true))

	rec := serve(h, http.MethodPost, "/api/v1/campaigns/7/state", `{"on":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestSetCampaignStateRequiresOn(t *testing.T) {
	_, h := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/v1/campaigns/7/state", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodPost, "/api/v1/campaigns/abc/state", `{"on":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetDomainStatePartialFailure(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().SetDomainState(mock.Anything, "jurist-msk", false).
		Return(domain.Defaulted(false, error(&domain.ToggleError{Domain: "jurist-msk", FailedIDs: []int64{3, 5}})))

	rec := serve(h, http.MethodPost, "/api/v1/domains/jurist-msk/state", `{"on":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
	assert.Contains(t, rec.Body.String(), `"failed_ids":[3,5]`)
}

func TestIsDomainOff(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().IsDomainOff(mock.Anything, "auto").Return(domain.Succeeded(false))

	rec := serve(h, http.MethodGet, "/api/v1/domains/auto/off", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"off":false}`, rec.Body.String())
}

func TestBalance(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetBalance(mock.Anything).Return(2542.5, nil)

	rec := serve(h, http.MethodGet, "/api/v1/balance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":2542.5}`, rec.Body.String())
}

func TestBalanceWithoutAnchor(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetBalance(mock.Anything).
		Return(0, &domain.RemoteError{Method: "GetBalance", Err: domain.ErrNoBillingAnchor})

	rec := serve(h, http.MethodGet, "/api/v1/balance", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "cannot fetch balance")
}

func TestExpensesDefaultWindow(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetExpenses(mock.Anything, 7).
		Return(domain.Succeeded(domain.ExpenseMap{"2024-03-10": 60, "2024-03-11": 30}))

	rec := serve(h, http.MethodGet, "/api/v1/expenses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"expenses":{"2024-03-10":60,"2024-03-11":30},"total":90}`, rec.Body.String())
}

func TestExpensesFailureReportsError(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetExpenses(mock.Anything, 3).
		Return(domain.Defaulted(domain.ExpenseMap{}, errors.New("quota exceeded")))

	rec := serve(h, http.MethodGet, "/api/v1/expenses?days_back=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"expenses":{},"total":0,"error":"quota exceeded"}`, rec.Body.String())
}

func TestExpensesBadWindow(t *testing.T) {
	_, h := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/api/v1/expenses?days_back=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/expenses?days_back=2000000000", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/expenses?days_back=3651", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsMounted(t *testing.T) {
	_, h := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}

func TestRequestIDIsEchoed(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().IsDomainOff(mock.Anything, "a").Return(domain.Succeeded(true))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/domains/a/off", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}
