package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"direct-ads/internal/core/domain"
	"direct-ads/internal/core/port"
	"direct-ads/internal/core/port/mocks"
)

type remoteCampaign struct {
	ID     int64
	Name   string
	State  string
	Chosen bool
	Domain string // empty means no metadata record
}

type fixture struct {
	gw     *mocks.MockDirectGateway
	repo   *mocks.MockCampaignMetaRepository
	svc    *Service
	logs   *bytes.Buffer
	moscow *time.Location
	ctx    context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	f := &fixture{
		gw:     mocks.NewMockDirectGateway(t),
		repo:   mocks.NewMockCampaignMetaRepository(t),
		logs:   &bytes.Buffer{},
		moscow: moscow,
		ctx:    context.Background(),
	}
	logger := slog.New(slog.NewTextHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f.svc = NewService(f.gw, f.repo, Settings{
		Policy:      domain.NewCurrencyPolicy(1.18, 30),
		Location:    moscow,
		MethodLimit: DefaultMethodLimit,
	}, logger)
	return f
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectList makes the next campaigns.get return the given campaigns and
// sets up one metadata lookup per campaign.
func (f *fixture) expectList(campaigns ...remoteCampaign) {
	type item struct {
		ID     int64  `json:"Id"`
		Name   string `json:"Name"`
		State  string `json:"State"`
		Status string `json:"Status"`
	}
	items := make([]item, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, item{ID: c.ID, Name: c.Name, State: c.State, Status: domain.StatusAccepted})
	}
	raw, _ := json.Marshal(map[string]any{"Campaigns": items})

	f.gw.EXPECT().
		Call(mock.Anything, "campaigns", "get", mock.AnythingOfType("usecase.campaignsGetParams")).
		Return(json.RawMessage(raw), nil).
		Once()

	for _, c := range campaigns {
		var meta *domain.CampaignMeta
		if c.Domain != "" || c.Chosen {
			d := c.Domain
			meta = &domain.CampaignMeta{CampaignID: c.ID, Chosen: c.Chosen, Domain: &d}
		}
		f.repo.EXPECT().GetCampaignMeta(mock.Anything, c.ID).Return(meta, nil).Once()
	}
}

// expectToggle makes one resume/suspend call for id succeed or not.
func (f *fixture) expectToggle(id int64, on, echo bool) {
	method, key := "suspend", "SuspendResults"
	if on {
		method, key = "resume", "ResumeResults"
	}
	result := map[string]any{key: []map[string]any{{"Errors": []any{map[string]any{"Code": 8800}}}}}
	if echo {
		result = map[string]any{key: []map[string]any{{"Id": id}}}
	}
	raw, _ := json.Marshal(result)

	f.gw.EXPECT().
		Call(mock.Anything, "campaigns", method, mock.MatchedBy(func(p campaignActionParams) bool {
			return len(p.SelectionCriteria.Ids) == 1 && p.SelectionCriteria.Ids[0] == id
		})).
		Return(json.RawMessage(raw), nil).
		Once()
}

func legacyData(t *testing.T, v any) *port.LegacyResponse {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return &port.LegacyResponse{Data: raw}
}

func strPtr(s string) *string {
	return &s
}
