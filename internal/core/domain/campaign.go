package domain

// Campaign lifecycle states reported by the platform.
const (
	StateOn        = "ON"
	StateOff       = "OFF"
	StateSuspended = "SUSPENDED"
	StateEnded     = "ENDED"
	StateConverted = "CONVERTED"
)

// StatusAccepted is the only moderation status the registry asks for.
const StatusAccepted = "ACCEPTED"

// ListedStates are the states requested whenever campaigns are listed.
var ListedStates = []string{StateOn, StateOff, StateSuspended, StateEnded, StateConverted}

// Campaign represents an advertising campaign hosted on the platform.
// ID, Name, State and Status mirror the remote record; Domain and Chosen
// come from the local metadata store. A Campaign is rebuilt on every
// listing and is never cached.
type Campaign struct {
	ID     int64
	Name   string
	State  string
	Status string
	Domain *string // nil when no metadata record exists
	Chosen bool
}

// On reports whether the campaign is currently serving.
func (c Campaign) On() bool {
	return c.State == StateOn
}

// InDomain reports whether the campaign belongs to the given domain.
func (c Campaign) InDomain(domain string) bool {
	return c.Domain != nil && *c.Domain == domain
}

// CampaignMeta is the locally persisted part of a campaign.
type CampaignMeta struct {
	CampaignID int64
	Chosen     bool
	Domain     *string
}
