package admin

import (
	"time"

	"forum-fingerprint-api/internal/fpx"
)

// UserRef resolves a user id to its display name.
type UserRef struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// MatchView is one shared fingerprint with resolved members. DeviceType and
// IsCommon are derived from the representative payload and omitted when the
// record carries none.
type MatchView struct {
	Name       string    `json:"name"`
	Value      string    `json:"value"`
	Data       *string   `json:"data,omitempty"`
	DeviceType string    `json:"device_type,omitempty"`
	IsCommon   *bool     `json:"is_common,omitempty"`
	Users      []UserRef `json:"users"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FlaggedView is a flagged value with how many records currently carry it.
type FlaggedView struct {
	Value    string `json:"value"`
	Count    int    `json:"count"`
	Hidden   bool   `json:"hidden"`
	Silenced bool   `json:"silenced"`
	IsCommon *bool  `json:"is_common,omitempty"`
}

// IndexResponse is the admin dashboard payload.
// swagger:model IndexResponse
type IndexResponse struct {
	Matches []MatchView   `json:"fingerprints"`
	Flagged []FlaggedView `json:"flagged"`
}

// ReportRecord is one of the reported user's observations with resolved
// matched users.
type ReportRecord struct {
	Name       string    `json:"name"`
	Value      string    `json:"value"`
	Data       *string   `json:"data,omitempty"`
	DeviceType string    `json:"device_type,omitempty"`
	IsCommon   *bool     `json:"is_common,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Matches    []UserRef `json:"matches"`
}

// UserReportResponse is the per-user investigation view.
// swagger:model UserReportResponse
type UserReportResponse struct {
	User    UserRef        `json:"user"`
	Records []ReportRecord `json:"fingerprints"`
	Ignores []UserRef      `json:"ignores"`
}

// FlagRequest toggles a suppression flag on a value.
// swagger:model FlagRequest
type FlagRequest struct {
	Type   string `json:"type"` // hide | silence
	Value  string `json:"value"`
	Remove bool   `json:"remove"`
}

// FlagResponse echoes the resulting flag state.
// swagger:model FlagResponse
type FlagResponse struct {
	State fpx.FlagState `json:"state"`
}

// IgnoreRequest toggles the symmetric ignore pair between two users.
// swagger:model IgnoreRequest
type IgnoreRequest struct {
	Username      string `json:"username"`
	OtherUsername string `json:"other_username"`
	Remove        bool   `json:"remove"`
}
