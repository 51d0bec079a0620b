package entity

import "time"

// AccountEventType names an account lifecycle change published to other services.
type AccountEventType string

const (
	AccountEventCreated        AccountEventType = "account.created"
	AccountEventProfileUpdated AccountEventType = "profile.updated"
	AccountEventAvatarRemoved  AccountEventType = "avatar.removed"
	AccountEventDeleted        AccountEventType = "account.deleted"
)

// AccountEvent is the payload published on the account events topic.
type AccountEvent struct {
	EventID    string           `json:"event_id"`
	Type       AccountEventType `json:"type"`
	UID        string           `json:"uid"`
	Email      string           `json:"email,omitempty"`
	PhotoURL   string           `json:"photo_url,omitempty"`
	RequestID  string           `json:"request_id,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
