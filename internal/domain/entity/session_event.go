package entity

import "time"

// SessionEventType names what happened to a session.
type SessionEventType string

const (
	SessionEventSignedIn       SessionEventType = "signed_in"
	SessionEventSignedOut      SessionEventType = "signed_out"
	SessionEventProfileUpdated SessionEventType = "profile_updated"
	SessionEventUploadProgress SessionEventType = "upload_progress"
	SessionEventAccountDeleted SessionEventType = "account_deleted"
)

// SessionEvent is pushed to the open pages of one identity.
type SessionEvent struct {
	Type     SessionEventType `json:"type"`
	UID      string           `json:"uid"`
	Message  string           `json:"message,omitempty"`
	Progress float64          `json:"progress,omitempty"`
	Record   *UserRecord      `json:"record,omitempty"`
	At       time.Time        `json:"at"`
}
