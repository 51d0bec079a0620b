package entity

import "time"

// UserRecord is the document-store mirror of the identity's profile fields, keyed by UID.
type UserRecord struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewUserRecord builds the default record for an identity seen for the first time.
func NewUserRecord(uid, email, displayName string, now time.Time) *UserRecord {
	return &UserRecord{
		UID:         uid,
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Clone returns a copy safe to hand to another goroutine.
func (r *UserRecord) Clone() *UserRecord {
	if r == nil {
		return nil
	}
	cp := *r

	return &cp
}

// UserRecordUpdate is a partial update of a user record. Nil fields are left untouched.
type UserRecordUpdate struct {
	DisplayName *string
	PhotoURL    *string
	UpdatedAt   time.Time
}

// Apply copies the non-nil fields of u onto r.
func (u UserRecordUpdate) Apply(r *UserRecord) {
	if u.DisplayName != nil {
		r.DisplayName = *u.DisplayName
	}
	if u.PhotoURL != nil {
		r.PhotoURL = *u.PhotoURL
	}
	r.UpdatedAt = u.UpdatedAt
}
