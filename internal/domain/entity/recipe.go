package entity

import "time"

// Recipe is the part of a recipe record the account lifecycle cares about: who owns it.
type Recipe struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
}
