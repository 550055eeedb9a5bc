// Package entity contains the core business objects of the project.
package entity

import "time"

// Address is a delivery address owned by exactly one account.
type Address struct {
	ID            int64
	UserID        int64
	RecipientName string
	Address       string
	City          string
	ZipCode       int
	Country       string
	Phone         string // stored flat on the row, unrelated to the account phone
	Default       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
