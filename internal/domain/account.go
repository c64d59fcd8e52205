package domain

import "time"

// AccountRole separates support agents from customers at the API boundary.
type AccountRole string

const (
	RoleAgent    AccountRole = "agent"
	RoleCustomer AccountRole = "customer"
)

// Account is a login identity for the HTTP API. It lives outside the
// lifecycle engine: tickets reference people only by opaque ids.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         AccountRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
