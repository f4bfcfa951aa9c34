package user

import "time"

type TokenID int64

// Token is the secret value carried by an activation token record.
type Token string

// ActivationToken confirms ownership of an email address before the account
// becomes active. Each token belongs to exactly one user and is created in
// the same transaction as that user.
type ActivationToken struct {
	ID        TokenID
	UserID    ID
	Token     Token
	CreatedAt time.Time
}

type ActivationTokenGenerator interface {
	GenerateActivationToken() Token
}
