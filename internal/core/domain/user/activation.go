package user

import (
	c "accounts/internal/core/domain/common"
	"context"
)

type ActivationEmailSender interface {
	SendActivationEmail(ctx context.Context, email c.Email, token Token) error
}
