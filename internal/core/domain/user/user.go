package user

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

// Roles is a value owned by the user record, it has no identity of its own
// and is stored as part of the user row. A user always carries a Roles
// value, the zero value means no role assignments.
type Roles struct {
	IsAdmin     bool
	IsModerator bool
}

// Validate mirrors the role assignment rules. There are no role-level
// constraints at the moment, any combination of flags is allowed.
func (r Roles) Validate() error {
	return nil
}

type User struct {
	ID          ID
	Email       c.Email
	Roles       Roles
	CreatedAt   time.Time
	ActivatedAt c.Optional[time.Time]
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	return nil
}

func (u *User) IsActive() bool {
	return u.ActivatedAt.IsPresent
}
