package user

import (
	c "accounts/internal/core/domain/common"
	"context"
	"fmt"
	"sync"
	"time"
)

type FakeUserRepository struct {
	Users         []User
	ReferencedIDs map[ID]bool
	ReturnError   bool
	lock          sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{
		Users:         make([]User, 0, 10),
		ReferencedIDs: make(map[ID]bool),
	}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:        maxID + 1,
		Email:     input.Email,
		Roles:     input.Roles,
		CreatedAt: input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) List(ctx context.Context) ([]User, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list users")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users, nil
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not update user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.ID {
			if input.DoRolesUpdate {
				r.Users[ix].Roles = input.Roles
			}
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Activate(ctx context.Context, id ID, at time.Time) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			if u.IsActive() {
				return u, ErrUserAlreadyActive
			}
			r.Users[ix].ActivatedAt = c.NewOptional(at, true)
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Delete(ctx context.Context, id ID) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not delete user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			if r.ReferencedIDs[id] {
				return u, ErrUserIsReferenced
			}
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

type FakeActivationTokenRepository struct {
	Tokens      []ActivationToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeActivationTokenRepository() *FakeActivationTokenRepository {
	return &FakeActivationTokenRepository{Tokens: make([]ActivationToken, 0, 10)}
}

func (r *FakeActivationTokenRepository) Create(
	ctx context.Context,
	input CreateActivationTokenInput,
) (t ActivationToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not create activation token %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := TokenID(0)
	for _, t := range r.Tokens {
		maxID = t.ID
	}
	t = ActivationToken{
		ID:        maxID + 1,
		UserID:    input.UserID,
		Token:     input.Token,
		CreatedAt: input.CreatedAt,
	}
	r.Tokens = append(r.Tokens, t)
	return t, nil
}

func (r *FakeActivationTokenRepository) GetByID(ctx context.Context, id TokenID) (t ActivationToken, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, t := range r.Tokens {
		if t.ID == id {
			return t, nil
		}
	}
	return t, ErrActivationTokenDoesNotExist
}

func (r *FakeActivationTokenRepository) List(ctx context.Context) ([]ActivationToken, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list activation tokens")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	tokens := make([]ActivationToken, len(r.Tokens))
	copy(tokens, r.Tokens)
	return tokens, nil
}

func (r *FakeActivationTokenRepository) ListByUserID(ctx context.Context, userID ID) ([]ActivationToken, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	tokens := make([]ActivationToken, 0, len(r.Tokens))
	for _, t := range r.Tokens {
		if t.UserID == userID {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}

func (r *FakeActivationTokenRepository) Update(
	ctx context.Context,
	input UpdateActivationTokenInput,
) (t ActivationToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not update activation token %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, t := range r.Tokens {
		if t.ID == input.ID {
			if input.DoTokenUpdate {
				r.Tokens[ix].Token = input.Token
			}
			return r.Tokens[ix], nil
		}
	}
	return t, ErrActivationTokenDoesNotExist
}

func (r *FakeActivationTokenRepository) Delete(ctx context.Context, id TokenID) (t ActivationToken, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, t := range r.Tokens {
		if t.ID == id {
			r.Tokens = append(r.Tokens[:ix], r.Tokens[ix+1:]...)
			return t, nil
		}
	}
	return t, ErrActivationTokenDoesNotExist
}

type FakeProfileRepository struct {
	Profiles    map[ID]Profile
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeProfileRepository() *FakeProfileRepository {
	return &FakeProfileRepository{Profiles: make(map[ID]Profile)}
}

func (r *FakeProfileRepository) Set(ctx context.Context, input SetProfileInput) (p Profile, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not set profile %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	p = Profile{
		UserID:    input.UserID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: input.BirthDate,
	}
	r.Profiles[input.UserID] = p
	return p, nil
}

func (r *FakeProfileRepository) GetByUserID(ctx context.Context, userID ID) (p Profile, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	p, ok := r.Profiles[userID]
	if !ok {
		return p, ErrProfileDoesNotExist
	}
	return p, nil
}

type FakeActivationTokenGenerator struct {
	Token Token
}

func NewFakeActivationTokenGenerator(token string) *FakeActivationTokenGenerator {
	return &FakeActivationTokenGenerator{Token: Token(token)}
}

func (g *FakeActivationTokenGenerator) GenerateActivationToken() Token {
	return g.Token
}

type FakeActivationEmailSender struct {
	SentTo      []c.Email
	SentTokens  []Token
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeActivationEmailSender() *FakeActivationEmailSender {
	return &FakeActivationEmailSender{}
}

func (s *FakeActivationEmailSender) SendActivationEmail(ctx context.Context, email c.Email, token Token) error {
	if s.ReturnError {
		return fmt.Errorf("could not send activation email to %s", email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.SentTo = append(s.SentTo, email)
	s.SentTokens = append(s.SentTokens, token)
	return nil
}

func (s *FakeActivationEmailSender) SentCount() int {
	return len(s.SentTo)
}
