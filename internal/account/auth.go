package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/history"
	"github.com/hammamikhairi/gastro/internal/logger"
)

// Store holds at most one Person per role. Implementations can be
// in-memory or persistent.
type Store interface {
	Save(ctx context.Context, role domain.Role, p Person) error
	Load(ctx context.Context, role domain.Role) (Person, error)
}

// Option configures Auth.
type Option func(*Auth)

// WithHistoryOptions sets the options used for the history of every newly
// registered user.
func WithHistoryOptions(opts ...history.Option) Option {
	return func(a *Auth) {
		a.historyOpts = opts
	}
}

// Auth tracks the registered admin and user and who is logged in.
//
// States are LoggedOut (Role() == RoleNone), LoggedInAsAdmin and
// LoggedInAsUser. Register never changes the login state. There is a
// single admin slot and a single user slot; registering again for a role
// replaces the previous account of that role.
type Auth struct {
	store       Store
	current     domain.Role
	log         *logger.Logger
	historyOpts []history.Option
}

// NewAuth creates a logged-out auth system backed by store.
func NewAuth(store Store, log *logger.Logger, opts ...Option) *Auth {
	a := &Auth{store: store, log: log}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// LoggedIn reports whether anyone is logged in.
func (a *Auth) LoggedIn() bool { return a.current != domain.RoleNone }

// Role returns the logged-in role, or RoleNone.
func (a *Auth) Role() domain.Role { return a.current }

// Register creates the account for role, replacing any existing account
// of that role. It fails with ErrInvalidRole for anything but RoleAdmin or
// RoleUser, in which case no account is created.
func (a *Auth) Register(ctx context.Context, role domain.Role, first, last, email, password string) (Person, error) {
	var p Person
	switch role {
	case domain.RoleAdmin:
		p = NewAdmin(first, last, email, password)
	case domain.RoleUser:
		p = NewUser(first, last, email, password, a.historyOpts...)
	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidRole, role)
	}

	if err := a.store.Save(ctx, role, p); err != nil {
		return nil, fmt.Errorf("saving %s account: %w", role, err)
	}
	a.log.Info("registered %s account %s", role, email)
	return p, nil
}

// Login logs in as role when an account of that role exists whose email
// and password match exactly. A mismatch returns false with a nil error
// and leaves the login state alone. An invalid role returns false and
// ErrInvalidRole.
func (a *Auth) Login(ctx context.Context, role domain.Role, email, password string) (bool, error) {
	if !role.Valid() {
		return false, fmt.Errorf("%w: %d", domain.ErrInvalidRole, role)
	}

	p, err := a.store.Load(ctx, role)
	if errors.Is(err, domain.ErrNotFound) {
		a.log.Debug("login as %s: no account registered", role)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %s account: %w", role, err)
	}

	if p.Email() != email || p.Password() != password {
		a.log.Warn("login as %s failed for %s", role, email)
		return false, nil
	}

	a.current = role
	a.log.Info("logged in as %s (%s)", role, email)
	return true, nil
}

// Logout returns to the logged-out state.
func (a *Auth) Logout() {
	if a.current != domain.RoleNone {
		a.log.Info("logged out of %s session", a.current)
	}
	a.current = domain.RoleNone
}

// User returns the registered user account.
func (a *Auth) User(ctx context.Context) (*User, error) {
	p, err := a.store.Load(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	switch v := p.(type) {
	case *User:
		return v, nil
	default:
		return nil, fmt.Errorf("user slot holds %T", p)
	}
}
