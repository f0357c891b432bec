package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/smartmarket/storefront/internal/domain"
	"github.com/smartmarket/storefront/internal/port"
)

// Result is what auth operations hand back for inline rendering. A rejected
// credential is not an error: it is a Result with Success=false. Errors are
// reserved for session repository failures.
type Result struct {
	Success bool
	Message string
	User    domain.User
}

type account struct {
	email    string
	password string
	user     domain.User
}

// The two demo accounts. Plaintext on purpose: this is a credential-matching
// stub, not a real authentication system.
var demoAccounts = []account{
	{
		email:    "user@example.com",
		password: "password",
		user: domain.User{
			ID:    "user1",
			Name:  "John Doe",
			Email: "user@example.com",
			Role:  domain.RoleCustomer,
		},
	},
	{
		email:    "farmer@example.com",
		password: "password",
		user: domain.User{
			ID:       "farmer1",
			Name:     "Sarah Johnson",
			Email:    "farmer@example.com",
			Role:     domain.RoleFarmer,
			FarmName: "Green Valley Farm",
		},
	},
}

type Service struct {
	sessions port.SessionRepository
	notifier port.Notifier
}

func NewService(sessions port.SessionRepository, notifier port.Notifier) *Service {
	return &Service{
		sessions: sessions,
		notifier: notifier,
	}
}

// Login matches credentials against the demo accounts. On success the user
// record is persisted as the current session.
func (s *Service) Login(ctx context.Context, email, password string) (Result, error) {
	for _, acc := range demoAccounts {
		if !strings.EqualFold(acc.email, email) || acc.password != password {
			continue
		}

		if err := s.sessions.Save(ctx, acc.user); err != nil {
			return Result{}, fmt.Errorf("sessions.Save: %w", err)
		}

		s.notifier.Notify(domain.Notification{
			Title:       "Login successful",
			Description: "Welcome back to Smart Market!",
			Variant:     domain.VariantDefault,
		})

		return Result{Success: true, User: acc.user}, nil
	}

	s.notifier.Notify(domain.Notification{
		Title:       "Login failed",
		Description: "Invalid email or password",
		Variant:     domain.VariantDestructive,
	})

	return Result{Success: false, Message: "Invalid email or password"}, nil
}

// Register creates a new user and signs it in. Role defaults to customer.
func (s *Service) Register(ctx context.Context, name, email string, role domain.Role) (Result, error) {
	if role == "" {
		role = domain.RoleCustomer
	}

	user := domain.User{
		ID:    "user-" + uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  role,
	}

	if err := s.sessions.Save(ctx, user); err != nil {
		return Result{}, fmt.Errorf("sessions.Save: %w", err)
	}

	s.notifier.Notify(domain.Notification{
		Title:       "Registration successful",
		Description: "Welcome to Smart Market!",
		Variant:     domain.VariantDefault,
	})

	return Result{Success: true, User: user}, nil
}

// Logout discards the current session.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Delete(ctx); err != nil {
		return fmt.Errorf("sessions.Delete: %w", err)
	}

	s.notifier.Notify(domain.Notification{
		Title:       "Logged out",
		Description: "You have been successfully logged out",
		Variant:     domain.VariantDefault,
	})

	return nil
}

// ProfileUpdate carries the fields a user may change. Empty fields are left
// as they are.
type ProfileUpdate struct {
	Name     string
	Email    string
	Avatar   string
	FarmName string
}

// UpdateProfile merges the update into the signed-in user and persists it.
func (s *Service) UpdateProfile(ctx context.Context, update ProfileUpdate) (Result, error) {
	user, ok, err := s.sessions.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("sessions.Load: %w", err)
	}
	if !ok {
		return Result{Success: false, Message: "Not logged in"}, nil
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	if update.Avatar != "" {
		user.Avatar = update.Avatar
	}
	if update.FarmName != "" {
		user.FarmName = update.FarmName
	}

	if err := s.sessions.Save(ctx, user); err != nil {
		return Result{}, fmt.Errorf("sessions.Save: %w", err)
	}

	s.notifier.Notify(domain.Notification{
		Title:       "Profile updated",
		Description: "Your profile has been successfully updated",
		Variant:     domain.VariantDefault,
	})

	return Result{Success: true, User: user}, nil
}

// Restore loads the persisted user at startup, if any.
func (s *Service) Restore(ctx context.Context) (domain.User, bool, error) {
	user, ok, err := s.sessions.Load(ctx)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("sessions.Load: %w", err)
	}

	return user, ok, nil
}
