package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-access-keeper/internal/metrics"
	"github.com/MKhiriev/go-access-keeper/models"
)

var outcomeCodes = []struct {
	err  error
	code string
}{
	{ErrAccountLockedNow, "locked_now"},
	{ErrAccountLocked, "locked"},
	{ErrInvalidCredentials, "invalid_credentials"},
	{ErrInvalidToken, "invalid_token"},
	{ErrTokenExpired, "token_expired"},
	{ErrPasswordMismatch, "password_mismatch"},
	{ErrGroupAlreadyExists, "group_exists"},
	{ErrGroupNotFound, "group_not_found"},
	{ErrAlreadyMember, "already_member"},
	{ErrUserNotFound, "user_not_found"},
	{ErrEmailAlreadyExists, "email_exists"},
	{ErrUsernameAlreadyExists, "username_exists"},
	{ErrInvalidDataProvided, "invalid_data"},
}

// OutcomeCode returns a stable label for an operation outcome.
func OutcomeCode(err error) string {
	if err == nil {
		return "ok"
	}

	for _, o := range outcomeCodes {
		if errors.Is(err, o.err) {
			return o.code
		}
	}

	return "error"
}

// AccessMetricsService records the outcome of every call on the wrapped
// AccessService.
type AccessMetricsService struct {
	inner   AccessService
	metrics *metrics.AccessMetrics
}

func NewAccessMetricsService(m *metrics.AccessMetrics) AccessServiceWrapper {
	return &AccessMetricsService{metrics: m}
}

func (s *AccessMetricsService) Wrap(inner AccessService) AccessService {
	s.inner = inner
	return s
}

func (s *AccessMetricsService) observe(operation string, err error) {
	s.metrics.ObserveOperation(operation, OutcomeCode(err))
}

func (s *AccessMetricsService) Register(ctx context.Context, username, password, email string) error {
	err := s.inner.Register(ctx, username, password, email)
	s.observe("register", err)
	return err
}

func (s *AccessMetricsService) Login(ctx context.Context, username, password string) (models.Token, error) {
	token, err := s.inner.Login(ctx, username, password)
	s.observe("login", err)

	switch {
	case err == nil:
		s.metrics.SessionStarted()
	case errors.Is(err, ErrAccountLockedNow):
		s.metrics.LockoutTriggered()
	}

	return token, err
}

func (s *AccessMetricsService) Logout(ctx context.Context, token string) error {
	err := s.inner.Logout(ctx, token)
	s.observe("logout", err)
	if err == nil {
		s.metrics.SessionEnded()
	}
	return err
}

func (s *AccessMetricsService) ResetPassword(ctx context.Context, username, oldPassword, newPassword string) error {
	err := s.inner.ResetPassword(ctx, username, oldPassword, newPassword)
	s.observe("reset_password", err)
	return err
}

func (s *AccessMetricsService) CreateGroup(ctx context.Context, name string) error {
	err := s.inner.CreateGroup(ctx, name)
	s.observe("create_group", err)
	return err
}

func (s *AccessMetricsService) AddUserToGroup(ctx context.Context, username, group string) error {
	err := s.inner.AddUserToGroup(ctx, username, group)
	s.observe("add_user_to_group", err)
	return err
}

func (s *AccessMetricsService) CheckAccess(ctx context.Context, username, group string) bool {
	granted := s.inner.CheckAccess(ctx, username, group)
	if granted {
		s.metrics.ObserveOperation("check_access", "granted")
	} else {
		s.metrics.ObserveOperation("check_access", "denied")
	}
	return granted
}

func (s *AccessMetricsService) VerifyEmail(ctx context.Context, username string) error {
	err := s.inner.VerifyEmail(ctx, username)
	s.observe("verify_email", err)
	return err
}

func (s *AccessMetricsService) GetProfile(ctx context.Context, username string) (models.Profile, error) {
	profile, err := s.inner.GetProfile(ctx, username)
	s.observe("get_profile", err)
	return profile, err
}

func (s *AccessMetricsService) ResolveToken(ctx context.Context, token string) (models.Token, error) {
	resolved, err := s.inner.ResolveToken(ctx, token)
	s.observe("resolve_token", err)
	return resolved, err
}
