package service

import (
	"context"
	"strings"

	"github.com/mymlak/mymlak/internal/api/dto"
	"github.com/mymlak/mymlak/internal/domain/session"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/types"
)

// SessionService manages the device-local identity: the OTP login flow, the
// profile step and logout. There is no real credential verification; the OTP
// check is a fixed-success delay standing in for a network call.
type SessionService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*dto.SessionResponse, error)
	CompleteProfile(ctx context.Context, req dto.CompleteProfileRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*dto.SessionResponse, error)
}

type sessionService struct {
	ServiceParams
	subscriptions SubscriptionService
}

// NewSessionService creates a new session service
func NewSessionService(params ServiceParams) SessionService {
	return &sessionService{
		ServiceParams: params,
		subscriptions: NewSubscriptionService(params),
	}
}

// Login issues an OTP challenge for the phone. A repeated login replaces any
// pending challenge.
func (s *sessionService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(req.Phone)

	challenge := &session.Challenge{
		Phone:    phone,
		IssuedAt: s.Clock.Now(),
	}
	if err := s.SessionRepo.SaveChallenge(ctx, challenge); err != nil {
		return nil, err
	}

	s.Logger.Infow("otp challenge issued", "phone", phone)

	return &dto.LoginResponse{
		Phone:   phone,
		OTPSent: true,
	}, nil
}

// VerifyOTP completes the pending challenge. After the simulated latency the
// verification always succeeds; any code is accepted. A prior session for the
// same phone keeps its profile name.
func (s *sessionService) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*dto.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(req.Phone)

	challenge, err := s.SessionRepo.GetChallenge(ctx)
	if err != nil {
		return nil, err
	}

	if challenge.Phone != phone {
		return nil, ierr.NewError("phone does not match pending verification").
			WithHint("Request a new OTP for this phone number").
			Mark(ierr.ErrValidation)
	}

	// Simulated network round-trip for the OTP check
	s.Clock.Sleep(s.Config.Simulation.OTPLatency)

	sess := &session.Session{Phone: phone}
	if prev, err := s.SessionRepo.Get(ctx); err == nil && prev.Phone == phone {
		sess.Name = prev.Name
	}

	if err := s.SessionRepo.Save(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.SessionRepo.DeleteChallenge(ctx); err != nil {
		return nil, err
	}

	s.Logger.Infow("session established", "phone", phone)

	return s.toSessionResponse(ctx, sess), nil
}

// CompleteProfile sets the display name on the current session.
func (s *sessionService) CompleteProfile(ctx context.Context, req dto.CompleteProfileRequest) (*dto.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.SessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	sess.Name = strings.TrimSpace(req.Name)

	if err := s.SessionRepo.Save(ctx, sess); err != nil {
		return nil, err
	}

	return s.toSessionResponse(ctx, sess), nil
}

// Logout removes the stored session and any pending challenge. Logging out
// when not logged in is a no-op.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.SessionRepo.Delete(ctx); err != nil {
		return err
	}
	return s.SessionRepo.DeleteChallenge(ctx)
}

// Current returns the stored session with the derived tier.
func (s *sessionService) Current(ctx context.Context) (*dto.SessionResponse, error) {
	sess, err := s.SessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.toSessionResponse(ctx, sess), nil
}

func (s *sessionService) toSessionResponse(ctx context.Context, sess *session.Session) *dto.SessionResponse {
	tierCtx := types.WithUserPhone(ctx, sess.Phone)
	return &dto.SessionResponse{
		Phone:             sess.Phone,
		Name:              sess.Name,
		IsProfileComplete: sess.IsProfileComplete(),
		Tier:              s.subscriptions.CurrentTier(tierCtx),
	}
}
