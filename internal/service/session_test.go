package service

import (
	"testing"

	"github.com/mymlak/mymlak/internal/api/dto"
	ierr "github.com/mymlak/mymlak/internal/errors"
	"github.com/mymlak/mymlak/internal/testutil"
	"github.com/mymlak/mymlak/internal/types"
	"github.com/stretchr/testify/suite"
)

type SessionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service       SessionService
	subscriptions SubscriptionService
}

func TestSessionService(t *testing.T) {
	suite.Run(t, new(SessionServiceSuite))
}

func (s *SessionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := s.serviceParams()
	s.service = NewSessionService(params)
	s.subscriptions = NewSubscriptionService(params)
}

func (s *SessionServiceSuite) serviceParams() ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		Clock:            s.GetClock(),
		PlanRepo:         stores.PlanRepo,
		CouponRepo:       stores.CouponRepo,
		MerchantRepo:     stores.MerchantRepo,
		SubscriptionRepo: stores.SubscriptionRepo,
		BookingRepo:      stores.BookingRepo,
		SessionRepo:      stores.SessionRepo,
	}
}

func (s *SessionServiceSuite) login(phone string) *dto.SessionResponse {
	_, err := s.service.Login(s.GetContext(), dto.LoginRequest{Phone: phone})
	s.Require().NoError(err)

	resp, err := s.service.VerifyOTP(s.GetContext(), dto.VerifyOTPRequest{Phone: phone, OTP: "123456"})
	s.Require().NoError(err)
	return resp
}

func (s *SessionServiceSuite) TestLoginIssuesChallenge() {
	resp, err := s.service.Login(s.GetContext(), dto.LoginRequest{Phone: "+8801712345678"})
	s.NoError(err)
	s.Equal("+8801712345678", resp.Phone)
	s.True(resp.OTPSent)

	challenge, err := s.GetStores().SessionRepo.GetChallenge(s.GetContext())
	s.NoError(err)
	s.Equal("+8801712345678", challenge.Phone)
}

func (s *SessionServiceSuite) TestLoginValidation() {
	_, err := s.service.Login(s.GetContext(), dto.LoginRequest{Phone: "  "})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SessionServiceSuite) TestVerifyOTPEstablishesSession() {
	resp := s.login("+8801712345678")

	s.Equal("+8801712345678", resp.Phone)
	s.Empty(resp.Name)
	s.False(resp.IsProfileComplete)
	s.Equal(types.UserTierNormal, resp.Tier)

	// The challenge is consumed
	_, err := s.GetStores().SessionRepo.GetChallenge(s.GetContext())
	s.Error(err)
}

func (s *SessionServiceSuite) TestVerifyOTPWithoutChallenge() {
	_, err := s.service.VerifyOTP(s.GetContext(), dto.VerifyOTPRequest{Phone: "+8801712345678", OTP: "123456"})
	s.Error(err)
}

func (s *SessionServiceSuite) TestVerifyOTPPhoneMismatch() {
	_, err := s.service.Login(s.GetContext(), dto.LoginRequest{Phone: "+8801712345678"})
	s.NoError(err)

	_, err = s.service.VerifyOTP(s.GetContext(), dto.VerifyOTPRequest{Phone: "+8801999999999", OTP: "123456"})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SessionServiceSuite) TestCompleteProfile() {
	s.login("+8801712345678")

	resp, err := s.service.CompleteProfile(s.GetContext(), dto.CompleteProfileRequest{Name: "  Nayeem  "})
	s.NoError(err)
	s.Equal("Nayeem", resp.Name)
	s.True(resp.IsProfileComplete)
}

func (s *SessionServiceSuite) TestCompleteProfileRequiresSession() {
	_, err := s.service.CompleteProfile(s.GetContext(), dto.CompleteProfileRequest{Name: "Nayeem"})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SessionServiceSuite) TestReloginKeepsProfileName() {
	s.login("+8801712345678")
	_, err := s.service.CompleteProfile(s.GetContext(), dto.CompleteProfileRequest{Name: "Nayeem"})
	s.NoError(err)

	resp := s.login("+8801712345678")
	s.Equal("Nayeem", resp.Name)
	s.True(resp.IsProfileComplete)
}

func (s *SessionServiceSuite) TestReloginWithDifferentPhoneDropsName() {
	s.login("+8801712345678")
	_, err := s.service.CompleteProfile(s.GetContext(), dto.CompleteProfileRequest{Name: "Nayeem"})
	s.NoError(err)

	resp := s.login("+8801999999999")
	s.Empty(resp.Name)
	s.False(resp.IsProfileComplete)
}

func (s *SessionServiceSuite) TestSessionTierReflectsSubscription() {
	s.login("+8801712345678")

	ctx := types.WithUserPhone(s.GetContext(), "+8801712345678")
	_, err := s.subscriptions.Subscribe(ctx, dto.SubscribeRequest{PlanID: "monthly"})
	s.NoError(err)

	resp, err := s.service.Current(s.GetContext())
	s.NoError(err)
	s.Equal(types.UserTierVIP, resp.Tier)
}

func (s *SessionServiceSuite) TestLogout() {
	s.login("+8801712345678")

	s.NoError(s.service.Logout(s.GetContext()))

	_, err := s.service.Current(s.GetContext())
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// Logging out again is a no-op
	s.NoError(s.service.Logout(s.GetContext()))
}
