package usecase

import (
	"context"
	"testing"

	"campus-delivery/internal/data/entity"
	"campus-delivery/internal/data/repository"
	"campus-delivery/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func (s *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return entity.ErrEmailTaken
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID) error {
	return nil
}

type stubSessionRepo struct {
	repository.SessionRepository
	sessions map[string]*entity.Session
	revoked  map[string]bool
}

func (s *stubSessionRepo) Create(_ context.Context, session *entity.Session) error {
	s.sessions[session.Token.String()] = session
	return nil
}

func (s *stubSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	if s.revoked[token] {
		return nil, nil
	}
	return s.sessions[token], nil
}

func (s *stubSessionRepo) Revoke(_ context.Context, token string) error {
	if _, ok := s.sessions[token]; !ok {
		return entity.ErrNotFound
	}
	s.revoked[token] = true
	return nil
}

func newAuthFixture() (AuthService, *stubSessionRepo) {
	sessions := &stubSessionRepo{
		sessions: map[string]*entity.Session{},
		revoked:  map[string]bool{},
	}
	repo := &repository.Repository{
		User:    &stubUserRepo{users: map[uuid.UUID]*entity.User{}},
		Session: sessions,
	}
	return NewAuthService(repo, testConfig(), zap.NewNop()), sessions
}

func registerReq() *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Asha Nair",
		Email:    "asha@campus.edu",
		Password: "secret123",
		Mobile:   "9876543210",
		Address:  "Hostel B, Room 214",
		Role:     "student",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()

	resp, err := svc.Register(context.Background(), registerReq(), "test-agent", "10.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleStudent, resp.Role)
	assert.Equal(t, "asha@campus.edu", resp.Email)

	login, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@campus.edu",
		Password: "secret123",
	}, "test-agent", "10.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.NotEqual(t, resp.Token, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq(), "", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq(), "", "")
	assert.ErrorIs(t, err, entity.ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthFixture()

	req := registerReq()
	req.Password = "ab"

	_, err := svc.Register(context.Background(), req, "", "")
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerReq(), "", "")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@campus.edu",
		Password: "wrongpass",
	}, "", "")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "secret123",
	}, "", "")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	sessions := &stubSessionRepo{
		sessions: map[string]*entity.Session{},
		revoked:  map[string]bool{},
	}
	users := &stubUserRepo{users: map[uuid.UUID]*entity.User{}}
	repo := &repository.Repository{User: users, Session: sessions}
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	resp, err := svc.Register(context.Background(), registerReq(), "", "")
	require.NoError(t, err)

	userID, err := uuid.Parse(resp.UserID)
	require.NoError(t, err)
	users.users[userID].IsActive = false

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@campus.edu",
		Password: "secret123",
	}, "", "")
	assert.ErrorIs(t, err, entity.ErrAccountDisabled)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, sessions := newAuthFixture()

	resp, err := svc.Register(context.Background(), registerReq(), "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))
	assert.True(t, sessions.revoked[resp.Token])

	session, err := sessions.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
