package repository

import (
	"context"
	"testing"
	"time"

	"campus-delivery/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserRepoMock(t *testing.T) (UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewUserRepository(mock, zap.NewNop()), mock
}

func sampleUser() *entity.User {
	now := time.Now()
	return &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:         "Asha Nair",
		Email:        "asha@campus.edu",
		PasswordHash: "$2a$12$hash",
		Mobile:       "9876543210",
		Address:      "Hostel B, Room 214",
		Role:         entity.RoleStudent,
		IsActive:     true,
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	user := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			user.ID, user.Name, user.Email, user.PasswordHash, user.Mobile,
			user.Address, user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	user := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			user.ID, user.Name, user.Email, user.PasswordHash, user.Mobile,
			user.Address, user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt,
		).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, entity.ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByIDMissing(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	id := uuid.New()

	mock.ExpectQuery("FROM users").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryDeleteNotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE users SET deleted_at").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
