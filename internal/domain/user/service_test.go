package user

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/hardware-store-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))

	cfg := &config.Config{}
	cfg.Security.BcryptCost = bcrypt.MinCost
	return NewService(db, cfg)
}

func TestCreateUserEnforcesUniqueEmail(t *testing.T) {
	s := testService(t)

	created, err := s.CreateUser(&CreateRequest{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "secreto",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, DefaultRole, created.Role)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "secreto", created.PasswordHash)

	_, err = s.CreateUser(&CreateRequest{
		FirstName: "Otra",
		Email:     "ana@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetUserNotFound(t *testing.T) {
	s := testService(t)

	_, err := s.GetUser(99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetUserByEmail("nadie@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserIsPartial(t *testing.T) {
	s := testService(t)

	created, err := s.CreateUser(&CreateRequest{
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@example.com",
		City:      "Lima",
	})
	require.NoError(t, err)

	phone := "999888777"
	updated, err := s.UpdateUser(created.ID, &UpdateRequest{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "999888777", updated.Phone)
	// untouched fields survive
	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, "García", updated.LastName)
	assert.Equal(t, "Lima", updated.City)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	s := testService(t)

	_, err := s.CreateUser(&CreateRequest{FirstName: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	other, err := s.CreateUser(&CreateRequest{FirstName: "Beto", Email: "beto@example.com"})
	require.NoError(t, err)

	taken := "ana@example.com"
	_, err = s.UpdateUser(other.ID, &UpdateRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// keeping your own email is not a conflict
	same := "beto@example.com"
	_, err = s.UpdateUser(other.ID, &UpdateRequest{Email: &same})
	assert.NoError(t, err)
}

func TestDeleteUser(t *testing.T) {
	s := testService(t)

	created, err := s.CreateUser(&CreateRequest{FirstName: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(created.ID))
	assert.ErrorIs(t, s.DeleteUser(created.ID), ErrNotFound)
}

func TestAuthenticate(t *testing.T) {
	s := testService(t)

	_, err := s.CreateUser(&CreateRequest{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "secreto",
	})
	require.NoError(t, err)

	u, err := s.Authenticate(&LoginRequest{Email: "ana@example.com", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)

	_, err = s.Authenticate(&LoginRequest{Email: "ana@example.com", Password: "mal"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate(&LoginRequest{Email: "nadie@example.com", Password: "secreto"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
