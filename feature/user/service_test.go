package user_test

import (
	"context"
	"testing"

	"lexicon-manager/core/apperr"
	"lexicon-manager/core/database"
	"lexicon-manager/feature/user"
	"lexicon-manager/feature/user/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupUserService(t *testing.T) (*user.Service, *models.User) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db, &models.User{}))

	u := models.User{Email: "chinedu@example.com", DisplayName: "Chinedu"}
	assert.NoError(t, db.Create(&u).Error)

	return user.NewService(db, zap.NewNop()), &u
}

func TestGetUser(t *testing.T) {
	svc, seeded := setupUserService(t)

	u, err := svc.Get(context.Background(), seeded.ID)
	assert.NoError(t, err)
	assert.Equal(t, "chinedu@example.com", u.Email)

	_, err = svc.Get(context.Background(), uuid.NewString())
	assert.Error(t, err)
	assert.True(t, apperr.IsCategory(err, apperr.NotFound))
}

func TestEmailOf(t *testing.T) {
	svc, seeded := setupUserService(t)

	email, err := svc.EmailOf(context.Background(), seeded.ID)
	assert.NoError(t, err)
	assert.Equal(t, "chinedu@example.com", email)
}

func TestEmailOfMissingUser(t *testing.T) {
	svc, _ := setupUserService(t)

	// A vanished submitter is not an error; the caller skips notification.
	email, err := svc.EmailOf(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Empty(t, email)
}
