package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"travel-backend/apperrors"
	"travel-backend/models"
)

func TestSignup_HashesPasswordAndHidesIt(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(db, bcrypt.MinCost)

	u, err := svc.Signup(context.Background(), SignupInput{
		Username: "alice",
		Email:    " Alice@Example.com ",
		Phone:    "555",
		Address:  "Lisbon",
		Password: "pw123456",
	})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "pw123456", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pw123456")))

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), u.Password)
}

func TestSignup_MissingFields(t *testing.T) {
	svc := NewIdentityService(newTestDB(t), bcrypt.MinCost)

	_, err := svc.Signup(context.Background(), SignupInput{Username: "bob", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	appErr := apperrors.From(err)
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "phone")
	assert.Contains(t, appErr.Fields, "address")
	assert.NotContains(t, appErr.Fields, "username")
}

func TestSignup_DuplicateUsernameOrEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(db, bcrypt.MinCost)
	seedUser(t, db, "alice")

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"same username", "alice", "other@example.com"},
		{"same email", "alice2", "ALICE@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), SignupInput{
				Username: tt.username, Email: tt.email, Phone: "1", Address: "a", Password: "pw",
			})
			assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
		})
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(db, bcrypt.MinCost)
	alice := seedUser(t, db, "alice")

	t.Run("by username", func(t *testing.T) {
		u, err := svc.Login(context.Background(), "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, u.ID)
	})
	t.Run("by email", func(t *testing.T) {
		u, err := svc.Login(context.Background(), "ALICE@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, u.ID)
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "alice", "nope")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "mallory", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
	t.Run("missing credentials", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "", "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestUpdateByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(db, bcrypt.MinCost)
	alice := seedUser(t, db, "alice")
	seedUser(t, db, "bob")

	str := func(s string) *string { return &s }

	t.Run("partial update and password rehash", func(t *testing.T) {
		u, err := svc.UpdateByID(context.Background(), alice.ID, UpdateUserInput{
			Phone:    str("999"),
			Password: str("newpass1"),
		})
		require.NoError(t, err)
		assert.Equal(t, "999", u.Phone)
		assert.Equal(t, "1 Main St", u.Address)

		_, err = svc.Login(context.Background(), "alice", "newpass1")
		assert.NoError(t, err)
		_, err = svc.Login(context.Background(), "alice", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
	t.Run("taken username", func(t *testing.T) {
		_, err := svc.UpdateByID(context.Background(), alice.ID, UpdateUserInput{Username: str("bob")})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	})
	t.Run("empty value", func(t *testing.T) {
		_, err := svc.UpdateByID(context.Background(), alice.ID, UpdateUserInput{Email: str("  ")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
	t.Run("nothing to update", func(t *testing.T) {
		_, err := svc.UpdateByID(context.Background(), alice.ID, UpdateUserInput{})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateByID(context.Background(), 9999, UpdateUserInput{Phone: str("1")})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestSignup_RejectsAtSignInUsername(t *testing.T) {
	svc := NewIdentityService(newTestDB(t), bcrypt.MinCost)

	_, err := svc.Signup(context.Background(), SignupInput{
		Username: "carol@x.com", Email: "a@example.com", Phone: "1", Address: "a", Password: "pwA",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, apperrors.From(err).Fields, "username")
}

func TestSignup_EmailTakenAsUsernameConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(db, bcrypt.MinCost)
	// Rows written before usernames were restricted may still hold an "@".
	require.NoError(t, db.Create(&models.User{Username: "carol@x.com", Email: "a@example.com", Password: "x"}).Error)

	_, err := svc.Signup(context.Background(), SignupInput{
		Username: "carol", Email: "carol@x.com", Phone: "1", Address: "b", Password: "pwB",
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestLogin_EmailIdentifierIgnoresMatchingUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(db, bcrypt.MinCost)
	ctx := context.Background()

	carol, err := svc.Signup(ctx, SignupInput{
		Username: "carol", Email: "carol@x.com", Phone: "1", Address: "b", Password: "pwB",
	})
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "carol@x.com", Email: "a@example.com", Password: "x"}).Error)

	u, err := svc.Login(ctx, "carol@x.com", "pwB")
	require.NoError(t, err)
	assert.Equal(t, carol.ID, u.ID)

	u, err = svc.Login(ctx, "carol", "pwB")
	require.NoError(t, err)
	assert.Equal(t, carol.ID, u.ID)
}

func TestUpdateByID_RejectsAtSignInUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewIdentityService(db, bcrypt.MinCost)
	alice := seedUser(t, db, "alice")

	name := "alice@example.org"
	_, err := svc.UpdateByID(context.Background(), alice.ID, UpdateUserInput{Username: &name})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, apperrors.From(err).Fields, "username")
}
