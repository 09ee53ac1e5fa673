package services

import (
	"context"
	"errors"
	"strings"

	"travel-backend/apperrors"
	"travel-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IdentityService owns user accounts and credential verification.
type IdentityService struct {
	DB       *gorm.DB
	HashCost int
}

func NewIdentityService(db *gorm.DB, hashCost int) *IdentityService {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = bcrypt.DefaultCost
	}
	return &IdentityService{DB: db, HashCost: hashCost}
}

type SignupInput struct {
	Username string
	Email    string
	Phone    string
	Address  string
	Password string
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Phone    *string
	Address  *string
	Password *string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login tells usernames and emails apart by "@", so a username may not contain one.
func validateUsername(username string) error {
	if strings.Contains(username, "@") {
		return apperrors.ValidationFields("invalid username", map[string]string{"username": "must not contain @"})
	}
	return nil
}

func (s *IdentityService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.HashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.Validation("password must be at most 72 bytes")
		}
		return "", apperrors.Internal("failed to hash password", err)
	}
	return string(hash), nil
}

func (s *IdentityService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	user := models.User{
		Username: strings.TrimSpace(in.Username),
		Email:    normalizeEmail(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Address:  strings.TrimSpace(in.Address),
	}

	missing := map[string]string{}
	for field, value := range map[string]string{
		"username": user.Username,
		"email":    user.Email,
		"phone":    user.Phone,
		"address":  user.Address,
		"password": in.Password,
	} {
		if value == "" {
			missing[field] = "is required"
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.ValidationFields("all fields are required", missing)
	}
	if err := validateUsername(user.Username); err != nil {
		return nil, err
	}

	existing, err := s.FindByUsernameOrEmail(ctx, user.Username, user.Email)
	if err == nil && existing != nil {
		return nil, apperrors.AlreadyExists("username or email already exists")
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	// The unique indexes catch a concurrent signup that slipped past the lookup.
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, apperrors.AlreadyExists("username or email already exists")
		}
		return nil, apperrors.Internal("failed to register user", err)
	}
	return &user, nil
}

// Login accepts either the username or the email as identifier.
func (s *IdentityService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, apperrors.Validation("username and password are required")
	}

	var (
		user *models.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.findBy(ctx, "email", normalizeEmail(identifier))
	} else {
		user, err = s.findBy(ctx, "username", identifier)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials")
	}
	return user, nil
}

// FindByUsernameOrEmail matches either value against both columns, so a
// username can never shadow another account's email.
func (s *IdentityService) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).
		Where("username IN ? OR email IN ?", []string{username, email}, []string{username, email}).
		First(&user).Error
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal("failed to look up user", err)
	}
	return &user, nil
}

func (s *IdentityService) findBy(ctx context.Context, column, value string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where(column+" = ?", value).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal("failed to look up user", err)
	}
	return &user, nil
}

func (s *IdentityService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, apperrors.Validation("user id is required")
	}

	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFoundf("user %d not found", id)
		}
		return nil, apperrors.Internal("failed to look up user", err)
	}
	return &user, nil
}

func (s *IdentityService) UpdateByID(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	updates := map[string]any{}
	invalid := map[string]string{}

	setText := func(column string, value *string, normalize func(string) string) {
		if value == nil {
			return
		}
		v := normalize(*value)
		if v == "" {
			invalid[column] = "cannot be empty"
			return
		}
		updates[column] = v
	}
	setText("username", in.Username, strings.TrimSpace)
	if v, ok := updates["username"].(string); ok && validateUsername(v) != nil {
		delete(updates, "username")
		invalid["username"] = "must not contain @"
	}
	setText("email", in.Email, normalizeEmail)
	setText("phone", in.Phone, strings.TrimSpace)
	setText("address", in.Address, strings.TrimSpace)

	if in.Password != nil {
		if *in.Password == "" {
			invalid["password"] = "cannot be empty"
		} else {
			hash, err := s.hashPassword(*in.Password)
			if err != nil {
				return nil, err
			}
			updates["password"] = hash
		}
	}

	if len(invalid) > 0 {
		return nil, apperrors.ValidationFields("invalid profile update", invalid)
	}
	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, apperrors.AlreadyExists("username or email already exists")
		}
		return nil, apperrors.Internal("failed to update user", err)
	}
	return s.FindByID(ctx, id)
}
