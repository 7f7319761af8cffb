package service

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oliverisaac/pinboard/types"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxUsername       = 150
	minPasswordLength = 8
)

var errBadCredentials = types.NewValidationError("general", "Please enter a correct username and password.")

func validUsername(username string) bool {
	if username == "" || utf8.RuneCountInString(username) > maxUsername {
		return false
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("@.+-_", r) {
			return false
		}
	}
	return true
}

func (s *Service) userExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&types.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// CreateUser registers a new user. Form problems come back as
// *types.ValidationError.
func (s *Service) CreateUser(ctx context.Context, username string, password string) (types.User, error) {
	username = strings.TrimSpace(username)
	if !validUsername(username) {
		return types.User{}, types.NewValidationError("username", "Enter a valid username. It may contain letters, numbers and @/./+/-/_ only.")
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return types.User{}, types.NewValidationError("password", "This password is too short. It must contain at least 8 characters.")
	}

	exists, err := s.userExists(ctx, username)
	if err != nil {
		return types.User{}, errors.Wrapf(err, "looking up user %q", username)
	}
	if exists {
		return types.User{}, types.NewValidationError("username", "A user with that username already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return types.User{}, errors.Wrap(err, "hashing password")
	}

	now := s.now()
	user := types.User{
		Username:  username,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return types.User{}, errors.Wrapf(err, "saving user %q", username)
	}
	return user, nil
}

// Authenticate checks a username and password. An unknown user and a wrong
// password produce the same error.
func (s *Service) Authenticate(ctx context.Context, username string, password string) (types.User, error) {
	var user types.User
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.User{}, errBadCredentials
	}
	if err != nil {
		return types.User{}, errors.Wrapf(err, "looking up user %q", username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return types.User{}, errBadCredentials
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id uint) (types.User, error) {
	var user types.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, errors.Wrapf(types.ErrNotFound, "user %d", id)
	}
	if err != nil {
		return user, errors.Wrapf(err, "loading user %d", id)
	}
	return user, nil
}
