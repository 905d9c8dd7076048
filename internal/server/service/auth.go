package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/fbivlabs/fbiv-vpn/internal/server/config"
	"github.com/fbivlabs/fbiv-vpn/internal/server/crypto"
	"github.com/fbivlabs/fbiv-vpn/internal/server/models"
	serr "github.com/fbivlabs/fbiv-vpn/internal/shared/errors"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService implements registration, login and identity lookup.
//
// Responsibilities:
//   - input validation and email normalization
//   - one-way password hashing (never stores plaintext)
//   - issuing signed, expiring access tokens
type AuthService struct {
	users UsersRepo

	hasher crypto.Hasher
	jwt    crypto.JWTConfig
}

// NewAuthService creates an AuthService from the configured hasher and
// token parameters.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	var hasher crypto.Hasher
	switch strings.ToLower(cfg.Password.Hasher) {
	case "argon2id":
		hasher = crypto.Argon2Hasher{Params: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		}}
	default:
		hasher = crypto.BcryptHasher{Cost: cfg.Password.Bcrypt.Cost}
	}

	return &AuthService{
		users:  users,
		hasher: hasher,
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// normalizeEmail applies the storage normalization: trim plus lowercase.
func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// Register creates a new account and issues a session token.
//
// Validation:
//   - name, email, password must be present and non-empty
//   - email must look like local@domain.tld
//   - password must be at least 6 characters
//
// Returns the token and the created user, or ErrInvalidInput /
// ErrAlreadyExists. The uniqueness race between two concurrent
// registrations is settled by the database unique constraint.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)

	if name == "" || email == "" || password == "" || !emailRe.MatchString(email) || len(password) < 6 {
		return "", models.User{}, serr.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", models.User{}, serr.ErrInternal
	}

	user, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		return "", models.User{}, err
	}

	token, err := crypto.NewAccessToken(user.ID.String(), user.Email, s.jwt)
	if err != nil {
		return "", models.User{}, serr.ErrInternal
	}

	return token, user, nil
}

// Login verifies credentials and issues a fresh session token.
//
// Behavior:
//   - an unknown email and a wrong password produce the same
//     ErrInvalidCredentials, so the response never reveals which
//   - verification is constant-time within the hashing scheme
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", models.User{}, serr.ErrInvalidInput
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return "", models.User{}, serr.ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", models.User{}, serr.ErrInternal
	}
	if !ok {
		return "", models.User{}, serr.ErrInvalidCredentials
	}

	token, err := crypto.NewAccessToken(user.ID.String(), user.Email, s.jwt)
	if err != nil {
		return "", models.User{}, serr.ErrInternal
	}

	return token, user, nil
}

// Me returns the account behind a verified token.
//
// The middleware accepts tokens without a database round trip, so this
// is where a deleted account surfaces: ErrNotFound when the row is
// gone even though the token is still formally valid.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return s.users.GetByID(ctx, userID)
}
