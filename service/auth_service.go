package service

import (
	"bank-admin-api/logger"
	"bank-admin-api/repository"
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks an admin username/password pair. Injected so the
// login path is testable and the credential source can change without
// touching the service.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// ConfigCredentialVerifier verifies against a single configured credential
// pair. The password is bcrypt-hashed at construction so the plaintext never
// sticks around in the running process.
type ConfigCredentialVerifier struct {
	username     string
	passwordHash []byte
}

func NewConfigCredentialVerifier(username, password string) (*ConfigCredentialVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash admin password")
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &ConfigCredentialVerifier{username: username, passwordHash: hash}, nil
}

func (v *ConfigCredentialVerifier) Verify(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
	return usernameMatch && passwordMatch
}

// AuthService issues and revokes opaque admin session tokens.
type AuthService struct {
	verifier    CredentialVerifier
	sessionRepo repository.ISessionRepository
	sessionTTL  time.Duration
}

func NewAuthService(verifier CredentialVerifier, sessionRepo repository.ISessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		verifier:    verifier,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

// SessionTTL reports the configured session lifetime, used for the cookie
// max-age so cookie and server-side expiry stay aligned.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Login verifies the credentials and, on success, stores and returns a fresh
// opaque session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if !s.verifier.Verify(username, password) {
		logger.Log.WithField("username", username).Warn("Rejected admin login attempt")
		return "", ErrInvalidCredentials
	}

	token, err := generateSessionToken()
	if err != nil {
		return "", err
	}

	if err := s.sessionRepo.Save(ctx, token, s.sessionTTL); err != nil {
		return "", fmt.Errorf("failed to store session token: %w", err)
	}

	logger.Log.WithField("username", username).Info("Admin login successful")
	return token, nil
}

// Logout invalidates a session token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

// Authenticate reports whether a session token is currently valid.
func (s *AuthService) Authenticate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	ok, err := s.sessionRepo.Exists(ctx, token)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to check session token")
		return false
	}
	return ok
}

func generateSessionToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		logger.Log.WithError(err).Error("Failed to generate session token")
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
