package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kitaplik/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL is the lifetime of an issued session token (and of the cookie
// that carries it). There is no server-side revocation beyond expiry.
const sessionTTL = 24 * time.Hour

// Domain errors for auth flows.
var (
	// ErrEmptyCredentials rejects blank (after trimming) username or password.
	ErrEmptyCredentials = errors.New("username and password must not be empty")
	// ErrInvalidCredentials is returned uniformly for unknown username and
	// wrong password, so the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken means registration hit the UNIQUE constraint.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidSession means the session token failed to parse or verify.
	ErrInvalidSession = errors.New("invalid session token")
)

// SessionUser is the identity carried by a valid session token.
type SessionUser struct {
	ID       int
	Username string
}

// AuthService handles user registration, login and session tokens.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
}

// NewAuthService constructs the auth service. The signing key comes from
// configuration; it is never compiled into the binary.
func NewAuthService(repo repository.Authorization, signingKey []byte) *AuthService {
	return &AuthService{authRepo: repo, signingKey: signingKey}
}

// Claims defines the session JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

// SignUp creates a new user and returns a session token for it. The INSERT is
// the uniqueness check; a duplicate username fails without mutating state.
func (s *AuthService) SignUp(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", ErrEmptyCredentials
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id, err := s.authRepo.Create(username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return "", ErrUsernameTaken
		}
		return "", err
	}

	return s.issueSession(id, username)
}

// SignIn validates credentials and returns a session token.
func (s *AuthService) SignIn(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", ErrEmptyCredentials
	}

	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueSession(u.ID, u.Username)
}

// ParseSession parses the session token and returns the authenticated user.
func (s *AuthService) ParseSession(token string) (SessionUser, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return SessionUser{}, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return SessionUser{}, ErrInvalidSession
	}

	return SessionUser{ID: claims.UserID, Username: claims.Username}, nil
}

// ListUsernames returns all registered usernames (admin/debug listing).
func (s *AuthService) ListUsernames() ([]string, error) {
	return s.authRepo.ListUsernames()
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed session token for a user
func (s *AuthService) issueSession(userID int, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   userID,
		Username: username,
	})
	return token.SignedString(s.signingKey)
}
