package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/threadforgehq/thread-generator-backend/internal/models"
)

// Keys look like "tg_<32 hex chars>". The prefix (tg_ plus the first 8 hex
// chars) is stored in clear for lookup; the full key only as a bcrypt hash.
const (
	keyPrefixLen = 11
	keyRandBytes = 16
)

// APIKeyStore is the persistence surface the auth service needs
type APIKeyStore interface {
	Create(apiKey *models.APIKey) error
	GetByPrefix(prefix string) (*models.APIKey, error)
	UpdateLastUsed(id string) error
	Count() (int64, error)
}

// TokenInfo is the validated content of a bearer token
type TokenInfo struct {
	KeyID string
}

type tokenClaims struct {
	KeyID string `json:"key_id"`
	jwt.RegisteredClaims
}

// AuthService issues and validates API keys and bearer tokens
type AuthService struct {
	keys           APIKeyStore
	jwtSecret      []byte
	accessTokenTTL time.Duration
}

// NewAuthService creates the auth service from environment config
func NewAuthService(keys APIKeyStore) *AuthService {
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		jwtSecret = []byte("default-secret-key-change-in-production")
		logrus.Warn("JWT_SECRET not set, using default secret")
	}

	accessTokenTTL := 15 * time.Minute
	if ttl := os.Getenv("ACCESS_TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			accessTokenTTL = parsed
		}
	}

	return &AuthService{
		keys:           keys,
		jwtSecret:      jwtSecret,
		accessTokenTTL: accessTokenTTL,
	}
}

// IssueAPIKey creates a new API key and returns the plaintext exactly once
func (s *AuthService) IssueAPIKey(name string) (string, *models.APIKey, error) {
	randBytes := make([]byte, keyRandBytes)
	if _, err := rand.Read(randBytes); err != nil {
		return "", nil, fmt.Errorf("failed to generate key material: %w", err)
	}

	plaintext := "tg_" + hex.EncodeToString(randBytes)

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash API key: %w", err)
	}

	apiKey := &models.APIKey{
		ID:       uuid.NewString(),
		Name:     name,
		Prefix:   plaintext[:keyPrefixLen],
		KeyHash:  string(hash),
		IsActive: true,
	}

	if err := s.keys.Create(apiKey); err != nil {
		return "", nil, fmt.Errorf("failed to store API key: %w", err)
	}

	return plaintext, apiKey, nil
}

// ValidateAPIKey checks a plaintext key against the stored hash
func (s *AuthService) ValidateAPIKey(key string) (*models.APIKey, error) {
	if len(key) < keyPrefixLen {
		return nil, errors.New("invalid API key")
	}

	apiKey, err := s.keys.GetByPrefix(key[:keyPrefixLen])
	if err != nil {
		return nil, fmt.Errorf("failed to look up API key: %w", err)
	}
	if apiKey == nil || !apiKey.IsActive {
		return nil, errors.New("invalid API key")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(apiKey.KeyHash), []byte(key)); err != nil {
		return nil, errors.New("invalid API key")
	}

	if err := s.keys.UpdateLastUsed(apiKey.ID); err != nil {
		logrus.Warnf("Failed to update last_used_at for API key %s: %v", apiKey.ID, err)
	}

	return apiKey, nil
}

// IssueToken exchanges a valid API key for a short-lived JWT
func (s *AuthService) IssueToken(key string) (*models.TokenResponse, error) {
	apiKey, err := s.ValidateAPIKey(key)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	claims := tokenClaims{
		KeyID: apiKey.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTokenTTL.Seconds()),
	}, nil
}

// ValidateToken parses and verifies a bearer token
func (s *AuthService) ValidateToken(tokenString string) (*TokenInfo, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return &TokenInfo{KeyID: claims.KeyID}, nil
}

// BootstrapAPIKey creates an initial key when none exist yet and returns its
// plaintext so the operator can read it from the startup log
func (s *AuthService) BootstrapAPIKey() (string, error) {
	count, err := s.keys.Count()
	if err != nil {
		return "", fmt.Errorf("failed to count API keys: %w", err)
	}
	if count > 0 {
		return "", nil
	}

	plaintext, _, err := s.IssueAPIKey("bootstrap")
	if err != nil {
		return "", err
	}
	return plaintext, nil
}
