package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadforgehq/thread-generator-backend/internal/models"
)

type memoryKeyStore struct {
	keys map[string]*models.APIKey
}

func newMemoryKeyStore() *memoryKeyStore {
	return &memoryKeyStore{keys: make(map[string]*models.APIKey)}
}

func (m *memoryKeyStore) Create(apiKey *models.APIKey) error {
	m.keys[apiKey.Prefix] = apiKey
	return nil
}

func (m *memoryKeyStore) GetByPrefix(prefix string) (*models.APIKey, error) {
	return m.keys[prefix], nil
}

func (m *memoryKeyStore) UpdateLastUsed(id string) error {
	for _, key := range m.keys {
		if key.ID == id {
			now := time.Now()
			key.LastUsedAt = &now
		}
	}
	return nil
}

func (m *memoryKeyStore) Count() (int64, error) {
	return int64(len(m.keys)), nil
}

func newTestAuthService(store APIKeyStore) *AuthService {
	return &AuthService{
		keys:           store,
		jwtSecret:      []byte("test-secret"),
		accessTokenTTL: time.Minute,
	}
}

func TestIssueAndValidateAPIKey(t *testing.T) {
	store := newMemoryKeyStore()
	service := newTestAuthService(store)

	plaintext, apiKey, err := service.IssueAPIKey("test")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plaintext, "tg_"))
	assert.Equal(t, plaintext[:keyPrefixLen], apiKey.Prefix)
	// Plaintext never stored
	assert.NotContains(t, apiKey.KeyHash, plaintext)

	validated, err := service.ValidateAPIKey(plaintext)
	require.NoError(t, err)
	assert.Equal(t, apiKey.ID, validated.ID)
	assert.NotNil(t, store.keys[apiKey.Prefix].LastUsedAt)
}

func TestValidateAPIKeyRejectsWrongKey(t *testing.T) {
	store := newMemoryKeyStore()
	service := newTestAuthService(store)

	plaintext, _, err := service.IssueAPIKey("test")
	require.NoError(t, err)

	// Same prefix, different suffix
	wrong := plaintext[:keyPrefixLen] + strings.Repeat("0", len(plaintext)-keyPrefixLen)
	_, err = service.ValidateAPIKey(wrong)
	assert.Error(t, err)

	_, err = service.ValidateAPIKey("tg_unknown")
	assert.Error(t, err)

	_, err = service.ValidateAPIKey("short")
	assert.Error(t, err)
}

func TestValidateAPIKeyRejectsInactive(t *testing.T) {
	store := newMemoryKeyStore()
	service := newTestAuthService(store)

	plaintext, apiKey, err := service.IssueAPIKey("test")
	require.NoError(t, err)

	store.keys[apiKey.Prefix].IsActive = false

	_, err = service.ValidateAPIKey(plaintext)
	assert.Error(t, err)
}

func TestTokenRoundtrip(t *testing.T) {
	store := newMemoryKeyStore()
	service := newTestAuthService(store)

	plaintext, apiKey, err := service.IssueAPIKey("test")
	require.NoError(t, err)

	tokenResp, err := service.IssueToken(plaintext)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tokenResp.TokenType)
	assert.Equal(t, int64(60), tokenResp.ExpiresIn)

	info, err := service.ValidateToken(tokenResp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, apiKey.ID, info.KeyID)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	store := newMemoryKeyStore()
	service := newTestAuthService(store)
	service.accessTokenTTL = -time.Minute

	plaintext, _, err := service.IssueAPIKey("test")
	require.NoError(t, err)

	tokenResp, err := service.IssueToken(plaintext)
	require.NoError(t, err)

	_, err = service.ValidateToken(tokenResp.AccessToken)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	store := newMemoryKeyStore()
	service := newTestAuthService(store)

	plaintext, _, err := service.IssueAPIKey("test")
	require.NoError(t, err)

	tokenResp, err := service.IssueToken(plaintext)
	require.NoError(t, err)

	other := newTestAuthService(store)
	other.jwtSecret = []byte("different-secret")

	_, err = other.ValidateToken(tokenResp.AccessToken)
	assert.Error(t, err)
}

func TestBootstrapAPIKey(t *testing.T) {
	store := newMemoryKeyStore()
	service := newTestAuthService(store)

	plaintext, err := service.BootstrapAPIKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plaintext, "tg_"))

	// Second call is a no-op once a key exists
	second, err := service.BootstrapAPIKey()
	require.NoError(t, err)
	assert.Empty(t, second)
}
