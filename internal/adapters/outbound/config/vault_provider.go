package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// defaultVaultCacheTTL bounds how long a KV secret is reused before being read again.
const defaultVaultCacheTTL = time.Minute

// VaultProvider provides configuration values from a HashiCorp Vault KV v2 secret.
// The whole secret is read once and reused for cacheTTL.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	cacheTTL   time.Duration
	cache      *secretCache
}

type secretCache struct {
	mu       sync.Mutex
	data     map[string]any
	loadedAt time.Time
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The token is the Vault authentication token.
// The mountPath is the mount point for the KV secrets engine (e.g., "secret").
// The secretPath is the path to the secret within the mount (e.g., "resona").
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	if server == "" {
		return VaultProvider{}, fmt.Errorf("server is required")
	}
	if token == "" {
		return VaultProvider{}, fmt.Errorf("token is required")
	}
	if mountPath == "" {
		return VaultProvider{}, fmt.Errorf("mountPath is required")
	}
	if secretPath == "" {
		return VaultProvider{}, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		cacheTTL:   defaultVaultCacheTTL,
		cache:      &secretCache{},
	}, nil
}

// Get retrieves a configuration value from the secret.
// Returns an error if the secret or key is not found.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.secretData(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case float64, bool, int, int64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("vault secret key %s is not a scalar value", key)
	}
}

func (vp VaultProvider) secretData(ctx context.Context) (map[string]any, error) {
	vp.cache.mu.Lock()
	defer vp.cache.mu.Unlock()

	if vp.cache.data != nil && time.Since(vp.cache.loadedAt) < vp.cacheTTL {
		return vp.cache.data, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	vp.cache.data = secret.Data
	vp.cache.loadedAt = time.Now()
	return secret.Data, nil
}

// Ensure VaultProvider implements config.Provider interface.
var _ config.Provider = (*VaultProvider)(nil)
