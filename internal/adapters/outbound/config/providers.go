package config

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/config"
)

// disabled is the value that switches an optional provider off.
const disabled = "-"

// InitConfigProviders registers the global config provider. Environment
// variables always win, followed by the optional config file and the optional
// Vault secret.
type InitConfigProviders struct {
	ConfigFile      string `config:"RESONA_CONFIG_FILE" default:"-"`
	VaultServer     string `config:"VAULT_ADDR" default:"-"`
	VaultToken      string `config:"VAULT_TOKEN" default:"-"`
	VaultMountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	VaultSecretPath string `config:"VAULT_SECRET_PATH" default:"resona"`
}

// Initialize builds the composite provider and sets it as the global config provider.
func (icp InitConfigProviders) Initialize(ctx context.Context) (context.Context, error) {
	provider, err := icp.Provider()
	if err != nil {
		return ctx, err
	}
	config.SetGlobalProvider(provider)
	return ctx, nil
}

// Provider builds the composite provider without installing it.
func (icp InitConfigProviders) Provider() (config.Provider, error) {
	providers := []config.Provider{config.EnvVarProvider{}}

	if icp.ConfigFile != disabled && icp.ConfigFile != "" {
		fileProvider, err := NewFileProvider(icp.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file provider: %w", err)
		}
		providers = append(providers, fileProvider)
	}

	if icp.VaultServer != disabled && icp.VaultServer != "" {
		vaultProvider, err := NewVaultProvider(icp.VaultServer, icp.VaultToken, icp.VaultMountPath, icp.VaultSecretPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Vault provider: %w", err)
		}
		providers = append(providers, vaultProvider)
	}

	return config.NewCompositeProvider(providers...), nil
}
