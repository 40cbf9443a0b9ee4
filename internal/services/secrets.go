package services

import (
	"fmt"

	coreClients "github.com/ydataai/go-core/pkg/common/clients"
	"github.com/ydataai/go-core/pkg/common/logging"
)

// VaultData defines the payload stored at a Vault path.
type VaultData map[string]interface{}

// SecretsService defines a secrets service struct.
type SecretsService struct {
	logger      logging.Logger
	vaultClient *coreClients.VaultClient
}

// NewSecretsService defines a new SecretsService.
func NewSecretsService(logger logging.Logger, vaultClient *coreClients.VaultClient) SecretsService {
	return SecretsService{
		logger:      logger,
		vaultClient: vaultClient,
	}
}

// Get returns data from the Vault.
func (ss SecretsService) Get(path string) (VaultData, error) {
	return ss.vaultClient.Get(path)
}

// APIToken reads the search API token stored at the given Vault path.
func (ss SecretsService) APIToken(path, key string) (string, error) {
	data, err := ss.Get(path)
	if err != nil {
		return "", err
	}

	token, ok := data[key].(string)
	if !ok {
		return "", fmt.Errorf("no %q secret found at %s", key, path)
	}

	return token, nil
}
