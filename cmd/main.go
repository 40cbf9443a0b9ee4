package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ydataai/search-service/internal/clients"
	"github.com/ydataai/search-service/internal/configurations"
	"github.com/ydataai/search-service/internal/controllers"
	"github.com/ydataai/search-service/internal/handlers"
	"github.com/ydataai/search-service/internal/services"
	"github.com/ydataai/search-service/internal/storages"

	coreClients "github.com/ydataai/go-core/pkg/common/clients"
	"github.com/ydataai/go-core/pkg/common/config"
	"github.com/ydataai/go-core/pkg/common/logging"
	"github.com/ydataai/go-core/pkg/common/server"
)

var (
	errChan = make(chan error)
)

func main() {
	loggerConfiguration := logging.LoggerConfiguration{}
	vaultClientConfiguration := coreClients.VaultClientConfiguration{}
	searchClientConfiguration := configurations.SearchClientConfiguration{}
	resultsCacheConfiguration := configurations.ResultsCacheConfiguration{}
	queryHistoryConfiguration := configurations.QueryHistoryConfiguration{}
	tokenServiceConfiguration := configurations.TokenServiceConfiguration{}
	oidcVerifierConfiguration := configurations.OIDCVerifierConfiguration{}
	cookieCredentialsHandlerConfiguration := configurations.CookieCredentialsHandlerConfiguration{}
	restConfiguration := configurations.RESTControllerConfiguration{}
	serverConfiguration := server.HTTPServerConfiguration{}

	if err := config.InitConfigurationVariables([]config.ConfigurationVariables{
		&loggerConfiguration,
		&vaultClientConfiguration,
		&searchClientConfiguration,
		&resultsCacheConfiguration,
		&queryHistoryConfiguration,
		&tokenServiceConfiguration,
		&oidcVerifierConfiguration,
		&cookieCredentialsHandlerConfiguration,
		&restConfiguration,
		&serverConfiguration,
	}); err != nil {
		fmt.Println(fmt.Errorf("[✖️] Could not set configuration variables. Err: %v", err))
		os.Exit(1)
	}

	logger := logging.NewLogger(loggerConfiguration)

	logger.Info("Starting: Repository Search Service")

	// The search API token can be set directly or fetched from Vault.
	if searchClientConfiguration.APIToken == "" && searchClientConfiguration.VaultTokenPath != "" {
		logger.Info("Configuring Vault access 📡")
		authenticator := coreClients.NewK8sAuthenticator()
		vaultClient, err := coreClients.NewVaultClient(logger, vaultClientConfiguration, "search-service-role", authenticator)
		if err != nil {
			logger.Fatal("Unable to configure Vault client 🤨. Err: ", err)
		}

		secretsService := services.NewSecretsService(logger, vaultClient)
		apiToken, err := secretsService.APIToken(
			searchClientConfiguration.VaultTokenPath,
			searchClientConfiguration.VaultTokenKey,
		)
		if err != nil {
			logger.Warnf("Running without a search API token. Err: %v", err)
		} else {
			searchClientConfiguration.APIToken = apiToken
		}
	}

	searchClient := clients.NewRESTSearchClient(logger, searchClientConfiguration)

	// Initializes a storage to cache search results configured with TTL.
	resultsCache := storages.NewResultsCache(resultsCacheConfiguration)

	queryHistory := newQueryHistory(logger, queryHistoryConfiguration)

	searchService := services.NewRepositorySearchService(logger, searchClient, resultsCache, queryHistory)

	// Gathering the Credentials Handler.
	headerCredentials := handlers.NewHeaderCredentialsHandler(logger, restConfiguration)
	cookieCredentials := handlers.NewCookieCredentialsHandler(logger, cookieCredentialsHandlerConfiguration)
	// preference is chosen here.
	credentials := []handlers.CredentialsHandler{
		headerCredentials,
		cookieCredentials,
	}

	tokenService, oidcTokenService := newTokenService(logger, restConfiguration,
		tokenServiceConfiguration, oidcVerifierConfiguration)

	restController := controllers.NewRESTController(logger, restConfiguration, searchService, credentials, tokenService)

	httpServer := server.NewServer(logger, serverConfiguration)
	restController.Boot(httpServer)

	// Run HTTP Server and start setup the search API client.
	setup := []func(){searchClient.StartSetup}
	if oidcTokenService != nil {
		setup = append(setup, oidcTokenService.StartSetup)
	}
	httpServer.Run(context.Background(), setup...)

	// HealthCheck
	httpServer.AddHealthz()
	httpServer.AddReadyz(searchClient.Ready)

	for err := range errChan {
		logger.Error(err)
	}
}

// newQueryHistory creates the query history for the configured driver.
func newQueryHistory(logger logging.Logger,
	configuration configurations.QueryHistoryConfiguration) storages.QueryHistory {

	if configuration.Driver == configurations.HistoryDriverPostgres {
		queryHistory, err := storages.NewPostgresQueryHistory(configuration)
		if err != nil {
			logger.Fatal("Unable to connect to the history database 🤨. Err: ", err)
		}
		logger.Info("Query history: PostgreSQL")
		return queryHistory
	}

	logger.Info("Query history: in-memory")
	return storages.NewMemoryQueryHistory(configuration)
}

// newTokenService creates the token service for the configured verifier.
// The OIDC service is returned separately so its setup can be scheduled.
func newTokenService(logger logging.Logger,
	restConfiguration configurations.RESTControllerConfiguration,
	tokenConfiguration configurations.TokenServiceConfiguration,
	oidcConfiguration configurations.OIDCVerifierConfiguration) (services.TokenService, *services.OIDCTokenService) {

	if !restConfiguration.AuthEnabled {
		return services.NewHMACTokenService(logger, tokenConfiguration), nil
	}

	if tokenConfiguration.Verifier == configurations.TokenVerifierOIDC {
		if oidcConfiguration.OIDProviderURL == "" || oidcConfiguration.ClientID == "" {
			logger.Fatal("OIDPROVIDER_URL and CLIENT_ID are required for the oidc verifier")
		}
		oidcTokenService := services.NewOIDCTokenService(logger, oidcConfiguration, tokenConfiguration)
		return oidcTokenService, oidcTokenService
	}

	if len(tokenConfiguration.HMACSecret) == 0 {
		logger.Fatal("HMAC_SECRET is required for the hmac verifier")
	}
	return services.NewHMACTokenService(logger, tokenConfiguration), nil
}
