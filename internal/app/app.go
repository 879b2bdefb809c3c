// Package app wires configuration, storage, clients, and services into the
// shared application core used by cmd/lune-server.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lunehq/lune/internal/clients/gemini"
	"github.com/lunehq/lune/internal/clients/nominatim"
	"github.com/lunehq/lune/internal/common"
	"github.com/lunehq/lune/internal/interfaces"
	"github.com/lunehq/lune/internal/services/astrology"
	"github.com/lunehq/lune/internal/services/chat"
	"github.com/lunehq/lune/internal/storage"
)

// App holds all initialized services and clients.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Storage          interfaces.StorageManager
	GeocodingClient  interfaces.GeocodingClient
	GeminiClient     interfaces.GenerativeClient
	AstrologyService interfaces.AstrologyService
	ChatService      interfaces.ChatService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes all services, clients, and storage.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	// Get binary directory for self-contained operation
	binDir := getBinaryDir()

	// Load configuration - check provided path, LUNE_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("LUNE_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "lune.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/lune.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if config.Storage.Internal.Path != "" && !filepath.IsAbs(config.Storage.Internal.Path) {
		config.Storage.Internal.Path = filepath.Join(binDir, config.Storage.Internal.Path)
	}

	// Initialize logger
	logger := common.NewLogger(config.Logging.Level)

	// Initialize storage
	storageManager, err := storage.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	ctx := context.Background()
	store := storageManager.InternalStore()

	// Initialize geocoding client
	geocoder := nominatim.NewClient(
		nominatim.WithBaseURL(config.Clients.Nominatim.BaseURL),
		nominatim.WithUserAgent(config.Clients.Nominatim.UserAgent),
		nominatim.WithRateLimit(config.Clients.Nominatim.RateLimit),
		nominatim.WithTimeout(config.Clients.Nominatim.GetTimeout()),
		nominatim.WithLogger(logger),
	)

	// Resolve Gemini API key and initialize the generative client.
	// The interface stays nil when unavailable so downstream code falls
	// back to deterministic text.
	var geminiClient interfaces.GenerativeClient
	geminiKey, err := common.ResolveAPIKey(ctx, store, "gemini_api_key", config.Clients.Gemini.APIKey)
	if err != nil {
		logger.Warn().Msg("Gemini API key not configured - interpretations and chat will use fallback text")
	}
	if geminiKey != "" {
		client, err := gemini.NewClient(ctx, geminiKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client")
		} else {
			geminiClient = client
		}
	}

	// Initialize services
	astrologyService := astrology.NewService(storageManager, geocoder, geminiClient, logger)
	chatService := chat.NewService(storageManager, geminiClient, logger)

	a := &App{
		Config:           config,
		Logger:           logger,
		Storage:          storageManager,
		GeocodingClient:  geocoder,
		GeminiClient:     geminiClient,
		AstrologyService: astrologyService,
		ChatService:      chatService,
		StartupTime:      startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.GeminiClient != nil {
		if c, ok := a.GeminiClient.(*gemini.Client); ok {
			c.Close()
		}
	}
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}
