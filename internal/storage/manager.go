// Package storage provides the top-level StorageManager that coordinates
// the storage areas. Lune uses a single internal area for accounts, birth
// profiles, and key-value state.
package storage

import (
	"fmt"

	"github.com/lunehq/lune/internal/common"
	"github.com/lunehq/lune/internal/interfaces"
	"github.com/lunehq/lune/internal/storage/internaldb"
)

// Manager implements interfaces.StorageManager.
type Manager struct {
	internal *internaldb.Store
	dataPath string
	logger   *common.Logger
}

// NewManager creates a new StorageManager.
func NewManager(logger *common.Logger, config *common.Config) (*Manager, error) {
	internalStore, err := internaldb.NewStore(logger, config.Storage.Internal.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create internal store: %w", err)
	}

	logger.Info().
		Str("internal", config.Storage.Internal.Path).
		Msg("Storage manager initialized")

	return &Manager{
		internal: internalStore,
		dataPath: config.Storage.Internal.Path,
		logger:   logger,
	}, nil
}

func (m *Manager) InternalStore() interfaces.InternalStore {
	return m.internal
}

func (m *Manager) DataPath() string {
	return m.dataPath
}

// Close shuts down all storage areas.
func (m *Manager) Close() error {
	if m.internal != nil {
		return m.internal.Close()
	}
	return nil
}
