package repository

import (
	"strings"
	"sync"

	"github.com/corpscope/corpscope/internal/configs"
	"github.com/corpscope/corpscope/pkg/infra"
	"github.com/rs/zerolog/log"
)

var (
	repo Repository
	once sync.Once
)

// Init selects the sandbox store backend from SANDBOX_STORE_TYPE. The
// in-memory store is the default.
func Init(config configs.Configs) {
	once.Do(func() {
		storeType := strings.ToLower(config.SandboxStoreType)
		switch storeType {
		case string(infra.DBTypeMySQL):
			connection, err := infra.SQL.GetConnection()
			if err != nil {
				log.Panic().Err(err).Msg("Error getting mysql connection for sandbox store")
			}
			repo, err = NewSQLStore(connection.(*infra.SQLConnection))
			if err != nil {
				log.Panic().Err(err).Msg("Error creating sandbox mysql store")
			}
		case string(infra.DBTypeScylla):
			connection, err := infra.Scylla.GetConnection()
			if err != nil {
				log.Panic().Err(err).Msg("Error getting scylla connection for sandbox store")
			}
			repo, err = NewScyllaStore(connection.(*infra.ScyllaClusterConnection))
			if err != nil {
				log.Panic().Err(err).Msg("Error creating sandbox scylla store")
			}
		default:
			storeType = "memory"
			repo = NewMemoryStore()
		}
		log.Info().Msgf("Sandbox store initialized, backend: %s", storeType)
	})
}

// GetRepository returns the sandbox store selected during Init.
func GetRepository() Repository {
	if repo == nil {
		log.Fatal().Msg("Sandbox store is not initialized")
	}
	return repo
}
