package infra

import (
	"strings"
	"sync"

	"github.com/corpscope/corpscope/internal/configs"
)

var mut sync.Mutex

// InitDBConnectors opens the connections the configured sandbox store
// needs. The in-memory store needs none, so nothing is opened for it.
func InitDBConnectors(config configs.Configs) {
	mut.Lock()
	defer mut.Unlock()
	switch DBType(strings.ToLower(config.SandboxStoreType)) {
	case DBTypeMySQL:
		if SQL == nil {
			initSQLConns()
		}
	case DBTypeScylla:
		if Scylla == nil {
			initScyllaClusterConns()
		}
	}
}
