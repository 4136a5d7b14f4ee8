package main

import (
	"strconv"

	"github.com/gin-contrib/cors"

	"github.com/corpscope/corpscope/internal/configs"

	companiesRouter "github.com/corpscope/corpscope/internal/companies/route"
	healthRouter "github.com/corpscope/corpscope/internal/health/route"
	officersRouter "github.com/corpscope/corpscope/internal/officers/route"
	sandboxRepository "github.com/corpscope/corpscope/internal/sandbox/repository"
	sandboxRouter "github.com/corpscope/corpscope/internal/sandbox/route"

	"github.com/corpscope/corpscope/pkg/httpframework"
	"github.com/corpscope/corpscope/pkg/infra"
	"github.com/corpscope/corpscope/pkg/logger"
	"github.com/corpscope/corpscope/pkg/metric"
	"github.com/corpscope/corpscope/pkg/opencorporates"
	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Configs        configs.Configs
	DynamicConfigs configs.DynamicConfigs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

func (cfg *AppConfig) GetDynamicConfig() interface{} {
	return &cfg.DynamicConfigs
}

var (
	appConfig AppConfig
)

func main() {
	configs.InitConfig(&appConfig)

	// Initialize logger first (needed for logging)
	logger.Init(appConfig.Configs)

	// Database connections for the configured sandbox store backend
	infra.InitDBConnectors(appConfig.Configs)

	metric.Init(appConfig.Configs)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	httpframework.Init(cors.New(corsConfig))

	opencorporates.Init(appConfig.Configs)

	sandboxRepository.Init(appConfig.Configs)

	companiesRouter.Init()
	officersRouter.Init()
	sandboxRouter.Init()
	healthRouter.Init()

	// Use default port if not set (for local testing)
	port := appConfig.Configs.AppPort
	if port == 0 {
		port = 8080
		log.Warn().Int("port", port).Msg("App port not set, defaulting to 8080")
	}
	httpframework.Instance().Run(":" + strconv.Itoa(port))
}
