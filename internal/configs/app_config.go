package configs

type Configs struct {
	// App configuration
	AppName               string  `mapstructure:"app_name"`
	AppEnv                string  `mapstructure:"app_env"`
	AppLogLevel           string  `mapstructure:"app_log_level"`
	AppMetricSamplingRate float64 `mapstructure:"app_metric_sampling_rate"`
	AppPort               int     `mapstructure:"app_port"`

	// Telegraf (statsd) configuration
	TelegrafHostPort string `mapstructure:"telegraf_host_port"`

	// OpenCorporates configuration
	OpenCorporatesBaseUrl     string `mapstructure:"opencorporates_base_url"`
	OpenCorporatesApiToken    string `mapstructure:"opencorporates_api_token"`
	OpenCorporatesTimeoutInMs int    `mapstructure:"opencorporates_timeout_in_ms"`

	// Sandbox store configuration
	SandboxStoreType string `mapstructure:"sandbox_store_type"`

	// MySQL configuration
	MysqlDbName         string `mapstructure:"mysql_db_name"`
	MysqlMasterHost     string `mapstructure:"mysql_master_host"`
	MysqlMasterPassword string `mapstructure:"mysql_master_password"`
	MysqlMasterPort     int    `mapstructure:"mysql_master_port"`
	MysqlMasterUsername string `mapstructure:"mysql_master_username"`
	MysqlSlaveHost      string `mapstructure:"mysql_slave_host"`
	MysqlSlavePassword  string `mapstructure:"mysql_slave_password"`
	MysqlSlavePort      int    `mapstructure:"mysql_slave_port"`
	MysqlSlaveUsername  string `mapstructure:"mysql_slave_username"`

	// Scylla configuration
	ScyllaContactPoints string `mapstructure:"scylla_contact_points"`
	ScyllaPort          int    `mapstructure:"scylla_port"`
	ScyllaKeyspace      string `mapstructure:"scylla_keyspace"`
	ScyllaUsername      string `mapstructure:"scylla_username"`
	ScyllaPassword      string `mapstructure:"scylla_password"`
	ScyllaTimeoutInMs   int    `mapstructure:"scylla_timeout_in_ms"`
}

type DynamicConfigs struct{}
