package infra

import (
	"errors"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/spf13/viper"
)

const (
	contactPointsKey  = "SCYLLA_CONTACT_POINTS"
	portKey           = "SCYLLA_PORT"
	keyspaceKey       = "SCYLLA_KEYSPACE"
	timeoutKey        = "SCYLLA_TIMEOUT_IN_MS"
	connectTimeoutKey = "SCYLLA_CONNECT_TIMEOUT_IN_MS"
	numConnsKey       = "SCYLLA_NUM_CONNS"
	usernameKey       = "SCYLLA_USERNAME"
	passwordKey       = "SCYLLA_PASSWORD"
)

// BuildClusterConfigFromEnv constructs a ScyllaDB cluster configuration
// from environment variables.
//
// Mandatory environment variables:
//   - SCYLLA_CONTACT_POINTS: Comma-separated list of Scylla nodes
//   - SCYLLA_PORT: Scylla port
//   - SCYLLA_KEYSPACE: Keyspace to connect to
//
// Optional environment variables:
//   - SCYLLA_TIMEOUT_IN_MS: Request timeout (milliseconds)
//   - SCYLLA_CONNECT_TIMEOUT_IN_MS: Connection timeout (milliseconds)
//   - SCYLLA_NUM_CONNS: Number of connections per host
//   - SCYLLA_USERNAME, SCYLLA_PASSWORD: Password authentication
func BuildClusterConfigFromEnv() (*gocql.ClusterConfig, error) {
	if !viper.IsSet(contactPointsKey) {
		return nil, errors.New(contactPointsKey + " not set")
	}
	hosts := strings.Split(viper.GetString(contactPointsKey), ",")

	cfg := gocql.NewCluster(hosts...)

	if !viper.IsSet(portKey) {
		return nil, errors.New(portKey + " not set")
	}
	cfg.Port = viper.GetInt(portKey)

	if !viper.IsSet(keyspaceKey) {
		return nil, errors.New(keyspaceKey + " not set")
	}
	cfg.Keyspace = viper.GetString(keyspaceKey)

	if viper.IsSet(timeoutKey) {
		cfg.Timeout = time.Duration(viper.GetInt(timeoutKey)) * time.Millisecond
	}
	if viper.IsSet(connectTimeoutKey) {
		cfg.ConnectTimeout = time.Duration(viper.GetInt(connectTimeoutKey)) * time.Millisecond
	}
	if viper.IsSet(numConnsKey) {
		cfg.NumConns = viper.GetInt(numConnsKey)
	}
	if viper.IsSet(usernameKey) && viper.IsSet(passwordKey) {
		cfg.Authenticator = gocql.PasswordAuthenticator{
			Username: viper.GetString(usernameKey),
			Password: viper.GetString(passwordKey),
		}
	}
	return cfg, nil
}
