package infra

import (
	"errors"

	"github.com/gocql/gocql"
	"github.com/rs/zerolog/log"
)

var (
	Scylla *ScyllaConnectors
)

type ScyllaClusterConnection struct {
	Session *gocql.Session
	Meta    map[string]interface{}
}

func (c *ScyllaClusterConnection) GetConn() (interface{}, error) {
	if c.Session == nil || c.Session.Closed() {
		return nil, errors.New("connection nil or closed")
	}
	return c.Session, nil
}

func (c *ScyllaClusterConnection) GetMeta() (map[string]interface{}, error) {
	if c.Meta == nil {
		return nil, errors.New("meta nil")
	}
	return c.Meta, nil
}

func (c *ScyllaClusterConnection) IsLive() bool {
	return !c.Session.Closed()
}

type ScyllaConnectors struct {
	ScyllaConnection ConnectionFacade
}

func (s *ScyllaConnectors) GetConnection() (ConnectionFacade, error) {
	if s.ScyllaConnection == nil {
		return nil, errors.New("connection not found")
	}
	return s.ScyllaConnection, nil
}

func initScyllaClusterConns() {
	cfg, err := BuildClusterConfigFromEnv()
	if err != nil {
		log.Error().Err(err).Msg("Error building scylla cluster config")
		panic(err)
	}
	session, err := cfg.CreateSession()
	if err != nil {
		log.Error().Err(err).Msg("Error connecting scylla db")
		panic(err)
	}
	conn := &ScyllaClusterConnection{
		Session: session,
		Meta: map[string]interface{}{
			"keyspace": cfg.Keyspace,
			"type":     DBTypeScylla,
		},
	}
	Scylla = &ScyllaConnectors{
		ScyllaConnection: conn,
	}
}
