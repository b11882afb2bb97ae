package config

import (
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_MissingPostgresBlock(t *testing.T) {
	err := applyDefaults(&Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres config missing")
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{Postgres: &postgres.DBConn{}}

	require.NoError(t, applyDefaults(cfg))

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultQueryTimeout, cfg.Auth.QueryTimeout)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Postgres: &postgres.DBConn{},
		Auth:     &AuthConfig{BcryptCost: 10, QueryTimeout: defaultQueryTimeout * 2},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	require.NoError(t, applyDefaults(cfg))

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultQueryTimeout*2, cfg.Auth.QueryTimeout)
}
