package app

import (
	"context"
	"testing"

	"taxpro-backend/internal/cache"
	"taxpro-backend/internal/config"
	"taxpro-backend/internal/llm"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNewClientsWithoutOptionalIntegrations(t *testing.T) {
	clients, err := NewClients(context.Background(), &config.Config{MediaDir: t.TempDir()})
	require.NoError(t, err)
	defer clients.Close()

	assert.IsType(t, cache.Noop{}, clients.Cache)
	assert.IsType(t, llm.Disabled{}, clients.Generator)
	assert.False(t, clients.Mailer.Enabled())
	assert.False(t, clients.SMS.Enabled())
	assert.NotEmpty(t, clients.Tiers)
	assert.NotNil(t, clients.Metrics)
}

func TestNewClientsBadTierFile(t *testing.T) {
	_, err := NewClients(context.Background(), &config.Config{CommissionTiersFile: "/does/not/exist.yaml"})
	assert.Error(t, err)
}

func TestNewServices(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret", SEOBatchSize: 5}
	clients, err := NewClients(context.Background(), cfg)
	require.NoError(t, err)

	services, err := NewServices(db, cfg, clients)
	require.NoError(t, err)
	assert.NotNil(t, services.Auth)
	assert.NotNil(t, services.Leads)
	assert.NotNil(t, services.Payments)
	assert.NotNil(t, services.Seo)

	t.Run("missing jwt secret", func(t *testing.T) {
		_, err := NewServices(db, &config.Config{}, clients)
		assert.Error(t, err)
	})
}
