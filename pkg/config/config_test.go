package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "postgres://postgres:@localhost:5432/gestorpro?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_PORT", "6543")
	v.Set("DB_PASSWORD", "F&rr@dura")
	v.Set("HTTP_PORT", 9090)
	v.Set("LOG_FILE", "/tmp/gestorpro.log")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "/tmp/gestorpro.log", cfg.Log.File)
	// la contraseña viaja codificada en el DSN
	assert.Contains(t, cfg.DB.DSN(), "F&rr%40dura")
}

func TestFromViper_DatabaseURLTienePrioridad(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x?sslmode=require")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/x?sslmode=require", cfg.DB.ConnectionString())
}

func TestFromViper_PuertoInvalido(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "0")

	_, err := fromViper(v)
	assert.Error(t, err)
}
