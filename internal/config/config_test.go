package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(SecretKeyEnv, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 10*time.Second, cfg.Store.WriteTimeout)
	assert.Empty(t, cfg.Auth.SecretKey)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labelhook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
  read_timeout: 5s
auth:
  secret_key: from-file
store:
  driver: redis
  redis_addr: redis:6379
  write_timeout: 2s
logging:
  level: debug
  format: console
`), 0o644))

	t.Setenv(SecretKeyEnv, "from-env")
	t.Setenv("LABELHOOK_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "from-env", cfg.Auth.SecretKey)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "redis:6379", cfg.Store.RedisAddr)
	assert.Equal(t, 2*time.Second, cfg.Store.WriteTimeout)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [1, 2"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"port":          func(c *Config) { c.Server.Port = 0 },
		"zero shutdown": func(c *Config) { c.Server.ShutdownTimeout = 0 },
		"driver":        func(c *Config) { c.Store.Driver = "firebase" },
		"sqlite path":   func(c *Config) { c.Store.Path = "" },
		"redis addr":    func(c *Config) { c.Store.Driver = "redis"; c.Store.RedisAddr = "" },
		"write timeout": func(c *Config) { c.Store.WriteTimeout = -time.Second },
		"log level":     func(c *Config) { c.Logging.Level = "trace" },
		"log format":    func(c *Config) { c.Logging.Format = "xml" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaults()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
