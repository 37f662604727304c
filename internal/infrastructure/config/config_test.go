package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, ":3000", cfg.Server.Addr())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./books.db", cfg.Database.Path)
	assert.Equal(t, "./books.json", cfg.Seed.Path)
	assert.True(t, cfg.Seed.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.MQ.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Redis.NameTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 8081
  mode: debug
database:
  driver: sqlite
  path: /tmp/catalog-test.db
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("CATALOG_SEED_ENABLED", "false")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "/tmp/catalog-test.db", cfg.Database.Path)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoad_EnvSpecificFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.prod.yaml"), []byte("server:\n  port: 9000\n"), 0o644))

	t.Setenv("CATALOG_ENV", "prod")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"端口越界":  "server:\n  port: 70000\n",
		"未知驱动":  "database:\n  driver: oracle\n",
		"未知日志级别": "log:\n  level: chatty\n",
	}

	for name, yaml := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

			_, err := LoadFrom(dir)
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	sqlite := DatabaseConfig{Driver: "sqlite", Path: "./books.db"}
	assert.Equal(t, "file:./books.db?_foreign_keys=on&_busy_timeout=5000", sqlite.DSN())

	mysql := DatabaseConfig{
		Driver: "mysql", User: "root", Password: "pw", Host: "db", Port: 3306,
		DBName: "catalog", Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai",
	}
	assert.Equal(t, "root:pw@tcp(db:3306)/catalog?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai", mysql.DSN())
}
