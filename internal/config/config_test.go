package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/monster-maker/internal/config"
	"github.com/KirkDiggler/monster-maker/internal/errors"
	"github.com/KirkDiggler/monster-maker/internal/workspace"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(viper.New(), "")
	s.Require().NoError(err)

	s.Equal(":3232", cfg.HTTP.Addr)
	s.Equal(":50051", cfg.Ops.Addr)
	s.Empty(cfg.Redis.Addr)
	s.Equal("assets", cfg.Assets.Dir)
	s.Empty(cfg.Static.Dir, "no front end unless one is configured")
	s.Equal(workspace.PolicyGlobal, cfg.Workspace.Eligibility)
	s.Equal(1.0, cfg.Workspace.PointerScale)
	s.Equal(2*time.Hour, cfg.Workspace.SessionTTL)
	s.Equal(int64(32), cfg.Catalog.CacheMB)
	s.Equal(30*time.Second, cfg.HTTP.ShutdownTimeout)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("MONSTER_HTTP_ADDR", ":8080")
	s.T().Setenv("MONSTER_WORKSPACE_ELIGIBILITY", "per-source")
	s.T().Setenv("MONSTER_REDIS_ADDR", "localhost:6379")

	cfg, err := config.Load(viper.New(), "")
	s.Require().NoError(err)

	s.Equal(":8080", cfg.HTTP.Addr)
	s.Equal(workspace.PolicyPerSource, cfg.Workspace.Eligibility)
	s.Equal("localhost:6379", cfg.Redis.Addr)
}

func (s *ConfigTestSuite) TestEnvFile() {
	env := s.write(".env", "MONSTER_ASSETS_DIR=/srv/assets\n")
	s.T().Setenv("MONSTER_ASSETS_DIR", "")
	s.Require().NoError(os.Unsetenv("MONSTER_ASSETS_DIR"))

	cfg, err := config.Load(viper.New(), "", env, filepath.Join(s.dir, "missing.env"))
	s.Require().NoError(err)

	s.Equal("/srv/assets", cfg.Assets.Dir)
}

func (s *ConfigTestSuite) TestConfigFile() {
	file := s.write("monster.yaml", "log:\n  level: debug\n  format: json\ncatalog:\n  cache_mb: 8\n")

	cfg, err := config.Load(viper.New(), file)
	s.Require().NoError(err)

	s.Equal("debug", cfg.Log.Level)
	s.Equal("json", cfg.Log.Format)
	s.Equal(int64(8), cfg.Catalog.CacheMB)
}

func (s *ConfigTestSuite) TestValidationFailures() {
	file := s.write("bad.yaml", "workspace:\n  eligibility: anything\n  pointer_scale: 0\n  session_ttl: -1m\n")

	_, err := config.Load(viper.New(), file)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "workspace.eligibility")
	s.Contains(err.Error(), "workspace.pointer_scale")
	s.Contains(err.Error(), "workspace.session_ttl")
}
