package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/zombiedice/internal/models"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	fs *flag.FlagSet
}

func (s *ConfigTestSuite) SetupTest() {
	s.fs = flag.NewFlagSet("zombiedice", flag.ContinueOnError)
	s.fs.SetOutput(io.Discard)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load(s.fs, nil)
	s.Require().NoError(err)

	s.Equal(int64(0), cfg.Seed)
	s.Empty(cfg.RedisAddr)
	s.Equal(24*time.Hour, cfg.TTL)
	s.Equal(100, cfg.MaxRounds)

	rules, err := cfg.Rules()
	s.Require().NoError(err)
	s.Equal(models.DefaultRules(), rules)
}

func (s *ConfigTestSuite) TestEnvironment() {
	s.T().Setenv("ZOMBIEDICE_SEED", "42")
	s.T().Setenv("ZOMBIEDICE_REDIS_ADDR", "localhost:6379")
	s.T().Setenv("ZOMBIEDICE_TTL", "1h")
	s.T().Setenv("ZOMBIEDICE_TARGET_SCORE", "20")
	s.T().Setenv("ZOMBIEDICE_TIE_BREAK", "single_round")

	cfg, err := Load(s.fs, nil)
	s.Require().NoError(err)
	s.Equal(int64(42), cfg.Seed)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(time.Hour, cfg.TTL)

	rules, err := cfg.Rules()
	s.Require().NoError(err)
	s.Equal(20, rules.TargetScore)
	s.Equal(models.TieBreakSingleRound, rules.TieBreak)
}

func (s *ConfigTestSuite) TestFlagsOverrideEnvironment() {
	s.T().Setenv("ZOMBIEDICE_SEED", "42")

	cfg, err := Load(s.fs, []string{"-seed", "7", "-redis", "redis:6379", "-no-color"})
	s.Require().NoError(err)
	s.Equal(int64(7), cfg.Seed)
	s.Equal("redis:6379", cfg.RedisAddr)
	s.True(cfg.NoColor)
}

func (s *ConfigTestSuite) TestInvalidEnvironment() {
	s.T().Setenv("ZOMBIEDICE_SEED", "not-a-number")

	_, err := Load(s.fs, nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "parse env:")
}

func (s *ConfigTestSuite) TestInvalidRules() {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown tie-break", mutate: func(c *Config) { c.TieBreak = "coin_flip" }},
		{name: "cup smaller than a roll", mutate: func(c *Config) { c.GreenDice, c.YellowDice, c.RedDice = 1, 0, 0 }},
		{name: "zero target", mutate: func(c *Config) { c.TargetScore = 0 }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := Load(flag.NewFlagSet("zombiedice", flag.ContinueOnError), nil)
			s.Require().NoError(err)
			tc.mutate(&cfg)

			_, err = cfg.Rules()
			s.Error(err)
		})
	}
}

func (s *ConfigTestSuite) TestLoadDotEnv() {
	path := filepath.Join(s.T().TempDir(), "zombiedice.env")
	s.Require().NoError(os.WriteFile(path, []byte("ZOMBIEDICE_BUST_THRESHOLD=4\nZOMBIEDICE_TARGET_SCORE=21\n"), 0o600))

	// Already set variables are not overwritten.
	s.T().Setenv("ZOMBIEDICE_TARGET_SCORE", "15")
	// Registered so the variable loaded from the file is cleared afterwards.
	s.T().Setenv("ZOMBIEDICE_BUST_THRESHOLD", "")
	s.Require().NoError(os.Unsetenv("ZOMBIEDICE_BUST_THRESHOLD"))

	s.Require().NoError(LoadDotEnv(path))

	cfg, err := Load(s.fs, nil)
	s.Require().NoError(err)
	s.Equal(4, cfg.BustThreshold)
	s.Equal(15, cfg.TargetScore)
}

func (s *ConfigTestSuite) TestLoadDotEnvMissingFile() {
	s.NoError(LoadDotEnv(filepath.Join(s.T().TempDir(), "missing.env")))
}
