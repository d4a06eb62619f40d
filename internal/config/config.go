package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/KirkDiggler/zombiedice/internal/models"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile is read, when present, before the environment is parsed
const DotEnvFile = ".env"

// Config holds everything the zombiedice binary reads from its environment
type Config struct {
	// Seed fixes the dice; zero seeds from the clock
	Seed int64 `env:"ZOMBIEDICE_SEED"`

	// RedisAddr points at an external Redis. Empty runs an embedded one.
	RedisAddr     string        `env:"ZOMBIEDICE_REDIS_ADDR"`
	RedisPassword string        `env:"ZOMBIEDICE_REDIS_PASSWORD"`
	TTL           time.Duration `env:"ZOMBIEDICE_TTL"            envDefault:"24h"`

	GreenDice     int    `env:"ZOMBIEDICE_GREEN_DICE"     envDefault:"6"`
	YellowDice    int    `env:"ZOMBIEDICE_YELLOW_DICE"    envDefault:"4"`
	RedDice       int    `env:"ZOMBIEDICE_RED_DICE"       envDefault:"3"`
	DicePerRoll   int    `env:"ZOMBIEDICE_DICE_PER_ROLL"  envDefault:"3"`
	BustThreshold int    `env:"ZOMBIEDICE_BUST_THRESHOLD" envDefault:"3"`
	TargetScore   int    `env:"ZOMBIEDICE_TARGET_SCORE"   envDefault:"13"`
	TieBreak      string `env:"ZOMBIEDICE_TIE_BREAK"      envDefault:"threshold"`
	MaxRounds     int    `env:"ZOMBIEDICE_MAX_ROUNDS"     envDefault:"100"`

	NoColor bool `env:"ZOMBIEDICE_NO_COLOR"`

	// OTelEndpoint enables tracing when set
	OTelEndpoint string `env:"ZOMBIEDICE_OTEL_ENDPOINT"`
}

// LoadDotEnv copies variables from a dotenv file into the environment.
// Variables that are already set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the dotenv file and the environment, then lets flags override them
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	if err := LoadDotEnv(DotEnvFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the dice, 0 for random")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "redis address, empty for an embedded server")
	fs.IntVar(&cfg.TargetScore, "target", cfg.TargetScore, "brains needed to win")
	fs.StringVar(&cfg.TieBreak, "tie-break", cfg.TieBreak, "tie-break mode: threshold or single_round")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable ANSI colors")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Rules builds the rule set the config describes. Face sets keep their
// standard values; only counts and thresholds are configurable.
func (c Config) Rules() (*models.Rules, error) {
	rules := models.DefaultRules()
	rules.Composition = []models.DiceCount{
		{Color: models.ColorGreen, Count: c.GreenDice},
		{Color: models.ColorYellow, Count: c.YellowDice},
		{Color: models.ColorRed, Count: c.RedDice},
	}
	rules.DicePerRoll = c.DicePerRoll
	rules.BustThreshold = c.BustThreshold
	rules.TargetScore = c.TargetScore
	rules.TieBreak = models.TieBreakMode(c.TieBreak)

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return rules, nil
}
