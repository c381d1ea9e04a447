package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultMaxCredits is the per-semester credit ceiling applied when no
// override is configured.
const DefaultMaxCredits = 18

type Config struct {
	Env string

	Storage  StorageConfig
	Academic AcademicConfig
	Log      LogConfig
	Seed     SeedConfig
}

// StorageConfig locates the data and backup directories.
type StorageConfig struct {
	DataDir   string
	BackupDir string
}

// AcademicConfig holds enrollment policy values. MaxCreditsPerSemester
// is read by the engine at check time, so overriding it between calls
// takes effect immediately.
type AcademicConfig struct {
	MaxCreditsPerSemester int
}

type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig toggles sample data loading at startup.
type SeedConfig struct {
	SampleData bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Storage = StorageConfig{
		DataDir:   v.GetString("DATA_DIR"),
		BackupDir: v.GetString("BACKUP_DIR"),
	}

	maxCredits := v.GetInt("MAX_CREDITS_PER_SEMESTER")
	if maxCredits <= 0 {
		maxCredits = DefaultMaxCredits
	}
	cfg.Academic = AcademicConfig{MaxCreditsPerSemester: maxCredits}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Seed = SeedConfig{SampleData: v.GetBool("SEED_SAMPLE_DATA")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("BACKUP_DIR", "./backups")
	v.SetDefault("MAX_CREDITS_PER_SEMESTER", DefaultMaxCredits)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("SEED_SAMPLE_DATA", false)
}

// MaxCredits returns the current per-semester credit ceiling.
func (c *Config) MaxCredits() int {
	return c.Academic.MaxCreditsPerSemester
}

// SetMaxCredits overrides the credit ceiling. The engine reads the
// value on every enrollment check, so the new ceiling applies to the
// next call.
func (c *Config) SetMaxCredits(max int) {
	if max > 0 {
		c.Academic.MaxCreditsPerSemester = max
	}
}
