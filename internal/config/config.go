package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// MinSecretLength is the shortest session secret Validate accepts. There is
// no built-in secret; it comes from the config file or SESSION_SECRET.
const MinSecretLength = 32

type Config struct {
	Port          string `yaml:"port"`
	DBDriver      string `yaml:"db_driver"`
	DBDSN         string `yaml:"db_dsn"`
	Secret        string `yaml:"secret"`
	StaticDir     string `yaml:"static_dir"`
	SecureCookies bool   `yaml:"secure_cookies"`
}

func Default() *Config {
	return &Config{
		Port:      "3000",
		DBDriver:  "sqlite3",
		DBDSN:     "blog.db?_busy_timeout=5000",
		StaticDir: "client/dist",
	}
}

// Load reads filename on top of the defaults. Fields missing from the file
// keep their default value.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "parsing %s failed", filename)
	}

	return config, nil
}

// ApplyEnv overrides fields from PORT, DB_DRIVER, DB_DSN, SESSION_SECRET,
// STATIC_DIR and SECURE_COOKIES when they are set.
func (c *Config) ApplyEnv() error {
	set := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set("PORT", &c.Port)
	set("DB_DRIVER", &c.DBDriver)
	set("DB_DSN", &c.DBDSN)
	set("SESSION_SECRET", &c.Secret)
	set("STATIC_DIR", &c.StaticDir)

	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "parsing SECURE_COOKIES failed")
		}
		c.SecureCookies = secure
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite3", "postgres", "pgx":
	default:
		return errors.Errorf("unsupported db_driver %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return errors.New("db_dsn is required")
	}
	if c.Secret == "" {
		return errors.New("secret is required, set SESSION_SECRET")
	}
	if len(c.Secret) < MinSecretLength {
		return errors.Errorf("secret must be at least %d bytes", MinSecretLength)
	}
	return nil
}
