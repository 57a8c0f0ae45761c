// Package config loads runtime settings from an optional YAML file, a .env
// file, and WORKCLOCK_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	TransportNone  = "none"
	TransportSMTP  = "smtp"
	TransportGmail = "gmail"

	envPrefix = "WORKCLOCK"
)

type Config struct {
	DBPath    string
	ExportDir string
	LogLevel  string

	Mail     MailConfig
	SMTP     SMTPConfig
	Gmail    GmailConfig
	AutoSend AutoSendConfig

	// ConfigFile is the file that was read, empty when none was found.
	ConfigFile string
}

type MailConfig struct {
	Transport string
	From      string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	TLS      bool
}

type GmailConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type AutoSendConfig struct {
	RetryDelay time.Duration
	MaxRetries int
}

// Load reads the configuration. When file is empty the search path is
// ~/.workclock/config.yaml then ./config.yaml; a missing file is not an error.
func Load(file string) (*Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	setDefaults(v, home)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(filepath.Join(home, ".workclock"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{
		DBPath:    expandHome(v.GetString("db_path"), home),
		ExportDir: expandHome(v.GetString("export_dir"), home),
		LogLevel:  v.GetString("log.level"),
		Mail: MailConfig{
			Transport: strings.ToLower(v.GetString("mail.transport")),
			From:      v.GetString("mail.from"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("smtp.host"),
			Port:     v.GetInt("smtp.port"),
			User:     v.GetString("smtp.user"),
			Password: v.GetString("smtp.password"),
			TLS:      v.GetBool("smtp.tls"),
		},
		Gmail: GmailConfig{
			ClientID:     v.GetString("gmail.client_id"),
			ClientSecret: v.GetString("gmail.client_secret"),
			RedirectURL:  v.GetString("gmail.redirect_url"),
		},
		AutoSend: AutoSendConfig{
			RetryDelay: v.GetDuration("autosend.retry_delay"),
			MaxRetries: v.GetInt("autosend.max_retries"),
		},
		ConfigFile: v.ConfigFileUsed(),
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, home string) {
	v.SetDefault("db_path", filepath.Join(home, ".workclock", "workclock.db"))
	v.SetDefault("export_dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("mail.transport", TransportNone)
	v.SetDefault("mail.from", "")
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.tls", true)
	v.SetDefault("gmail.client_id", "")
	v.SetDefault("gmail.client_secret", "")
	v.SetDefault("gmail.redirect_url", "http://127.0.0.1:8085/callback")
	v.SetDefault("autosend.retry_delay", 15*time.Minute)
	v.SetDefault("autosend.max_retries", 3)
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks that the selected mail transport has what it needs.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	switch c.Mail.Transport {
	case TransportNone:
	case TransportSMTP:
		if c.SMTP.Host == "" {
			return errors.New("smtp.host must be set when mail.transport is smtp")
		}
		if c.SMTP.Port <= 0 {
			return errors.New("smtp.port must be positive")
		}
		if c.Mail.From == "" && c.SMTP.User == "" {
			return errors.New("mail.from or smtp.user must be set when mail.transport is smtp")
		}
	case TransportGmail:
		if c.Gmail.ClientID == "" || c.Gmail.ClientSecret == "" {
			return errors.New("gmail.client_id and gmail.client_secret must be set when mail.transport is gmail")
		}
		if c.Gmail.RedirectURL == "" {
			return errors.New("gmail.redirect_url must be set when mail.transport is gmail")
		}
	default:
		return fmt.Errorf("mail.transport must be one of none, smtp, gmail; got %q", c.Mail.Transport)
	}

	if c.AutoSend.MaxRetries < 0 {
		return errors.New("autosend.max_retries must be non-negative")
	}
	if c.AutoSend.RetryDelay <= 0 {
		return errors.New("autosend.retry_delay must be positive")
	}
	return nil
}

// SlogLevel maps log.level onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
}

// SenderAddress is the From address for SMTP delivery.
func (c *Config) SenderAddress() string {
	if c.Mail.From != "" {
		return c.Mail.From
	}
	return c.SMTP.User
}
