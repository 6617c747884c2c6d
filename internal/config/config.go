// Package config arma la configuración del proceso una sola vez al arrancar.
// Nada lee variables de entorno fuera de acá: el *Config se pasa a los constructores.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env     string
	AppName string

	Server        ServerConfig
	Log           LogConfig
	DB            DBConfig
	Redis         RedisConfig
	Auth          AuthConfig
	Clinic        ClinicConfig
	Notifications NotificationsConfig
	RateLimit     RateLimitConfig
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type DBConfig struct {
	// DSN vacío => repos in-memory (modo dev).
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	// Addr vacío => rate limit en proceso.
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// DevMode habilita el header X-Debug-User-ID y desactiva la verificación de tokens.
	DevMode bool
}

type ClinicConfig struct {
	SlotDuration   time.Duration
	Timezone       string
	ReminderWindow time.Duration
}

type NotificationsConfig struct {
	Retention time.Duration
	Email     EmailConfig
}

type EmailConfig struct {
	Enabled   bool
	Region    string
	FromEmail string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Location resuelve la zona horaria de la clínica (UTC si no es válida).
func (c ClinicConfig) Location() *time.Location {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app_name", "pet-clinic")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("db.dsn", "")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("auth.dev_mode", false)

	v.SetDefault("clinic.slot_duration", 30*time.Minute)
	v.SetDefault("clinic.timezone", "UTC")
	v.SetDefault("clinic.reminder_window", 24*time.Hour)

	v.SetDefault("notifications.retention", 90*24*time.Hour)
	v.SetDefault("notifications.email.enabled", false)
	v.SetDefault("notifications.email.region", "us-east-1")
	v.SetDefault("notifications.email.from_email", "noreply@petclinic.local")

	v.SetDefault("ratelimit.requests", 30)
	v.SetDefault("ratelimit.window", time.Minute)
}

// Load lee defaults, luego el archivo (si path != ""), luego env.
// Env: PETCLINIC_<SECCION>_<CLAVE>, p.ej. PETCLINIC_DB_DSN. Se respetan
// también PORT, DB_DSN, LOG_LEVEL, LOG_FORMAT y APP_NAME.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PETCLINIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	legacy := map[string]string{
		"server.port": "PORT",
		"db.dsn":      "DB_DSN",
		"log.level":   "LOG_LEVEL",
		"log.format":  "LOG_FORMAT",
		"app_name":    "APP_NAME",
	}
	for key, env := range legacy {
		envKey := "PETCLINIC_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envKey, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		Env:     v.GetString("env"),
		AppName: v.GetString("app_name"),
		Server: ServerConfig{
			Port:            v.GetInt("server.port"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		DB: DBConfig{
			DSN:             v.GetString("db.dsn"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth.jwt_secret"),
			TokenTTL:  v.GetDuration("auth.token_ttl"),
			DevMode:   v.GetBool("auth.dev_mode"),
		},
		Clinic: ClinicConfig{
			SlotDuration:   v.GetDuration("clinic.slot_duration"),
			Timezone:       v.GetString("clinic.timezone"),
			ReminderWindow: v.GetDuration("clinic.reminder_window"),
		},
		Notifications: NotificationsConfig{
			Retention: v.GetDuration("notifications.retention"),
			Email: EmailConfig{
				Enabled:   v.GetBool("notifications.email.enabled"),
				Region:    v.GetString("notifications.email.region"),
				FromEmail: v.GetString("notifications.email.from_email"),
			},
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("ratelimit.requests"),
			Window:   v.GetDuration("ratelimit.window"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if !c.Auth.DevMode && strings.TrimSpace(c.Auth.JWTSecret) == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required unless auth.dev_mode is set"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if c.Clinic.SlotDuration <= 0 {
		errs = append(errs, errors.New("clinic.slot_duration must be positive"))
	}
	if c.Clinic.ReminderWindow <= 0 {
		errs = append(errs, errors.New("clinic.reminder_window must be positive"))
	}
	if c.Notifications.Retention <= 0 {
		errs = append(errs, errors.New("notifications.retention must be positive"))
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("ratelimit.requests and ratelimit.window must be positive"))
	}
	if c.Notifications.Email.Enabled && strings.TrimSpace(c.Notifications.Email.FromEmail) == "" {
		errs = append(errs, errors.New("notifications.email.from_email is required when email is enabled"))
	}

	return errors.Join(errs...)
}
