package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Latency
		Auth
		Demo
		Tasks
		Export
		Covers
	}

	HTTP struct {
		Port int32
		Host string

		// HSTSMaxAge enables Strict-Transport-Security when positive.
		HSTSMaxAge int
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Latency struct {
		// Scale multiplies every simulated network delay. 0 disables them.
		Scale float64
	}
	Auth struct {
		DemoEmail       string
		DemoPassword    string
		BcryptCost      int
		SessionLifetime time.Duration
		SecureCookies   bool   // Set to false for local dev without HTTPS
		CSRFSecret      string // CSRF protection is enabled when set

		// Rate limiting configuration for the login endpoint
		MaxLoginAttempts int           // Max failed attempts before lockout (default: 5)
		RateLimitWindow  time.Duration // Time window for counting attempts (default: 15m)
		LockoutDuration  time.Duration // How long to lock out (default: 30m)
	}
	Demo struct {
		ResetEnabled  bool
		ResetSchedule string // Cron format: "0 */6 * * *" = every 6 hours
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Export struct {
		Dir string
	}
	Covers struct {
		// CacheDir holds downloaded cover images. Empty disables the cover endpoint.
		CacheDir string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("hsts_max_age", 0)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("latency_scale", 1.0)

	// Auth defaults
	v.SetDefault("auth_demo_email", "demo@bookcircle.com")
	v.SetDefault("auth_demo_password", "demo123")
	v.SetDefault("auth_bcrypt_cost", 10)
	v.SetDefault("auth_session_lifetime", "24h")
	v.SetDefault("auth_secure_cookies", true)
	v.SetDefault("auth_csrf_secret", "")
	v.SetDefault("auth_max_login_attempts", 5)
	v.SetDefault("auth_rate_limit_window", "15m")
	v.SetDefault("auth_lockout_duration", "30m")

	// Demo reset defaults
	v.SetDefault("demo_reset_enabled", false)
	v.SetDefault("demo_reset_schedule", "0 */6 * * *")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	v.SetDefault("export_dir", DefaultExportDir)
	v.SetDefault("covers_cache_dir", DefaultCoversCacheDir)

	return &Config{
		HTTP: HTTP{
			Port:       v.GetInt32("PORT"),
			Host:       v.GetString("HOST"),
			HSTSMaxAge: v.GetInt("HSTS_MAX_AGE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Latency: Latency{
			Scale: v.GetFloat64("LATENCY_SCALE"),
		},
		Auth: Auth{
			DemoEmail:        v.GetString("AUTH_DEMO_EMAIL"),
			DemoPassword:     v.GetString("AUTH_DEMO_PASSWORD"),
			BcryptCost:       v.GetInt("AUTH_BCRYPT_COST"),
			SessionLifetime:  v.GetDuration("AUTH_SESSION_LIFETIME"),
			SecureCookies:    v.GetBool("AUTH_SECURE_COOKIES"),
			CSRFSecret:       v.GetString("AUTH_CSRF_SECRET"),
			MaxLoginAttempts: v.GetInt("AUTH_MAX_LOGIN_ATTEMPTS"),
			RateLimitWindow:  v.GetDuration("AUTH_RATE_LIMIT_WINDOW"),
			LockoutDuration:  v.GetDuration("AUTH_LOCKOUT_DURATION"),
		},
		Demo: Demo{
			ResetEnabled:  v.GetBool("DEMO_RESET_ENABLED"),
			ResetSchedule: v.GetString("DEMO_RESET_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Export: Export{
			Dir: v.GetString("EXPORT_DIR"),
		},
		Covers: Covers{
			CacheDir: v.GetString("COVERS_CACHE_DIR"),
		},
	}
}
