package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	AdminLogin           string
	AdminPassword        string
	RestoreStockOnCancel bool
	DefaultCancelReason  string
	ConfirmRedirectDelay time.Duration
	ShutdownTimeout      time.Duration
}

const (
	defaultAdminLogin           = "admin"
	defaultAdminPassword        = "admin"
	defaultCancelReason         = "reason not specified"
	defaultConfirmRedirectDelay = 5 * time.Second
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		AdminLogin:           getString(lookup, "ADMIN_LOGIN", defaultAdminLogin),
		AdminPassword:        getString(lookup, "ADMIN_PASSWORD", defaultAdminPassword),
		RestoreStockOnCancel: getBool(lookup, "RESTORE_STOCK_ON_CANCEL", false),
		DefaultCancelReason:  getString(lookup, "DEFAULT_CANCEL_REASON", defaultCancelReason),
		ConfirmRedirectDelay: getDuration(lookup, "CONFIRM_REDIRECT_DELAY", defaultConfirmRedirectDelay),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		redirectDelayStr   = cfg.ConfirmRedirectDelay.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.AdminLogin, "admin-login", cfg.AdminLogin, "Login of the seeded administrator account")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Password of the seeded administrator account")
	fs.BoolVar(&cfg.RestoreStockOnCancel, "restore-stock", cfg.RestoreStockOnCancel, "Return reserved stock to the catalog when an order is cancelled")
	fs.StringVar(&cfg.DefaultCancelReason, "cancel-reason", cfg.DefaultCancelReason, "Placeholder reason recorded when cancellation gives none")
	fs.StringVar(&redirectDelayStr, "redirect-delay", redirectDelayStr, "Delay before returning to the catalog after order confirmation")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ConfirmRedirectDelay, err = time.ParseDuration(redirectDelayStr); err != nil {
		return nil, fmt.Errorf("invalid redirect delay: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ConfirmRedirectDelay <= 0 {
		cfg.ConfirmRedirectDelay = defaultConfirmRedirectDelay
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DefaultCancelReason == "" {
		cfg.DefaultCancelReason = defaultCancelReason
	}

	if cfg.AdminLogin == "" {
		return nil, fmt.Errorf("admin login must be provided")
	}

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin password must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
