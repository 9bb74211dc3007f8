package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	CampaignFile string
	JWTSecret    string
	AdminUser    string
	AdminPass    string
	AdminHash    string
}

// ParseFlags validates flags and fills in defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("dashmetas", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CampaignFile, "campaign", "", "Campaign YAML file (defaults to the built-in campaign)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Session token secret (prefer env)")
	fs.StringVar(&cfg.AdminUser, "admin-user", "", "Operator username (prefer env)")
	fs.StringVar(&cfg.AdminPass, "admin-pass", "", "Operator password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3340 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.CampaignFile == "" {
		cfg.CampaignFile = os.Getenv("CAMPAIGN_FILE")
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if cfg.AdminUser == "" {
		cfg.AdminUser = os.Getenv("ADMIN_USER")
	}
	if cfg.AdminUser == "" {
		return Config{}, errors.New("ADMIN_USER required")
	}

	if cfg.AdminPass == "" {
		cfg.AdminPass = os.Getenv("ADMIN_PASS")
	}
	cfg.AdminHash = os.Getenv("ADMIN_PASS_HASH")
	if cfg.AdminPass == "" && cfg.AdminHash == "" {
		return Config{}, errors.New("ADMIN_PASS or ADMIN_PASS_HASH required")
	}

	return cfg, nil
}
