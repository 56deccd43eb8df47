package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session store backends
const (
	SessionStoreMemory = "memory"
	SessionStoreSQL    = "sql"
	SessionStoreRedis  = "redis"
)

// Defaults carried over from the original deployment
const (
	DefaultHost          = "127.0.0.1"
	DefaultPort          = 5000
	DefaultSecretKey     = "dev-secret"
	DefaultAdminPIN      = "2468"
	DefaultBasicAuthUser = "admin"
	DefaultBasicAuthPass = "changeme"
	DefaultSessionTTL    = 30 * 24 * time.Hour
)

type Config struct {
	Host string
	Port int

	// DatabaseURL is the raw value given by the operator, Database is
	// what it resolved to.
	DatabaseURL string
	Database    Database

	RootDir     string
	InstanceDir string

	SecretKey     string
	AdminPIN      string
	BasicAuthUser string
	BasicAuthPass string

	SessionStore  string
	SessionTTL    time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Addr returns the listen address
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// ParseFlags validates flags, loads the optional .env file and resolves the
// database target. Directories the database needs are created here.
func ParseFlags(args []string) (Config, error) {
	var (
		cfg     Config
		envFile string
	)

	flags := flag.NewFlagSet("leadpage", flag.ContinueOnError)

	flags.StringVar(&cfg.Host, "host", "", "Bind host")
	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite:///path.db or postgres://...)")
	flags.StringVar(&cfg.InstanceDir, "instance", "", "Writable instance directory")
	flags.StringVar(&cfg.RootDir, "root", "", "Application root for relative sqlite paths")
	flags.StringVar(&cfg.SecretKey, "secret", "", "Session secret key (prefer env)")
	flags.StringVar(&cfg.AdminPIN, "pin", "", "Admin PIN (prefer env)")
	flags.StringVar(&cfg.SessionStore, "session-store", "", "Session store: memory, sql or redis")
	flags.StringVar(&envFile, "env-file", ".env", "Optional dotenv file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Real environment wins over the file
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if cfg.Host == "" {
		cfg.Host = envOr("HOST", DefaultHost)
	}
	if cfg.Port == 0 {
		if portStr := strings.TrimSpace(os.Getenv("PORT")); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.RootDir == "" {
		cfg.RootDir = strings.TrimSpace(os.Getenv("APP_ROOT"))
	}
	if cfg.RootDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine working directory: %w", err)
		}
		cfg.RootDir = wd
	}
	if cfg.InstanceDir == "" {
		cfg.InstanceDir = strings.TrimSpace(os.Getenv("INSTANCE_PATH"))
	}
	if cfg.InstanceDir == "" {
		cfg.InstanceDir = filepath.Join(cfg.RootDir, "instance")
	}

	if cfg.SecretKey == "" {
		cfg.SecretKey = os.Getenv("SECRET_KEY")
	}
	if cfg.SecretKey == "" {
		slog.Warn("SECRET_KEY not set, using development default")
		cfg.SecretKey = DefaultSecretKey
	}
	if cfg.AdminPIN == "" {
		cfg.AdminPIN = envOr("ADMIN_PIN", DefaultAdminPIN)
	}
	cfg.BasicAuthUser = envOr("BASIC_AUTH_USER", DefaultBasicAuthUser)
	cfg.BasicAuthPass = envOr("BASIC_AUTH_PASS", DefaultBasicAuthPass)

	if cfg.SessionStore == "" {
		cfg.SessionStore = envOr("SESSION_STORE", SessionStoreSQL)
	}
	switch cfg.SessionStore {
	case SessionStoreMemory, SessionStoreSQL, SessionStoreRedis:
	default:
		return Config{}, fmt.Errorf("invalid session store %q", cfg.SessionStore)
	}

	cfg.SessionTTL = DefaultSessionTTL
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL")); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return Config{}, errors.New("invalid SESSION_TTL env variable")
		}
		cfg.SessionTTL = ttl
	}

	cfg.RedisAddr = envOr("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, errors.New("invalid REDIS_DB env variable")
		}
		cfg.RedisDB = n
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	database, err := ResolveDatabase(cfg.DatabaseURL, cfg.RootDir, cfg.InstanceDir)
	if err != nil {
		return Config{}, err
	}
	cfg.Database = database

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
