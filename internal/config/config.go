package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/iplt20-stats/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Data sources the service can read the base tables from.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceMemory   = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	CORSAllowedOrigins         []string
	DataSource                 string
	MatchesCSVPath             string
	DeliveriesCSVPath          string
	DBURL                      string
	DBDisablePreparedBinary    bool
	CacheEnabled               bool
	CacheTTL                   time.Duration
	LeaderboardDefaultLimit    int
	DashboardWorkers           int
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	LogLevel                   logging.Level
}

// LoadDotEnv loads the first .env file found among paths without overriding
// variables already set. It returns the path it loaded, or "" when none exists.
func LoadDotEnv(paths ...string) string {
	if len(paths) == 0 {
		paths = []string{".env", "../.env", "../../.env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

func Load() (Config, error) {
	return LoadWith(nil)
}

// LoadWith is Load with per-key overrides, used by command line flags.
// Empty override values fall through to the environment.
func LoadWith(overrides map[string]string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(overrides[key]); v != "" {
			return v
		}
		return getEnv(key, fallback)
	}

	appEnv, err := parseAppEnv(env("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dataSource, err := parseDataSource(env("DATA_SOURCE", SourceCSV))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(env("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(env("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dbURL := strings.TrimSpace(env("DB_URL", ""))
	if dataSource == SourcePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when DATA_SOURCE=%s", SourcePostgres)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(env("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(env("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(env("CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	leaderboardLimit, err := getEnvAsInt("LEADERBOARD_DEFAULT_LIMIT", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEADERBOARD_DEFAULT_LIMIT: %w", err)
	}
	if leaderboardLimit <= 0 || leaderboardLimit > 100 {
		return Config{}, fmt.Errorf("LEADERBOARD_DEFAULT_LIMIT must be between 1 and 100")
	}
	dashboardWorkers, err := getEnvAsInt("DASHBOARD_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse DASHBOARD_WORKERS: %w", err)
	}
	if dashboardWorkers <= 0 {
		return Config{}, fmt.Errorf("DASHBOARD_WORKERS must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(env("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(env("PPROF_ADDR", ":6060"))

	uptraceEnabled, err := strconv.ParseBool(env("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(env("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(env("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(env("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(env("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(env("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                env("APP_SERVICE_NAME", "iplt20-stats"),
		ServiceVersion:             env("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   env("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		CORSAllowedOrigins:         splitCSV(env("CORS_ALLOWED_ORIGINS", "*")),
		DataSource:                 dataSource,
		MatchesCSVPath:             strings.TrimSpace(env("MATCHES_CSV_PATH", "./matches.csv")),
		DeliveriesCSVPath:          strings.TrimSpace(env("DELIVERIES_CSV_PATH", "./deliveries.csv")),
		DBURL:                      dbURL,
		DBDisablePreparedBinary:    dbDisablePreparedBinary,
		CacheEnabled:               cacheEnabled,
		CacheTTL:                   cacheTTL,
		LeaderboardDefaultLimit:    leaderboardLimit,
		DashboardWorkers:           dashboardWorkers,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(env("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(env("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(env("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		LogLevel:                   logging.ParseLevel(env("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(env("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if cfg.DataSource == SourceCSV && (cfg.MatchesCSVPath == "" || cfg.DeliveriesCSVPath == "") {
		return Config{}, fmt.Errorf("MATCHES_CSV_PATH and DELIVERIES_CSV_PATH are required when DATA_SOURCE=%s", SourceCSV)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseDataSource(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case SourceCSV, SourcePostgres, SourceMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid DATA_SOURCE %q: valid values are %s, %s, %s", v, SourceCSV, SourcePostgres, SourceMemory)
	}
}
