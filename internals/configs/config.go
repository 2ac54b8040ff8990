package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const fallbackJWTSecret = "fallback-secret-key"

// Config dibaca sekali saat start lalu di-inject ke route & controller.
type Config struct {
	AppEnv string
	Port   string

	JWTSecret    string
	TokenTTL     time.Duration
	CookieName   string
	CookieSecure bool

	DatabaseURL          string
	DBStatementTimeoutMS int
	DBMaxOpenConns       int
	DBMaxIdleConns       int

	RateLimitEnabled bool
	CORSOrigins      []string

	Storage StorageConfig
	WebP    WebPConfig

	SnapshotInterval time.Duration
	ImportMaxRows    int
	ExportMaxRows    int

	Client ClientConfig
}

type StorageConfig struct {
	Driver        string // local | minio
	LocalDir      string
	PublicBaseURL string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
}

type WebPConfig struct {
	MaxW    int
	MaxH    int
	Quality float32
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}
}

// Load membaca ENV (setelah LoadEnv) menjadi Config.
func Load() *Config {
	appEnv := strings.ToLower(GetEnv("APP_ENV", "development"))

	secret := strings.TrimSpace(GetEnv("JWT_SECRET"))
	if secret == "" {
		log.Println("❌ JWT_SECRET belum diset, memakai fallback secret (jangan dipakai di production)")
		secret = fallbackJWTSecret
	}

	cfg := &Config{
		AppEnv: appEnv,
		Port:   GetEnv("PORT", "8080"),

		JWTSecret:    secret,
		TokenTTL:     GetDuration("JWT_TTL", 7*24*time.Hour),
		CookieName:   GetEnv("AUTH_COOKIE_NAME", "auth-token"),
		CookieSecure: appEnv == "production",

		DatabaseURL:          databaseURL(),
		DBStatementTimeoutMS: GetInt("DB_STATEMENT_TIMEOUT_MS", 3000),
		DBMaxOpenConns:       GetInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:       GetInt("DB_MAX_IDLE_CONNS", 10),

		RateLimitEnabled: GetBool("RATE_LIMIT_ENABLED", true),
		CORSOrigins:      splitList(GetEnv("CORS_ORIGINS", "http://localhost:3000")),

		Storage: StorageConfig{
			Driver:        strings.ToLower(GetEnv("STORAGE_DRIVER", "local")),
			LocalDir:      GetEnv("STORAGE_LOCAL_DIR", "./uploads"),
			PublicBaseURL: strings.TrimRight(GetEnv("STORAGE_PUBLIC_BASE_URL", "/uploads"), "/"),
			Endpoint:      GetEnv("MINIO_ENDPOINT"),
			AccessKey:     GetEnv("MINIO_ACCESS_KEY"),
			SecretKey:     GetEnv("MINIO_SECRET_KEY"),
			Bucket:        GetEnv("MINIO_BUCKET", "manrel"),
			UseSSL:        GetBool("MINIO_USE_SSL", false),
		},
		WebP: WebPConfig{
			MaxW:    GetInt("IMAGE_WEBP_MAX_W", 1024),
			MaxH:    GetInt("IMAGE_WEBP_MAX_H", 1024),
			Quality: float32(GetInt("IMAGE_WEBP_QUALITY", 80)),
		},

		SnapshotInterval: GetDuration("DASHBOARD_SNAPSHOT_INTERVAL", 24*time.Hour),
		ImportMaxRows:    GetInt("IMPORT_MAX_ROWS", 5000),
		ExportMaxRows:    GetInt("EXPORT_MAX_ROWS", 10000),

		Client: ResolveClientConfig(GetEnv("CLIENT_CODE", "DEFAULT")),
	}
	cfg.Client.Client.Environment = appEnv
	return cfg
}

func databaseURL() string {
	if v := strings.TrimSpace(GetEnv("DATABASE_URL")); v != "" {
		return v
	}
	return "postgres://" + GetEnv("DB_USER", "postgres") + ":" + GetEnv("DB_PASSWORD") +
		"@" + GetEnv("DB_HOST", "localhost") + ":" + GetEnv("DB_PORT", "5432") +
		"/" + GetEnv("DB_NAME", "manrelbdg") + "?sslmode=" + GetEnv("DB_SSLMODE", "disable")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func GetBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// GetDuration menerima format time.ParseDuration ("30m", "24h") atau "0" untuk nonaktif.
func GetDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if v == "0" {
			return 0
		}
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
