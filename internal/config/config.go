package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPublicAppURL = "http://localhost:3000"
	DefaultCookieName   = "session"

	DocumentStoreFirestore = "firestore"
	DocumentStoreSQL       = "sql"

	BlobStoreFirebase = "firebase"
	BlobStoreLocal    = "local"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	// PublicAppURL is the externally visible base URL used to build redirects.
	PublicAppURL string

	AuthCookieName   string
	AuthCookieSecure bool
	AuthCheckRevoked bool
	OTLPEndpoint     string
	OrgNameCacheTTL  time.Duration

	Firebase      FirebaseConfig
	DocumentStore DocumentStoreConfig
	BlobStore     BlobStoreConfig
	Redis         RedisConfig
}

// FirebaseConfig carries the service-account credentials for the admin SDK.
// Any empty credential field switches the bootstrap to application default credentials.
type FirebaseConfig struct {
	ProjectID     string
	ClientEmail   string
	PrivateKey    string
	StorageBucket string
}

type DocumentStoreConfig struct {
	Driver string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	// SeedFile, when set, names a JSON file of documents loaded into the SQL store at startup.
	SeedFile string
}

type BlobStoreConfig struct {
	Driver   string
	LocalDir string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a redis address was configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	return Config{
		AppName:          getenv("APP_SERVICE", "console"),
		AppVersion:       getenv("APP_VERSION", "0.1.0"),
		Environment:      environment,
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		PublicAppURL:     strings.TrimRight(strings.TrimSpace(getenv("PUBLIC_APP_URL", DefaultPublicAppURL)), "/"),
		AuthCookieName:   strings.TrimSpace(getenv("AUTH_COOKIE_NAME", DefaultCookieName)),
		AuthCookieSecure: authCookieSecure,
		AuthCheckRevoked: getenvBool("AUTH_CHECK_REVOKED", false),
		OTLPEndpoint:     getenv("OTLP_ENDPOINT", "localhost:4318"),
		OrgNameCacheTTL:  getenvDuration("ORG_NAME_CACHE_TTL", 5*time.Minute),
		Firebase: FirebaseConfig{
			ProjectID:     strings.TrimSpace(os.Getenv("FIREBASE_PROJECT_ID")),
			ClientEmail:   strings.TrimSpace(os.Getenv("FIREBASE_CLIENT_EMAIL")),
			PrivateKey:    os.Getenv("FIREBASE_PRIVATE_KEY"),
			StorageBucket: strings.TrimSpace(os.Getenv("FIREBASE_STORAGE_BUCKET")),
		},
		DocumentStore: DocumentStoreConfig{
			Driver:            normalizeDriver(getenv("DOCUMENT_STORE", DocumentStoreFirestore), DocumentStoreFirestore, DocumentStoreSQL),
			DBType:            strings.ToLower(getenv("DATABASE_TYPE", "sqlite")),
			DBHost:            getenv("DATABASE_HOST", "localhost"),
			DBPort:            getenv("DATABASE_PORT", "5432"),
			DBName:            getenv("DATABASE_NAME", "console"),
			DBUser:            getenv("DATABASE_USER", "postgres"),
			DBPassword:        getenv("DATABASE_PASSWORD", ""),
			DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
			DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
			DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 20),
			DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 300),
			SeedFile:          strings.TrimSpace(os.Getenv("DOCUMENT_STORE_SEED_FILE")),
		},
		BlobStore: BlobStoreConfig{
			Driver:   normalizeDriver(getenv("BLOB_STORE", BlobStoreFirebase), BlobStoreFirebase, BlobStoreLocal),
			LocalDir: getenv("BLOB_LOCAL_DIR", "./data/blobs"),
		},
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			Password: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
			DB:       getenvInt("REDIS_DB", 0),
		},
	}
}

// IsProduction reports whether the service runs in the production environment.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func normalizeDriver(raw, def string, allowed ...string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, candidate := range allowed {
		if value == candidate {
			return candidate
		}
	}
	return def
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}
