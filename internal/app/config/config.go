package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"isti-portal-core/internal/infrastructure/database/mongodb"
	"isti-portal-core/internal/infrastructure/database/postgres"
	"isti-portal-core/internal/infrastructure/database/redis"

	"github.com/joho/godotenv"
)

// Configuration uniquement via variables d'environnement (.env optionnel)

// Config structure unifiée de la plateforme ISTI
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	MongoDB     MongoConfig
	Session     SessionConfig
	Settings    SettingsConfig
	Mail        MailConfig
	Logging     LoggingConfig
	Seed        SeedConfig
	CORS        CORSConfig
}

// ServerConfig configuration serveur HTTP
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST"`
	Port         int           `env:"SERVER_PORT"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT"`
}

// DatabaseConfig configuration PostgreSQL
type DatabaseConfig struct {
	Host           string        `env:"DB_HOST"`
	Port           int           `env:"DB_PORT"`
	Database       string        `env:"DB_NAME"`
	Username       string        `env:"DB_USERNAME"`
	Password       string        `env:"DB_PASSWORD"`
	MaxConnections int           `env:"DB_MAX_CONNECTIONS"`
	ConnectionTTL  time.Duration `env:"DB_CONNECTION_TTL"`
	SSLMode        string        `env:"DB_SSL_MODE"`
}

// RedisConfig configuration Redis (store de sessions)
type RedisConfig struct {
	Host        string        `env:"REDIS_HOST"`
	Port        int           `env:"REDIS_PORT"`
	Password    string        `env:"REDIS_PASSWORD"`
	Database    int           `env:"REDIS_DATABASE"`
	MaxRetries  int           `env:"REDIS_MAX_RETRIES"`
	PoolSize    int           `env:"REDIS_POOL_SIZE"`
	PoolTimeout time.Duration `env:"REDIS_POOL_TIMEOUT"`
}

// MongoConfig configuration MongoDB (journal d'audit)
type MongoConfig struct {
	URI            string        `env:"MONGODB_URI"`
	Database       string        `env:"MONGODB_DATABASE"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT"`
	MaxPoolSize    int           `env:"MONGODB_MAX_POOL_SIZE"`
}

// SessionConfig durée de vie des sessions utilisateur
type SessionConfig struct {
	TTL        time.Duration `env:"SESSION_TTL"`
	CookieName string        `env:"SESSION_COOKIE_NAME"`
}

// SettingsConfig cache des paramètres applicatifs
type SettingsConfig struct {
	CacheTTL time.Duration `env:"SETTINGS_CACHE_TTL"`
}

// MailConfig canal email (SendGrid)
type MailConfig struct {
	Enabled     bool   `env:"MAIL_ENABLED"`
	SendgridKey string `env:"SENDGRID_API_KEY"`
	FromAddress string `env:"MAIL_FROM_ADDRESS"`
	FromName    string `env:"MAIL_FROM_NAME"`
}

// LoggingConfig configuration logging
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL"`
}

// SeedConfig données initiales créées au premier démarrage
type SeedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
}

// CORSConfig origines autorisées pour le front-end
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`
	MaxAge         int      `env:"CORS_MAX_AGE"`
}

// NewConfig charge la configuration depuis les variables d'environnement
func NewConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("[CONFIG] Fichier .env non trouvé: %v\n", err)
	}

	config := &Config{}

	config.Environment = getEnv("APP_ENV", "development")

	config.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "localhost"),
		Port:         getEnvInt("SERVER_PORT", 4000),
		ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 30) * time.Second,
		WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30) * time.Second,
	}

	config.Database = DatabaseConfig{
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           getEnvInt("DB_PORT", 5432),
		Database:       getEnv("DB_NAME", "isti_portal"),
		Username:       getEnv("DB_USERNAME", "postgres"),
		Password:       getEnv("DB_PASSWORD", ""),
		MaxConnections: getEnvInt("DB_MAX_CONNECTIONS", 25),
		ConnectionTTL:  getEnvDuration("DB_CONNECTION_TTL", 300) * time.Second,
		SSLMode:        getEnv("DB_SSL_MODE", "disable"),
	}

	config.Redis = RedisConfig{
		Host:        getEnv("REDIS_HOST", "localhost"),
		Port:        getEnvInt("REDIS_PORT", 6379),
		Password:    getEnv("REDIS_PASSWORD", ""),
		Database:    getEnvInt("REDIS_DATABASE", 0),
		MaxRetries:  getEnvInt("REDIS_MAX_RETRIES", 3),
		PoolSize:    getEnvInt("REDIS_POOL_SIZE", 10),
		PoolTimeout: getEnvDuration("REDIS_POOL_TIMEOUT", 30) * time.Second,
	}

	config.MongoDB = MongoConfig{
		URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database:       getEnv("MONGODB_DATABASE", "isti_portal"),
		ConnectTimeout: getEnvDuration("MONGODB_CONNECT_TIMEOUT", 10) * time.Second,
		MaxPoolSize:    getEnvInt("MONGODB_MAX_POOL_SIZE", 20),
	}

	config.Session = SessionConfig{
		TTL:        getEnvDuration("SESSION_TTL", 3600) * time.Second,
		CookieName: getEnv("SESSION_COOKIE_NAME", "isti_session"),
	}

	config.Settings = SettingsConfig{
		CacheTTL: getEnvDuration("SETTINGS_CACHE_TTL", 300) * time.Second,
	}

	config.Mail = MailConfig{
		Enabled:     getEnvBool("MAIL_ENABLED", false),
		SendgridKey: getEnv("SENDGRID_API_KEY", ""),
		FromAddress: getEnv("MAIL_FROM_ADDRESS", "no-reply@isti.edu"),
		FromName:    getEnv("MAIL_FROM_NAME", "Portail ISTI"),
	}

	config.Logging = LoggingConfig{
		Level: getEnv("LOG_LEVEL", "info"),
	}

	config.Seed = SeedConfig{
		AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@isti.edu"),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		MaxAge:         getEnvInt("CORS_MAX_AGE", 43200),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Environment == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD est obligatoire en production")
		}
		if c.Mail.Enabled && c.Mail.SendgridKey == "" {
			return fmt.Errorf("SENDGRID_API_KEY est obligatoire quand MAIL_ENABLED=true")
		}
	}
	return nil
}

// GetServer retourne la configuration serveur
func (c *Config) GetServer() ServerConfig {
	return c.Server
}

// NewPostgresConfig adapte la configuration vers le client PostgreSQL
func NewPostgresConfig(c *Config) *postgres.DatabaseConfig {
	return &postgres.DatabaseConfig{
		Host:     c.Database.Host,
		Port:     c.Database.Port,
		Database: c.Database.Database,
		Username: c.Database.Username,
		Password: c.Database.Password,
		SSLMode:  c.Database.SSLMode,
		MaxConns: c.Database.MaxConnections,
		ConnTTL:  c.Database.ConnectionTTL,
	}
}

// NewRedisConfig adapte la configuration vers le client Redis
func NewRedisConfig(c *Config) *redis.RedisConfig {
	return &redis.RedisConfig{
		Host:        c.Redis.Host,
		Port:        c.Redis.Port,
		Password:    c.Redis.Password,
		Database:    c.Redis.Database,
		MaxRetries:  c.Redis.MaxRetries,
		PoolSize:    c.Redis.PoolSize,
		PoolTimeout: c.Redis.PoolTimeout,
	}
}

// NewMongoConfig adapte la configuration vers le client MongoDB
func NewMongoConfig(c *Config) *mongodb.MongoConfig {
	return &mongodb.MongoConfig{
		URI:            c.MongoDB.URI,
		Database:       c.MongoDB.Database,
		ConnectTimeout: c.MongoDB.ConnectTimeout,
		MaxPoolSize:    c.MongoDB.MaxPoolSize,
	}
}

// Helpers environnement

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds))
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
