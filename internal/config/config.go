package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Firebase FirebaseConfig
	JWT      JWTConfig
	Report   ReportConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	DefaultLang string
	Timezone    string
}

// FirebaseConfig holds the hosted backend configuration. The web API key
// drives the Identity Toolkit sign-in endpoint, the credentials file the
// Firestore client.
type FirebaseConfig struct {
	ProjectID        string
	CredentialsFile  string
	WebAPIKey        string
	AuthDomainSuffix string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// ReportConfig holds branding and asset configuration for exports.
type ReportConfig struct {
	OrgNameEn    string
	OrgNameUr    string
	LogoPath     string
	UrduFontPath string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		DefaultLang: getEnv("DEFAULT_LANG", "ur"),
		Timezone:    getEnv("TIMEZONE", "Asia/Karachi"),
	}

	config.Firebase = FirebaseConfig{
		ProjectID:        getEnv("FIREBASE_PROJECT_ID", ""),
		CredentialsFile:  getEnv("FIREBASE_CREDENTIALS_FILE", "serviceAccount.json"),
		WebAPIKey:        getEnv("FIREBASE_WEB_API_KEY", ""),
		AuthDomainSuffix: getEnv("AUTH_DOMAIN_SUFFIX", "@alnoor-academy.edu.pk"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	config.Report = ReportConfig{
		OrgNameEn:    getEnv("ORG_NAME_EN", "Al-Noor Academy"),
		OrgNameUr:    getEnv("ORG_NAME_UR", "النور اکیڈمی"),
		LogoPath:     getEnv("REPORT_LOGO_PATH", "assets/logo.png"),
		UrduFontPath: getEnv("REPORT_URDU_FONT_PATH", "assets/NotoNastaliqUrdu-Regular.ttf"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Firebase.ProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}
	if c.Firebase.WebAPIKey == "" {
		return fmt.Errorf("FIREBASE_WEB_API_KEY is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
