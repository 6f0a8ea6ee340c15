package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Firebase Configuration
	FirebaseCredentialsPath string
	FirebaseProjectID       string
	// Auth Configuration
	DevAuthSecret string // HS256 secret for local development tokens (no Firebase required)
	// Blob Storage Configuration
	StorageBackend string // "gcs" (default), "s3" or "local"
	StorageBucket  string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	LocalStorePath string
	// Redis Configuration (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitUploadThreshold int
	// Upload Configuration
	MaxUploadSizeMB   int
	MaxBatchUploads   int
	ImageMaxDimension int
	ImageJPEGQuality  int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Firebase Configuration
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		// Auth Configuration
		DevAuthSecret: getEnv("DEV_AUTH_SECRET", ""),
		// Blob Storage Configuration
		StorageBackend: getEnv("STORAGE_BACKEND", "gcs"),
		StorageBucket:  getEnv("STORAGE_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:    getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:    getEnv("S3_SECRET_ACCESS_KEY", ""),
		LocalStorePath: getEnv("LOCAL_STORE_PATH", "./data/blobs"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 30),
		// Upload Configuration
		MaxUploadSizeMB:   getEnvInt("MAX_UPLOAD_SIZE_MB", 10),
		MaxBatchUploads:   getEnvInt("MAX_BATCH_UPLOADS", 10),
		ImageMaxDimension: getEnvInt("IMAGE_MAX_DIMENSION", 1200),
		ImageJPEGQuality:  getEnvInt("IMAGE_JPEG_QUALITY", 80),
	}

	if cfg.FirebaseCredentialsPath == "" && cfg.DevAuthSecret == "" {
		log.Println("WARNING: neither FIREBASE_CREDENTIALS_PATH nor DEV_AUTH_SECRET is set. Authentication will reject all requests.")
	}

	if cfg.StorageBackend == "gcs" && cfg.StorageBucket == "" {
		log.Println("WARNING: STORAGE_BUCKET is missing. Blob uploads will fail.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
