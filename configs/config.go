package config

import "os"

type S3 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
}

type Config struct {
	PostgresURI string
	Port        string
	StaticDir   string
	S3          S3
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI: getEnv("POSTGRES_URI", ""),
		Port:        getEnv("PORT", "3000"),
		StaticDir:   getEnv("STATIC_DIR", "./public"),
		S3: S3{
			AccountID:  getEnv("S3_ACCOUNT_ID", ""),
			AccessKey:  getEnv("S3_ACCESS_KEY", ""),
			SecretKey:  getEnv("S3_SECRET_KEY", ""),
			BucketName: getEnv("S3_BUCKET_NAME", "private-photos"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
