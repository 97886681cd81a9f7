package main

import "os"

type appConfig struct {
	Port         string
	JWTSecret    string
	DatabasePath string
	UploadDir    string
	FrontendURL  string
}

var cfg appConfig

func loadConfig() appConfig {
	c := appConfig{
		Port:         getenv("PORT", "5000"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		DatabasePath: os.Getenv("DATABASE_PATH"),
		UploadDir:    getenv("UPLOAD_DIR", "uploads"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
	}

	if c.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set, falling back to default secret")
		c.JWTSecret = "secret"
	}
	if c.DatabasePath == "" {
		logger.Warn("DATABASE_PATH not set, using portfolio.db")
		c.DatabasePath = "portfolio.db"
	}

	return c
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
