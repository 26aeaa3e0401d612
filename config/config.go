package config

import "os"

type Config struct {
	ServerPort    string
	GinMode       string
	MaxUploadSize int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = "debug"
	}

	return &Config{
		ServerPort:    serverPort,
		GinMode:       ginMode,
		MaxUploadSize: 32 * 1024 * 1024, // 32 MB
	}
}
