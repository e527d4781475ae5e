package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string // marketplace REST API, e.g. http://host:8000/api/marketplace
	BackendURL  string // asset host, used to resolve relative image paths
	FrontendURL string // public storefront, used for shareable tracking links
	AuthToken   string // bearer credential for authenticated endpoints, may be empty
	RedisAddr   string // optional redis pub/sub transport
	WSHost      string // optional websocket pub/sub transport
	WSPort      string
	WSAppKey    string
	AppEnv      string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  os.Getenv("API_URL"),
		BackendURL:  os.Getenv("BACKEND_URL"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		AuthToken:   os.Getenv("AUTH_TOKEN"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		WSHost:      os.Getenv("WS_HOST"),
		WSPort:      os.Getenv("WS_PORT"),
		WSAppKey:    os.Getenv("WS_APP_KEY"),
		AppEnv:      os.Getenv("APP_ENV"),
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("Environment variables not loaded properly: API_URL is required")
	}

	if cfg.BackendURL == "" {
		cfg.BackendURL = cfg.APIBaseURL
	}

	return cfg
}
