package config

import (
	"os"
	"strings"
	"time"
)

// BackendConfig holds configuration for the retail backend pool
type BackendConfig struct {
	Name        string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port    string
	Backend BackendConfig
}

// LoadConfig loads the gateway configuration. The retail service runs as a
// pool of identical replicas listed in RETAIL_SERVICE_URLS.
func LoadConfig() *GatewayConfig {
	instances := strings.Split(getEnv("RETAIL_SERVICE_URLS", "http://localhost:8080"), ",")
	for i := range instances {
		instances[i] = strings.TrimSpace(instances[i])
	}

	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Backend: BackendConfig{
			Name:        "retail-service",
			Instances:   instances,
			Timeout:     30 * time.Second,
			HealthCheck: "/health",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
