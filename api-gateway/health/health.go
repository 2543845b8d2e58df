package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gamebay/retail-ops/api-gateway/config"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// InstanceHealth represents the health status of one backend replica
type InstanceHealth struct {
	URL       string        `json:"url"`
	Status    string        `json:"status"` // healthy, unhealthy
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// GatewayHealth represents the overall gateway health
type GatewayHealth struct {
	Gateway   string           `json:"gateway"`
	Status    string           `json:"status"` // healthy, degraded, unhealthy
	Backend   string           `json:"backend"`
	Instances []InstanceHealth `json:"instances"`
	Uptime    time.Duration    `json:"uptime_seconds"`
}

// HealthChecker checks health of the backend replica pool
type HealthChecker struct {
	config    *config.GatewayConfig
	client    *http.Client
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(cfg *config.GatewayConfig) *HealthChecker {
	return &HealthChecker{
		config: cfg,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		startTime: time.Now(),
	}
}

// CheckInstance checks health of a single backend replica
func (h *HealthChecker) CheckInstance(ctx context.Context, instanceURL string) InstanceHealth {
	start := time.Now()
	healthURL := instanceURL + h.config.Backend.HealthCheck

	result := InstanceHealth{
		URL:       instanceURL,
		Timestamp: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, "GET", healthURL, nil)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to create request: %v", err)
		result.Latency = time.Since(start)
		return result
	}

	resp, err := h.client.Do(req)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to reach instance: %v", err)
		result.Latency = time.Since(start)
		return result
	}
	defer resp.Body.Close()

	result.Latency = time.Since(start)

	if resp.StatusCode == http.StatusOK {
		result.Status = "healthy"
	} else {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Unexpected status code: %d", resp.StatusCode)
	}

	return result
}

// CheckAllInstances checks every replica concurrently
func (h *HealthChecker) CheckAllInstances(ctx context.Context) GatewayHealth {
	instances := h.config.Backend.Instances
	results := make([]InstanceHealth, len(instances))
	var wg sync.WaitGroup

	for i, instance := range instances {
		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()
			health := h.CheckInstance(ctx, url)
			results[idx] = health

			if health.Status != "healthy" {
				logger.Logger.Warn().
					Str("instance", url).
					Str("error", health.Error).
					Msg("Instance health check failed")
			}
		}(i, instance)
	}

	wg.Wait()

	return GatewayHealth{
		Gateway:   "api-gateway",
		Status:    h.determineOverallStatus(results),
		Backend:   h.config.Backend.Name,
		Instances: results,
		Uptime:    time.Since(h.startTime),
	}
}

func (h *HealthChecker) determineOverallStatus(instances []InstanceHealth) string {
	healthyCount := 0
	for _, inst := range instances {
		if inst.Status == "healthy" {
			healthyCount++
		}
	}

	switch {
	case healthyCount == len(instances):
		return "healthy"
	case healthyCount > 0:
		return "degraded"
	default:
		return "unhealthy"
	}
}

// QuickCheck performs a quick health check (just gateway itself)
func (h *HealthChecker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":    "healthy",
		"gateway":   "api-gateway",
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}
