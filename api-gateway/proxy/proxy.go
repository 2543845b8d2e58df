package proxy

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gamebay/retail-ops/api-gateway/config"
	"github.com/gamebay/retail-ops/api-gateway/loadbalancer"
	"github.com/gamebay/retail-ops/pkg/logger"
)

const maxAttempts = 3

// ReverseProxy forwards requests to the retail replica pool.
type ReverseProxy struct {
	config       *config.GatewayConfig
	client       *http.Client
	loadBalancer *loadbalancer.RoundRobin
}

// NewReverseProxy creates a new reverse proxy
func NewReverseProxy(cfg *config.GatewayConfig) *ReverseProxy {
	return &ReverseProxy{
		config:       cfg,
		loadBalancer: loadbalancer.NewRoundRobin(cfg.Backend.Instances),
		client: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
	}
}

// ProxyRequest forwards the request to a backend instance. Network failures
// are retried against the next instance in the pool.
func (p *ReverseProxy) ProxyRequest(c *fiber.Ctx) error {
	attempts := maxAttempts
	if n := len(p.loadBalancer.Instances()); n < attempts {
		attempts = n
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		instance := p.loadBalancer.Next()
		if instance == "" {
			break
		}

		targetURL := p.buildTargetURL(c, instance)

		req, err := http.NewRequestWithContext(
			c.UserContext(),
			c.Method(),
			targetURL,
			bytes.NewReader(c.Body()),
		)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create request",
			})
		}
		p.copyHeaders(c, req)

		resp, err := p.client.Do(req)
		if err != nil {
			lastErr = err
			logger.Logger.Warn().
				Err(err).
				Str("instance", instance).
				Int("attempt", attempt+1).
				Msg("Backend instance unreachable, trying next")
			continue
		}
		defer resp.Body.Close()

		p.copyResponseHeaders(c, resp)
		c.Status(resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to read response",
			})
		}
		return c.Send(body)
	}

	details := "no instances available"
	if lastErr != nil {
		details = lastErr.Error()
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error":   "Failed to reach backend service",
		"service": p.config.Backend.Name,
		"details": details,
	})
}

// LoadBalancer returns the instance pool (for stats)
func (p *ReverseProxy) LoadBalancer() *loadbalancer.RoundRobin {
	return p.loadBalancer
}

func (p *ReverseProxy) buildTargetURL(c *fiber.Ctx, instance string) string {
	path := string(c.Request().URI().Path())

	queryString := string(c.Request().URI().QueryString())
	if queryString != "" {
		queryString = "?" + queryString
	}

	return instance + path + queryString
}

// copyHeaders copies relevant headers from Fiber context to http.Request
func (p *ReverseProxy) copyHeaders(c *fiber.Ctx, req *http.Request) {
	c.Request().Header.VisitAll(func(key, value []byte) {
		if strings.ToLower(string(key)) == "host" {
			return
		}
		req.Header.Set(string(key), string(value))
	})

	req.Header.Set("X-Forwarded-For", c.IP())
	req.Header.Set("X-Forwarded-Proto", c.Protocol())
	req.Header.Set("X-Forwarded-Host", c.Hostname())
}

// copyResponseHeaders copies headers from http.Response to Fiber context
func (p *ReverseProxy) copyResponseHeaders(c *fiber.Ctx, resp *http.Response) {
	for key, values := range resp.Header {
		if strings.ToLower(key) == "content-length" {
			continue
		}
		for _, value := range values {
			c.Set(key, value)
		}
	}
}
