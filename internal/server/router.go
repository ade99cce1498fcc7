// Package server assembles the Gin engine: middleware chain, diagnostic
// routes, and the summarization endpoint.
package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/StrategicTender/summarizer-backend-v0.2/internal/llm"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/llm/openai"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/config"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/metrics"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/server/middleware"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/server/respond"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/telemetry"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/summarize"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)
	if cfg.RateLimitRPM > 0 {
		rule := middleware.RateLimitRule{
			Rate:  float64(cfg.RateLimitRPM) / 60.0,
			Burst: cfg.RateLimitRPM,
		}
		r.Use(middleware.RateLimit(rule, middleware.NewRateLimiter(nil)))
	}

	// Dependencies
	var llmClient llm.Client
	if cfg.LLMEnabled() {
		client, err := openai.NewClient(cfg.OpenAIKey, cfg.LLMModel, cfg.OpenAIBaseURL)
		if err != nil {
			telemetry.Error("llm.client_init_failed", map[string]any{"error": err.Error()})
		} else {
			llmClient = client
		}
	}
	svc := summarize.New(cfg, llmClient)
	handler := summarize.NewHandler(svc)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", metrics.Handler())
	r.GET("/routes", func(c *gin.Context) {
		routes := make([]string, 0, len(r.Routes()))
		for _, info := range r.Routes() {
			routes = append(routes, fmt.Sprintf("%s %s", info.Method, info.Path))
		}
		sort.Strings(routes)
		respond.JSON(c, http.StatusOK, gin.H{"routes": routes})
	})
	r.GET("/whoami", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"entrypoint": "summarizer-backend",
			"revision":   cfg.Revision,
			"engine":     cfg.DefaultEngine,
			"llm":        cfg.LLMEnabled(),
		})
	})
	handler.RegisterRoutes(r)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
