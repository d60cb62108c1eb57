package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/callfocus/internal/app/orch"
	"github.com/dkeye/callfocus/internal/domain"
)

const (
	DiscoveryPath   = "/_matrix/client/unstable/org.matrix.msc4143/rtc/transports"
	TokenPath       = "/rtk/get_token"
	LegacyTokenPath = "/livekit/get_token"
	RequestIDHeader = "X-Request-ID"

	DefaultReadLimit int64 = 32768
)

// TokenIssuer is satisfied by *orch.Orchestrator.
type TokenIssuer interface {
	IssueToken(ctx context.Context, req orch.TokenRequest) (domain.Credential, error)
}

type RouterConfig struct {
	Mode string
	// ServiceURL is the public origin advertised in discovery, without a trailing slash.
	ServiceURL string
	// CallConfig is nil when calls are disabled.
	CallConfig *domain.CallConfig
	// ReadLimit caps token request bodies; DefaultReadLimit when <= 0.
	ReadLimit int64
}

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Forwarded requests pass through the chain twice; log them once.
		if c.Writer.Header().Get(RequestIDHeader) != "" {
			c.Next()
			return
		}
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		method, path := c.Request.Method, c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Warn()
		}
		event.Str("module", "adapters.http").
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func SetupRouter(cfg RouterConfig, issuer TokenIssuer) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger())
	r.Use(gin.Recovery())

	readLimit := cfg.ReadLimit
	if readLimit <= 0 {
		readLimit = DefaultReadLimit
	}
	h := &tokenHandler{callConfig: cfg.CallConfig, issuer: issuer, readLimit: readLimit}

	r.GET(DiscoveryPath, discoveryHandler(cfg.CallConfig, cfg.ServiceURL))
	r.POST(TokenPath, h.issue)
	r.POST(LegacyTokenPath, func(c *gin.Context) {
		c.Request.URL.Path = TokenPath
		r.HandleContext(c)
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	log.Info().Str("module", "adapters.http").
		Bool("calls_enabled", cfg.CallConfig != nil && issuer != nil).
		Str("service_url", cfg.ServiceURL).
		Msg("router setup")
	return r
}
