package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"InvestorClassifier/internal/config"
	"InvestorClassifier/internal/scoring"
)

// NewRouter wires middleware, the classification handler and, when
// enabled, the Prometheus endpoint.
func NewRouter(cfg *config.Config, log *zap.Logger, engine *scoring.Engine) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(RequestID(), Logger(log), Recovery(log), Metrics())
	if cfg.Server.RateLimitPerMinute > 0 {
		r.Use(RateLimit(cfg.Server.RateLimitPerMinute))
	}
	r.SetHTMLTemplate(loadTemplates())

	h := &Handler{Engine: engine, Log: log}
	h.Register(r)

	if cfg.Metrics.On() {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	return r
}
