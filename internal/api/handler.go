package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"InvestorClassifier/internal/metrics"
	"InvestorClassifier/internal/model"
	"InvestorClassifier/internal/scoring"
)

// Handler serves the classification endpoints and the web form.
type Handler struct {
	Engine *scoring.Engine
	Log    *zap.Logger
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.health)
	r.POST("/classify", h.classify)
	r.GET("/", h.index)
	r.POST("/form", h.submitForm)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "validation failed", validationDetails(err))
		return
	}

	res := h.run(c, "api", req.ToProfile())
	c.JSON(http.StatusOK, res)
}

// run classifies p and records the outcome.
func (h *Handler) run(c *gin.Context, source string, p model.InvestorProfile) model.ClassificationResult {
	res := h.Engine.Classify(p)
	metrics.ObserveClassification(source, string(res.Profile), res.Score)
	requestLogger(c, h.Log).Debug("classified",
		zap.String("source", source),
		zap.String("profile", string(res.Profile)),
		zap.Float64("score", res.Score),
	)
	return res
}

// respondError sends the standard error envelope.
func respondError(c *gin.Context, status int, message string, details any) {
	c.JSON(status, gin.H{
		"error":      message,
		"details":    details,
		"request_id": c.GetString(requestIDKey),
	})
}
