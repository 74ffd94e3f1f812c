package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"interest-form/pkg/format"
	"interest-form/pkg/logger"
	"interest-form/pkg/models"
	"interest-form/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.LandingSubmissionService
	logger            *logger.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.LandingSubmissionService, logger *logger.Logger) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes wires every handler onto r
func (h *Handlers) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)

	api := r.Group("/api")
	api.GET("/fields", h.ListFields)
	api.POST("/format", h.FormatField)
	api.POST("/submissions", h.HandleLandingSubmission)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ListFields returns how each field is presented
func (h *Handlers) ListFields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": models.FieldSpecs(),
	})
}

// FormatField masks one keystroke for a field
func (h *Handlers) FormatField(c *gin.Context) {
	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	if !req.Field.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown field"})
		return
	}

	c.JSON(http.StatusOK, FormatResponse{
		Field: req.Field,
		Value: format.Field(req.Field, req.Value),
	})
}

// HandleLandingSubmission validates a completed form and hands it to the
// sink. Values may arrive unformatted; the sink receives them masked.
func (h *Handlers) HandleLandingSubmission(c *gin.Context) {
	var landingData models.FormState

	// The body is never logged, it holds the PIN
	if err := c.ShouldBindJSON(&landingData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	submission, problems, err := h.submissionService.ProcessLandingSubmission(c.Request.Context(), landingData)
	switch {
	case errors.Is(err, services.ErrInvalidForm):
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Errors: problems.Errors,
			Fields: problems.Fields,
		})
		return
	case err != nil:
		h.logger.SecureLog(err, "Failed to process submission", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Submission failed, please try again later"})
		return
	}

	c.JSON(http.StatusOK, SubmissionResponse{
		Status:  "success",
		ID:      submission.ID,
		Message: "Interest submitted!",
	})
}
