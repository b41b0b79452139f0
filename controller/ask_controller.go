package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itish2003/giggle/models"
	"github.com/itish2003/giggle/services"
)

// AskController handles the HTTP requests for the Q&A API. It depends on the
// AskService to perform the actual work.
type AskController struct {
	askService services.AskService
	model      string
}

// NewAskController creates a new AskController. model is only reported by
// the health endpoint.
func NewAskController(service services.AskService, model string) *AskController {
	return &AskController{
		askService: service,
		model:      model,
	}
}

// Ask is the Gin handler for POST /ask.
func (c *AskController) Ask(ctx *gin.Context) {
	var req models.AskRequest

	// Bodies that fail binding never reach the service.
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Detail: validationIssues(err, req),
		})
		return
	}

	response, err := c.askService.Ask(ctx.Request.Context(), req)
	if err != nil {
		log.Printf("CONTROLLER [%s]: Returning 502: %v", services.RequestID(ctx.Request.Context()), err)
		ctx.JSON(http.StatusBadGateway, models.ErrorResponse{
			Detail: "Gemini error: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Healthz is the Gin handler for GET /healthz. It never touches the backend.
func (c *AskController) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.HealthResponse{
		OK:    true,
		Model: c.model,
	})
}
