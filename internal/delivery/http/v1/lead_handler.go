package v1

import (
	"go-leadform-backend/internal/delivery/http/response"
	"go-leadform-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	leadUC domain.LeadUsecase
}

// NewLeadHandler registers the lead intake route (public, no auth required)
func NewLeadHandler(api *gin.RouterGroup, leadUC domain.LeadUsecase) {
	handler := &LeadHandler{
		leadUC: leadUC,
	}

	api.POST("/lead", handler.SubmitLead)
}

// SubmitLead godoc
// @Summary      Submit Lead Form
// @Description  Validate a lead submission and forward it to the configured Telegram chat. This is a public endpoint.
// @Tags         lead
// @Accept       json
// @Produce      json
// @Param        lead  body      domain.Lead  true  "Lead Form Data"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /api/lead [post]
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	// Bind into a loose map: clients may omit fields or send non-string
	// values, which are coerced to text before validation. A body that is
	// not a JSON object at all is an unexpected error, not a validation one.
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(err)
		return
	}

	lead := domain.LeadFromPayload(payload)
	if err := h.leadUC.Submit(c.Request.Context(), &lead); err != nil {
		c.Error(err)
		return
	}

	response.OK(c)
}
