package api

import (
	"fitsync/fitsync-ai/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PlanHandler serves plan generation.
type PlanHandler struct {
	planService service.PlanService
}

func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// PlanResponse is the success body.
type PlanResponse struct {
	FitnessPlan string `json:"fitness_plan"`
}

// ErrorResponse is the failure body. Error carries the underlying message verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GenerateFitnessPlan godoc
// @Summary Generate a fitness plan
// @Description Embeds any JSON body into the trainer prompt and returns the model's text.
// @Accept json
// @Produce json
// @Param profile body object true "User profile (any JSON value)"
// @Success 200 {object} PlanResponse
// @Failure 500 {object} ErrorResponse "Unparsable body or model failure"
// @Router /generate_fitness_plan [post]
func (h *PlanHandler) GenerateFitnessPlan(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), body)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).
			Str("kind", string(service.KindOf(err))).
			Msg("Plan generation failed")
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, PlanResponse{FitnessPlan: plan})
}
