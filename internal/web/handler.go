package web

import (
	"fmt"
	"net/http"

	"fitsync/fitsync-ai/internal/domain"
	"fitsync/fitsync-ai/internal/plantext"
	"fitsync/fitsync-ai/internal/service"
	"fitsync/fitsync-ai/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const recentPlansLimit = 20

// Handler serves the browser UI.
type Handler struct {
	sessions *session.Store
	planner  *service.Planner
	recorder service.PlanRecorder
}

func NewHandler(sessions *session.Store, planner *service.Planner, recorder service.PlanRecorder) *Handler {
	return &Handler{sessions: sessions, planner: planner, recorder: recorder}
}

// pageData feeds index.html.
type pageData struct {
	Profile       domain.Profile
	Workouts      []domain.WorkoutEntry
	Genders       []domain.Gender
	FitnessLevels []domain.FitnessLevel
	Exercises     []domain.Exercise
	Intensities   []domain.Intensity

	DefaultDuration int
	BMIForm         BMIForm
	BMI             string
	BMIError        string

	Plan     bool
	Sections []plantext.Section
	Error    string
	Warning  string
	Success  string
}

func (h *Handler) page(state *session.State) pageData {
	return pageData{
		Profile:         state.Profile(),
		Workouts:        state.Workouts(),
		Genders:         domain.Genders,
		FitnessLevels:   domain.FitnessLevels,
		Exercises:       domain.Exercises,
		Intensities:     domain.Intensities,
		DefaultDuration: domain.DefaultWorkoutDuration,
		BMIForm:         BMIForm{Feet: 5, Inches: 7},
	}
}

func (h *Handler) loadState(c *gin.Context) (*session.State, bool) {
	state, err := h.sessions.Load(c.Writer, c.Request)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("Failed to load session")
		c.String(http.StatusInternalServerError, "session error")
		return nil, false
	}
	return state, true
}

// Index renders the form with the session's current values.
func (h *Handler) Index(c *gin.Context) {
	state, ok := h.loadState(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "index.html", h.page(state))
}

// SaveProfile stores the submitted profile fields in the session.
func (h *Handler) SaveProfile(c *gin.Context) {
	state, ok := h.loadState(c)
	if !ok {
		return
	}
	h.bindProfile(c, state)
	c.Redirect(http.StatusSeeOther, "/#user_data")
}

// AddWorkout appends one entry to the session's workout history.
func (h *Handler) AddWorkout(c *gin.Context) {
	state, ok := h.loadState(c)
	if !ok {
		return
	}
	var form WorkoutForm
	if err := c.ShouldBind(&form); err != nil {
		log.Ctx(c.Request.Context()).Debug().Err(err).Msg("Unreadable workout form, using defaults")
	}
	state.AddWorkout(form.toEntry())
	c.Redirect(http.StatusSeeOther, "/#user_data")
}

// GeneratePlan saves the profile, asks the API for a plan, stores it, and renders it.
func (h *Handler) GeneratePlan(c *gin.Context) {
	state, ok := h.loadState(c)
	if !ok {
		return
	}
	h.bindProfile(c, state)

	outcome := h.planner.Run(c.Request.Context(), state.UserData())

	data := h.page(state)
	switch {
	case outcome.Err != nil:
		data.Error = outcome.Err.Error()
	default:
		data.Plan = true
		data.Sections = outcome.Sections
		if outcome.StoreErr != nil {
			data.Warning = fmt.Sprintf("Error inserting data into MongoDB: %v", outcome.StoreErr)
		} else {
			data.Success = "Response successfully saved to MongoDB!"
		}
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// CalculateBMI renders the page with a BMI computed from weight and feet/inches.
func (h *Handler) CalculateBMI(c *gin.Context) {
	state, ok := h.loadState(c)
	if !ok {
		return
	}
	data := h.page(state)

	var form BMIForm
	if err := c.ShouldBind(&form); err != nil {
		data.BMIError = "Height must be 1-8 feet and 0-11 inches."
		c.HTML(http.StatusOK, "index.html", data)
		return
	}
	data.BMIForm = form

	bmi, err := domain.BMI(form.Weight, domain.HeightFromFeet(form.Feet, form.Inches))
	if err != nil {
		data.BMIError = err.Error()
	} else {
		data.BMI = fmt.Sprintf("%.2f", bmi)
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// Reset ends the session; the next page load starts over with defaults.
func (h *Handler) Reset(c *gin.Context) {
	if err := h.sessions.Discard(c.Writer, c.Request); err != nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Msg("Failed to expire session cookie")
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// RecentPlans lists stored plans, newest first.
func (h *Handler) RecentPlans(c *gin.Context) {
	plans, err := h.recorder.Recent(c.Request.Context(), recentPlansLimit)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("Failed to list plans")
		c.HTML(http.StatusOK, "plans.html", gin.H{"Error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "plans.html", gin.H{"Plans": plans})
}

func (h *Handler) bindProfile(c *gin.Context, state *session.State) {
	form := ProfileForm{}
	if err := c.ShouldBind(&form); err != nil {
		log.Ctx(c.Request.Context()).Debug().Err(err).Msg("Unreadable profile form, keeping session values")
		return
	}
	state.SetProfile(form.toProfile())
}
