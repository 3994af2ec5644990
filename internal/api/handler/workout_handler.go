package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

// WorkoutHandler handles HTTP requests for workout logging.
type WorkoutHandler struct {
	service ports.WorkoutService
}

func NewWorkoutHandler(service ports.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

// Log handles POST /v1/workouts.
//
// @Summary      Log a workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      logWorkoutRequest  true  "Workout entry"
// @Success      201   {object}  workoutResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/workouts [post]
func (h *WorkoutHandler) Log(c echo.Context) error {
	var req logWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	workout, err := h.service.LogWorkout(c.Request().Context(), ports.LogWorkoutInput{
		UserID:         callerID,
		Type:           req.Type,
		DurationMin:    req.DurationMin,
		CaloriesBurned: req.CaloriesBurned,
		Notes:          req.Notes,
		PerformedAt:    req.PerformedAt,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toWorkoutResponse(workout))
}

// List handles GET /v1/workouts?limit=N (most recent first).
//
// @Summary      List recent workouts
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 20, cap 100)"
// @Success      200    {object}  workoutListResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/workouts [get]
func (h *WorkoutHandler) List(c echo.Context) error {
	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	workouts, err := h.service.ListWorkouts(c.Request().Context(), callerID, limit)
	if err != nil {
		return err
	}

	items := make([]workoutResponse, len(workouts))
	for i, w := range workouts {
		items[i] = toWorkoutResponse(w)
	}
	return c.JSON(http.StatusOK, workoutListResponse{Data: items})
}

func toWorkoutResponse(w *domain.Workout) workoutResponse {
	return workoutResponse{
		ID:             w.ID,
		Type:           w.Type,
		DurationMin:    w.DurationMin,
		CaloriesBurned: w.CaloriesBurned,
		Notes:          w.Notes,
		PerformedAt:    w.PerformedAt.UTC(),
	}
}
