package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

// MealHandler handles HTTP requests for meal capture and retrieval.
type MealHandler struct {
	service ports.MealService
}

func NewMealHandler(service ports.MealService) *MealHandler {
	return &MealHandler{service: service}
}

// Capture handles POST /v1/meals. A repeated Idempotency-Key returns the
// previously captured meal with 200 instead of 201.
//
// @Summary      Capture a meal
// @Tags         meals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string              false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      captureMealRequest  true   "Meal details"
// @Success      201              {object}  mealResponse
// @Failure      400              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/meals [post]
func (h *MealHandler) Capture(c echo.Context) error {
	var req captureMealRequest
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

	result, err := h.service.CaptureMeal(c.Request().Context(), ports.CaptureMealInput{
		UserID:      callerID,
		Name:        req.Name,
		Description: req.Description,
		Macros: domain.Macros{
			Calories: req.Macros.Calories,
			ProteinG: req.Macros.ProteinG,
			CarbsG:   req.Macros.CarbsG,
			FatG:     req.Macros.FatG,
		},
		ConsumedAt:     req.ConsumedAt,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, toMealResponse(result.Meal))
}

// Get handles GET /v1/meals/:id, scoped to the caller.
//
// @Summary      Get a meal by id
// @Tags         meals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meal id"
// @Success      200  {object}  mealResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/meals/{id} [get]
func (h *MealHandler) Get(c echo.Context) error {
	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	meal, err := h.service.GetMeal(c.Request().Context(), c.Param("id"), callerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMealResponse(meal))
}

// List handles GET /v1/meals?date=YYYY-MM-DD (default today, UTC).
//
// @Summary      List meals for a day
// @Tags         meals
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Day in YYYY-MM-DD (default today)"
// @Success      200   {object}  mealListResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/meals [get]
func (h *MealHandler) List(c echo.Context) error {
	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	day := time.Now().UTC()
	if raw := c.QueryParam("date"); raw != "" {
		day, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
	}

	meals, err := h.service.ListMeals(c.Request().Context(), callerID, day)
	if err != nil {
		return err
	}

	items := make([]mealResponse, len(meals))
	for i, m := range meals {
		items[i] = toMealResponse(m)
	}
	return c.JSON(http.StatusOK, mealListResponse{Data: items})
}

func toMealResponse(m *domain.Meal) mealResponse {
	return mealResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Macros: macrosResponse{
			Calories: m.Macros.Calories,
			ProteinG: m.Macros.ProteinG,
			CarbsG:   m.Macros.CarbsG,
			FatG:     m.Macros.FatG,
		},
		ConsumedAt: m.ConsumedAt.UTC(),
		CreatedAt:  m.CreatedAt.UTC(),
	}
}
