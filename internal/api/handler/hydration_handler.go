package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

// IntakeDispatcher is the interface the handler uses to enqueue sync events.
type IntakeDispatcher interface {
	Enqueue(event ports.IntakeEventInput)
	EnqueueBatch(events []ports.IntakeEventInput)
}

// HydrationHandler handles water logging, daily totals, and offline sync.
type HydrationHandler struct {
	service    ports.HydrationService
	dispatcher IntakeDispatcher
}

func NewHydrationHandler(service ports.HydrationService, dispatcher IntakeDispatcher) *HydrationHandler {
	return &HydrationHandler{service: service, dispatcher: dispatcher}
}

// Log handles POST /v1/hydration — record a single water intake entry.
//
// @Summary      Log water intake
// @Tags         hydration
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      logWaterRequest  true  "Water log entry"
// @Success      201   {object}  waterLogResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/hydration [post]
func (h *HydrationHandler) Log(c echo.Context) error {
	var req logWaterRequest
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

	log, err := h.service.LogWater(c.Request().Context(), ports.LogWaterInput{
		UserID:   callerID,
		AmountML: req.AmountML,
		LoggedAt: req.LoggedAt,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, waterLogResponse{
		ID:       log.ID,
		AmountML: log.AmountML,
		Source:   log.Source,
		LoggedAt: log.LoggedAt,
	})
}

// Total handles GET /v1/hydration/total?date=YYYY-MM-DD (default today, UTC).
//
// @Summary      Daily hydration total
// @Tags         hydration
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Day in YYYY-MM-DD (default today)"
// @Success      200   {object}  dailyTotalResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/hydration/total [get]
func (h *HydrationHandler) Total(c echo.Context) error {
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

	total, err := h.service.DailyTotal(c.Request().Context(), callerID, day)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dailyTotalResponse{
		Date:    total.Date,
		TotalML: total.TotalML,
		Entries: total.Entries,
	})
}

// Sync handles POST /v1/hydration/sync — enqueues a batch of offline events
// for the authenticated user, returns 202. Processing is asynchronous and
// idempotent; clients may safely resend the whole batch.
//
// @Summary      Sync a batch of offline hydration events
// @Tags         hydration
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []intakeEventRequest  true  "Array of hydration events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/hydration/sync [post]
func (h *HydrationHandler) Sync(c echo.Context) error {
	var reqs []intakeEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	inputs := make([]ports.IntakeEventInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("event[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, ports.IntakeEventInput{
			UserID:   callerID,
			AmountML: req.AmountML,
			LoggedAt: req.LoggedAt,
			Source:   req.Source,
		})
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "events accepted",
		Count:   len(inputs),
	})
}
