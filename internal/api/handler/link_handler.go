package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

// LinkHandler handles HTTP requests for client-nutritionist links.
type LinkHandler struct {
	service ports.LinkService
}

func NewLinkHandler(service ports.LinkService) *LinkHandler {
	return &LinkHandler{service: service}
}

// Request handles POST /v1/links — a client requests a link to a nutritionist.
//
// @Summary      Request a link to a nutritionist
// @Tags         links
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      requestLinkRequest  true  "Link request"
// @Success      201   {object}  linkResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/links [post]
func (h *LinkHandler) Request(c echo.Context) error {
	var req requestLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.RequestLink(c.Request().Context(), ports.RequestLinkInput{
		ClientID:       callerID,
		NutritionistID: req.NutritionistID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toLinkResponse(result))
}

// Accept handles POST /v1/links/:id/accept.
//
// @Summary      Accept a pending link request
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Link id"
// @Success      200  {object}  linkResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/links/{id}/accept [post]
func (h *LinkHandler) Accept(c echo.Context) error {
	return h.decide(c, h.service.AcceptLink)
}

// Reject handles POST /v1/links/:id/reject.
//
// @Summary      Reject a pending link request
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Link id"
// @Success      200  {object}  linkResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/links/{id}/reject [post]
func (h *LinkHandler) Reject(c echo.Context) error {
	return h.decide(c, h.service.RejectLink)
}

// End handles POST /v1/links/:id/end — either party may end an accepted link.
//
// @Summary      End an accepted link
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Link id"
// @Success      200  {object}  linkResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/links/{id}/end [post]
func (h *LinkHandler) End(c echo.Context) error {
	return h.decide(c, h.service.EndLink)
}

func (h *LinkHandler) decide(
	c echo.Context,
	op func(ctx context.Context, input ports.LinkDecisionInput) (*ports.LinkResult, error),
) error {
	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := op(c.Request().Context(), ports.LinkDecisionInput{
		LinkID:   c.Param("id"),
		CallerID: callerID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toLinkResponse(result))
}

// ListPending handles GET /v1/links/pending — the client's outstanding requests.
//
// @Summary      List my pending link requests
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  linkListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/links/pending [get]
func (h *LinkHandler) ListPending(c echo.Context) error {
	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	results, err := h.service.ListPendingRequests(c.Request().Context(), callerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toLinkListResponse(results))
}

// ListClients handles GET /v1/links/clients — the nutritionist's accepted clients.
//
// @Summary      List my linked clients
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  linkedClientListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/links/clients [get]
func (h *LinkHandler) ListClients(c echo.Context) error {
	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	clients, err := h.service.ListClients(c.Request().Context(), callerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toLinkedClientListResponse(clients))
}

// Search handles GET /v1/nutritionists/search?email= — resolve a nutritionist
// by email. An existing identity with a different role reads as not found.
//
// @Summary      Search a nutritionist by email
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  true  "Email to search"
// @Success      200    {object}  counterpartResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/nutritionists/search [get]
func (h *LinkHandler) Search(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	counterpart, err := h.service.SearchNutritionist(c.Request().Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, counterpartResponse{
		ID:    counterpart.ID,
		Name:  counterpart.Name,
		Email: counterpart.Email,
	})
}
