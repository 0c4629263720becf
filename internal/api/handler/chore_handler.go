package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/choremarket/chore-api/internal/core/domain"
	"github.com/choremarket/chore-api/internal/core/ports"
)

// ChoreHandler handles HTTP requests for chore lifecycle operations.
type ChoreHandler struct {
	chores ports.ChoreService
}

func NewChoreHandler(chores ports.ChoreService) *ChoreHandler {
	return &ChoreHandler{chores: chores}
}

// Create handles POST /chores (requester only).
//
// @Summary      Post a new chore
// @Tags         chores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createChoreRequest  true  "Chore details"
// @Success      201   {object}  choreResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /chores [post]
func (h *ChoreHandler) Create(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createChoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.CreateChoreInput{
		RequesterID:   accountID,
		Title:         req.Title,
		Description:   req.Description,
		PaymentAmount: req.PaymentAmount,
	}
	if req.Location != nil {
		input.Location = &domain.Coordinate{Lat: req.Location.Lat, Lon: req.Location.Lon}
	}

	chore, err := h.chores.Create(c.Request().Context(), input)
	if err != nil {
		return choreError(c, err)
	}

	return c.JSON(http.StatusCreated, toChoreResponse(chore))
}

// Pay handles POST /chores/:id/pay (owning requester only).
//
// @Summary      Confirm payment for a pending chore
// @Tags         chores
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Chore id"
// @Success      200  {object}  choreResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /chores/{id}/pay [post]
func (h *ChoreHandler) Pay(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	chore, err := h.chores.MarkPaid(c.Request().Context(), c.Param("id"), accountID)
	if err != nil {
		return choreError(c, err)
	}
	return c.JSON(http.StatusOK, toChoreResponse(chore))
}

// Assign handles POST /chores/:id/assign (any provider).
//
// @Summary      Claim a paid chore
// @Tags         chores
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Chore id"
// @Success      200  {object}  choreResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /chores/{id}/assign [post]
func (h *ChoreHandler) Assign(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	chore, err := h.chores.Claim(c.Request().Context(), c.Param("id"), accountID)
	if err != nil {
		return choreError(c, err)
	}
	return c.JSON(http.StatusOK, toChoreResponse(chore))
}

// Complete handles POST /chores/:id/complete (assigned provider only).
//
// @Summary      Mark an assigned chore completed
// @Tags         chores
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Chore id"
// @Success      200  {object}  choreResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /chores/{id}/complete [post]
func (h *ChoreHandler) Complete(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	chore, err := h.chores.MarkComplete(c.Request().Context(), c.Param("id"), accountID)
	if err != nil {
		return choreError(c, err)
	}
	return c.JSON(http.StatusOK, toChoreResponse(chore))
}

// List handles GET /chores.
//
// Requesters get their own chores (any status); passing another account's
// ownerId is forbidden. Providers get paid chores, optionally filtered by
// proximity to ?lat&lon.
//
// @Summary      List chores
// @Tags         chores
// @Produce      json
// @Security     BearerAuth
// @Param        ownerId  query     string   false  "Requester account id (requesters only)"
// @Param        lat      query     number   false  "Provider latitude"
// @Param        lon      query     number   false  "Provider longitude"
// @Success      200  {array}   choreResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /chores [get]
func (h *ChoreHandler) List(c echo.Context) error {
	accountID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ownerID := c.QueryParam("ownerId")
	if role == domain.RoleRequester || ownerID != "" {
		if ownerID == "" {
			ownerID = accountID
		}
		if role != domain.RoleRequester || ownerID != accountID {
			return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
		}

		chores, err := h.chores.ListForRequester(c.Request().Context(), ownerID)
		if err != nil {
			return choreError(c, err)
		}
		return c.JSON(http.StatusOK, toChoreResponses(chores))
	}

	near, err := nearFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	chores, err := h.chores.ListAvailable(c.Request().Context(), ports.ListAvailableInput{Near: near})
	if err != nil {
		return choreError(c, err)
	}
	return c.JSON(http.StatusOK, toChoreResponses(chores))
}

// nearFromQuery parses the optional lat/lon pair. Both must be present or
// both absent.
func nearFromQuery(c echo.Context) (*domain.Coordinate, error) {
	latStr := c.QueryParam("lat")
	lonStr := c.QueryParam("lon")
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, errors.New("lat and lon must be provided together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errors.New("lat must be a decimal degree value")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, errors.New("lon must be a decimal degree value")
	}
	return &domain.Coordinate{Lat: lat, Lon: lon}, nil
}

// choreError maps domain errors onto the wire contract.
func choreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrChoreNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "chore not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
