package handler

import (
	"log/slog"
	"net/http"

	"mutualaid/internal/delivery/http/middleware"
	"mutualaid/internal/delivery/http/response"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// HelpHandlerParams holds dependencies for HelpHandler, injected by Fx.
type HelpHandlerParams struct {
	fx.In

	HelpUC usecase.HelpRequestUsecase
	Logger *slog.Logger
}

// HelpHandler holds dependencies for help-request-related handlers
type HelpHandler struct {
	helpUC usecase.HelpRequestUsecase
	logger *slog.Logger
}

// NewHelpHandler is the constructor for HelpHandler
func NewHelpHandler(params HelpHandlerParams) *HelpHandler {
	return &HelpHandler{
		helpUC: params.HelpUC,
		logger: params.Logger,
	}
}

// CreateHelpRequest represents the request body for opening a help request or offer.
type CreateHelpRequest struct {
	Title       string      `json:"title" validate:"required,max=100"`
	Description string      `json:"description" validate:"max=300"`
	CategoryIDs []uuid.UUID `json:"categoryIds"`
	Longitude   *float64    `json:"longitude"`
	Latitude    *float64    `json:"latitude"`
}

// location assembles the optional coordinate from the body pair.
func (r *CreateHelpRequest) location() *orb.Point {
	if r.Longitude == nil || r.Latitude == nil {
		return nil
	}

	point := orb.Point{*r.Longitude, *r.Latitude}

	return &point
}

// RosterRequest represents the request body for candidate roster operations.
type RosterRequest struct {
	HelpID   uuid.UUID  `json:"helpId" validate:"required"`
	HelperID *uuid.UUID `json:"helperId"`
}

// Create handles opening a new help request.
func (h *HelpHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req CreateHelpRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid help request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid help request input")
	}

	help, err := h.helpUC.Create(c.Request().Context(), userID, &usecase.CreateHelpRequestInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryIDs: req.CategoryIDs,
		Location:    req.location(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusCreated, help)
}

// GetByID handles retrieving one help request with joined owner and categories.
func (h *HelpHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrHelpRequestNotFound)
	}

	detail, err := h.helpUC.GetDetail(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, detail)
}

// ListByUser handles retrieving the caller's active help requests.
func (h *HelpHandler) ListByUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	helps, err := h.helpUC.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, helps)
}

// ListWaiting handles the proximity search over open help requests.
func (h *HelpHandler) ListWaiting(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	coordsRaw := c.QueryParam("coords")
	if coordsRaw == "" {
		return response.HandleAppError(c, domainerrors.ErrCoordinatesRequired)
	}

	ref, err := parseCoords(coordsRaw)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categoryIDs, err := parseUUIDList(c.QueryParam("categoryId"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrCategoryNotFound)
	}

	helps, err := h.helpUC.ListWaitingNearby(c.Request().Context(), userID, ref, categoryIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, helps)
}

// ListByStatus handles retrieving the caller's help requests filtered by status.
func (h *HelpHandler) ListByStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	statuses := splitList(c.QueryParam("statusList"))
	if len(statuses) == 0 {
		return response.HandleAppError(c, domainerrors.ErrStatusListRequired)
	}

	helps, err := h.helpUC.ListByStatuses(c.Request().Context(), userID, statuses)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, helps)
}

// Deactivate handles retiring a help request from matching.
func (h *HelpHandler) Deactivate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrHelpRequestNotFound)
	}

	help, err := h.helpUC.Deactivate(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, help)
}

// AddPossibleHelper handles a user volunteering for a help request.
// The candidate is always the authenticated caller.
func (h *HelpHandler) AddPossibleHelper(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req RosterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid roster input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid roster input")
	}

	help, err := h.helpUC.AddPossibleHelper(c.Request().Context(), req.HelpID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, help)
}

// ChooseHelper handles the owner promoting a candidate to the helper slot.
func (h *HelpHandler) ChooseHelper(c echo.Context) error {
	var req RosterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid roster input")
	}

	if err := c.Validate(&req); err != nil || req.HelperID == nil {
		return response.BadRequest(c, "Invalid roster input")
	}

	help, err := h.helpUC.ChooseHelper(c.Request().Context(), req.HelpID, *req.HelperID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, help)
}

// HelperConfirmation handles the helper confirming completion.
func (h *HelpHandler) HelperConfirmation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req RosterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid confirmation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid confirmation input")
	}

	help, err := h.helpUC.HelperConfirmation(c.Request().Context(), req.HelpID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, help)
}

// OwnerConfirmation handles the owner confirming completion.
func (h *HelpHandler) OwnerConfirmation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req RosterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid confirmation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid confirmation input")
	}

	help, err := h.helpUC.OwnerConfirmation(c.Request().Context(), req.HelpID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, help)
}
