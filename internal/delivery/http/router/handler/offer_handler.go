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
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler holds dependencies for offer-related handlers
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// OfferRosterRequest represents the request body for helped-user roster operations.
type OfferRosterRequest struct {
	OfferID      uuid.UUID  `json:"offerId" validate:"required"`
	HelpedUserID *uuid.UUID `json:"helpedUserId"`
}

// Create handles opening a new offer.
func (h *OfferHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req CreateHelpRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid offer input")
	}

	offer, err := h.offerUC.Create(c.Request().Context(), userID, &usecase.CreateHelpRequestInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryIDs: req.CategoryIDs,
		Location:    req.location(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusCreated, offer)
}

// GetByID handles retrieving one offer with joined owner and categories.
func (h *OfferHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrOfferNotFound)
	}

	detail, err := h.offerUC.GetDetail(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, detail)
}

// ListByUser handles retrieving the caller's active offers.
func (h *OfferHandler) ListByUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	offers, err := h.offerUC.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, offers)
}

// List handles the proximity search over open offers.
func (h *OfferHandler) List(c echo.Context) error {
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

	offers, err := h.offerUC.ListNearby(c.Request().Context(), userID, ref, categoryIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, offers)
}

// ListByHelpedUser handles retrieving the offers helping a given user.
func (h *OfferHandler) ListByHelpedUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrUserNotFound)
	}

	offers, err := h.offerUC.ListByHelpedUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, offers)
}

// AddPossibleHelpedUser handles a user asking to be helped by an offer.
// The candidate is always the authenticated caller.
func (h *OfferHandler) AddPossibleHelpedUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req OfferRosterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid roster input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid roster input")
	}

	offer, err := h.offerUC.AddPossibleHelpedUser(c.Request().Context(), req.OfferID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, offer)
}

// ChooseHelpedUser handles the owner accepting a candidate as a helped user.
func (h *OfferHandler) ChooseHelpedUser(c echo.Context) error {
	var req OfferRosterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid roster input")
	}

	if err := c.Validate(&req); err != nil || req.HelpedUserID == nil {
		return response.BadRequest(c, "Invalid roster input")
	}

	offer, err := h.offerUC.ChooseHelpedUser(c.Request().Context(), req.OfferID, *req.HelpedUserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, offer)
}

// Finish handles the owner closing an offer.
func (h *OfferHandler) Finish(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("offerId"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrOfferNotFound)
	}

	offer, err := h.offerUC.Finish(c.Request().Context(), id, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, offer)
}
