// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mutualaid/internal/delivery/http/middleware"
	"mutualaid/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	HelpHandler     *handler.HelpHandler
	OfferHandler    *handler.OfferHandler
	CategoryHandler *handler.CategoryHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	helpHandler     *handler.HelpHandler
	offerHandler    *handler.OfferHandler
	categoryHandler *handler.CategoryHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		helpHandler:     params.HelpHandler,
		offerHandler:    params.OfferHandler,
		categoryHandler: params.CategoryHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Category catalog, read-only and public
	categoryGroup := e.Group("/category")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/:id", r.categoryHandler.GetByID)
	}

	// Help request routes
	helpGroup := e.Group("/help")
	helpGroup.Use(r.authMiddleware.Authenticate)
	{
		helpGroup.POST("", r.helpHandler.Create)
		helpGroup.GET("/byId/:id", r.helpHandler.GetByID)
		helpGroup.GET("/user", r.helpHandler.ListByUser)
		helpGroup.GET("/listWaiting", r.helpHandler.ListWaiting)
		helpGroup.GET("/listbyStatus", r.helpHandler.ListByStatus)
		helpGroup.DELETE("/:id", r.helpHandler.Deactivate)
		helpGroup.PUT("/possibleHelpers", r.helpHandler.AddPossibleHelper)
		helpGroup.PUT("/chooseHelper", r.helpHandler.ChooseHelper)
		helpGroup.PUT("/helperConfirmation", r.helpHandler.HelperConfirmation)
		helpGroup.PUT("/ownerConfirmation", r.helpHandler.OwnerConfirmation)
	}

	// Offer routes
	offerGroup := e.Group("/offer")
	offerGroup.Use(r.authMiddleware.Authenticate)
	{
		offerGroup.POST("", r.offerHandler.Create)
		offerGroup.GET("/byId/:id", r.offerHandler.GetByID)
		offerGroup.GET("/user", r.offerHandler.ListByUser)
		offerGroup.GET("/list", r.offerHandler.List)
		offerGroup.GET("/listByHelpedUser/:id", r.offerHandler.ListByHelpedUser)
		offerGroup.PUT("/possibleHelpedUsers", r.offerHandler.AddPossibleHelpedUser)
		offerGroup.PUT("/chooseHelpedUsers", r.offerHandler.ChooseHelpedUser)
		offerGroup.DELETE("/:offerId", r.offerHandler.Finish)
	}
}
