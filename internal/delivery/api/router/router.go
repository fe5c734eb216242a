// Package router contains routing for the API delivery.
package router

import (
	"famhealth/internal/delivery/api/middleware"
	"famhealth/internal/delivery/api/router/handler"
	"famhealth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccessHandler  *handler.AccessHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
	GateMiddleware *middleware.GateMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accessHandler  *handler.AccessHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
	gateMiddleware *middleware.GateMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accessHandler:  params.AccessHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
		gateMiddleware: params.GateMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Public routes are registered without the gate.
	e.GET("/health", handler.HealthCheck)

	withDevice := r.gateMiddleware.Require(usecase.AccessOptions{RequireDevice: true, EnforceDeviceLimit: true})

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/access", r.accessHandler.GetAccess, withDevice)
	apiV1.GET("/subscription", r.accessHandler.GetSubscription, r.gateMiddleware.Require(usecase.AccessOptions{}))

	devicesGroup := apiV1.Group("/devices", withDevice)
	{
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.DELETE("/:deviceId", r.deviceHandler.RevokeDevice)
	}

	profilesGroup := apiV1.Group("/profiles")
	{
		profilesGroup.GET("/:profileId/access", r.accessHandler.GetAccess,
			r.gateMiddleware.RequireProfileRole(usecase.AccessOptions{RequireDevice: true, EnforceDeviceLimit: true}, "profileId"))
	}
}
