// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"macrolog/internal/delivery/api/middleware"
	"macrolog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ProfileHandler     *handler.ProfileHandler
	DailyLogHandler    *handler.DailyLogHandler
	MealPlanHandler    *handler.MealPlanHandler
	PlannedFoodHandler *handler.PlannedFoodHandler
	CustomFoodHandler  *handler.CustomFoodHandler
	ExportHandler      *handler.ExportHandler
	HealthHandler      *handler.HealthHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	dailyLogHandler    *handler.DailyLogHandler
	mealPlanHandler    *handler.MealPlanHandler
	plannedFoodHandler *handler.PlannedFoodHandler
	customFoodHandler  *handler.CustomFoodHandler
	exportHandler      *handler.ExportHandler
	healthHandler      *handler.HealthHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		profileHandler:     params.ProfileHandler,
		dailyLogHandler:    params.DailyLogHandler,
		mealPlanHandler:    params.MealPlanHandler,
		plannedFoodHandler: params.PlannedFoodHandler,
		customFoodHandler:  params.CustomFoodHandler,
		exportHandler:      params.ExportHandler,
		healthHandler:      params.HealthHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	apiV1 := e.Group("/api/v1")

	// Signup and signin are the only public routes.
	apiV1.POST("/auth", r.authHandler.Authenticate)
	apiV1.GET("/auth", r.authHandler.WhoAmI, r.authMiddleware.Authenticate)

	// Auth is attached per route. Group middleware would make echo add a
	// catch-all route that answers 404 where 405 is expected.
	authed := &authedRoutes{group: apiV1, auth: r.authMiddleware.Authenticate}

	// Profile
	authed.GET("/profile", r.profileHandler.GetProfile)
	authed.PUT("/profile", r.profileHandler.UpsertProfile)
	authed.POST("/profile", r.profileHandler.UpsertProfile)

	// Daily log and food entries
	authed.GET("/daily-log", r.dailyLogHandler.GetDailyLog)
	authed.GET("/daily-log/history", r.dailyLogHandler.GetHistory)
	authed.POST("/daily-log", r.dailyLogHandler.PostDailyLog)
	authed.PUT("/daily-log", r.dailyLogHandler.UpdateDailyLog)
	authed.DELETE("/daily-log", r.dailyLogHandler.DeleteEntry)
	authed.DELETE("/daily-log/entries/:id", r.dailyLogHandler.DeleteEntry)

	// Meal plans
	authed.GET("/meal-plans", r.mealPlanHandler.ListMealPlans)
	authed.POST("/meal-plans", r.mealPlanHandler.PostMealPlan)
	authed.PUT("/meal-plans/:id", r.mealPlanHandler.UpdateMealPlan)
	authed.DELETE("/meal-plans/:id", r.mealPlanHandler.DeleteMealPlan)

	// Planned foods
	authed.GET("/planned-foods", r.plannedFoodHandler.ListPlannedFoods)
	authed.POST("/planned-foods", r.plannedFoodHandler.CreatePlannedFood)
	authed.PUT("/planned-foods/:id", r.plannedFoodHandler.UpdatePlannedFood)
	authed.DELETE("/planned-foods/:id", r.plannedFoodHandler.DeletePlannedFood)

	// Custom foods
	authed.GET("/custom-foods", r.customFoodHandler.SearchCustomFoods)
	authed.POST("/custom-foods", r.customFoodHandler.UpsertCustomFood)
	authed.PUT("/custom-foods/:id", r.customFoodHandler.UpdateCustomFood)
	authed.DELETE("/custom-foods/:id", r.customFoodHandler.DeleteCustomFood)

	// Exports
	authed.POST("/exports", r.exportHandler.CreateExport)
}

// authedRoutes registers routes on a group with the auth middleware attached.
type authedRoutes struct {
	group *echo.Group
	auth  echo.MiddlewareFunc
}

func (a *authedRoutes) GET(path string, h echo.HandlerFunc) {
	a.group.GET(path, h, a.auth)
}

func (a *authedRoutes) POST(path string, h echo.HandlerFunc) {
	a.group.POST(path, h, a.auth)
}

func (a *authedRoutes) PUT(path string, h echo.HandlerFunc) {
	a.group.PUT(path, h, a.auth)
}

func (a *authedRoutes) DELETE(path string, h echo.HandlerFunc) {
	a.group.DELETE(path, h, a.auth)
}
