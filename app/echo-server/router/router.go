package router

import (
	"skinAdvisor/internal/middleware"
	"skinAdvisor/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.PUT("/:id", handler.UpdateUser, authRequired, middleware.SelfOrAdmin())
	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, middleware.SelfOrAdmin())
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts, authRequired)
	products.GET("/:id", handler.GetProductByID, authRequired)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupAnalysisRoutes(api *echo.Group, handler *rest.AnalysisHandler) {
	analyses := api.Group("/analyses", middleware.AuthMiddleware())

	analyses.POST("", handler.Ingest)
	analyses.GET("", handler.ListMine)
	analyses.GET("/:id", handler.GetByID)
}

func SetupAdvisorRoutes(api *echo.Group, handler *rest.AdvisorHandler) {
	reco := api.Group("/recommendations", middleware.AuthMiddleware())

	reco.POST("", handler.Recommend)
	reco.GET("/history", handler.History)
}
