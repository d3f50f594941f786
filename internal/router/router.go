package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"quickybite-service/internal/friendship"
	"quickybite-service/internal/meal"
	"quickybite-service/internal/middleware"
	"quickybite-service/internal/notification"
	"quickybite-service/internal/shoppinglist"
	"quickybite-service/internal/user"
)

// SetupRoutes configures all routes for the application. Authentication is
// the only public surface; everything else sits behind the JWT middleware.
func SetupRoutes(
	engine *gin.Engine,
	jwtSecret string,
	userHandler *user.Handler,
	friendshipHandler *friendship.Handler,
	notificationHandler *notification.Handler,
	mealHandler *meal.Handler,
	shoppingListHandler *shoppinglist.Handler,
) {
	engine.Use(cors.Default())

	// Swagger documentation
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check route
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes (no authentication required)
	public := engine.Group("/api/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
		}
	}

	// Protected routes (require JWT authentication)
	protected := engine.Group("/api/v1")
	protected.Use(middleware.JWTAuth(jwtSecret))
	{
		users := protected.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/me", userHandler.GetProfile)
			users.PUT("/me", userHandler.UpdateProfile)
			users.DELETE("/me", userHandler.DeleteAccount)
			users.POST("/me/picture", userHandler.UploadProfilePicture)
		}

		friendshipHandler.RegisterRoutes(protected)
		notificationHandler.RegisterRoutes(protected)
		mealHandler.RegisterRoutes(protected)
		shoppingListHandler.RegisterRoutes(protected)
	}
}
