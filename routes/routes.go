package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travel-backend/config"
	"travel-backend/controllers"
	"travel-backend/middleware"
	"travel-backend/utils"
)

type RouterDeps struct {
	Config *config.Config
	Log    *zap.Logger

	Auth         *controllers.AuthController
	Users        *controllers.UserController
	Destinations *controllers.DestinationController
	Bookings     *controllers.BookingController
	Favorites    *controllers.FavoriteController
	Activities   *controllers.ActivityController
	Content      *controllers.ContentController
	Health       *controllers.HealthController
}

func SetupRouter(d RouterDeps) *gin.Engine {
	utils.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(d.Log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: d.Config.AllowsCredentials(),
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", d.Config.UploadDir)
	r.GET("/health", d.Health.Health)

	r.POST("/signup", d.Auth.Signup)
	r.POST("/login", d.Auth.Login)

	favorites := r.Group("/favorites")
	{
		favorites.POST("", d.Favorites.AddFavorite)
		favorites.GET("/:userId", d.Favorites.GetFavorites)
		favorites.DELETE("/:id", d.Favorites.RemoveFavorite)
	}

	activities := r.Group("/activities")
	{
		activities.POST("", d.Activities.CreateActivity)
		activities.GET("/:userId", d.Activities.GetRecentActivities)
	}

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("/:id", d.Users.GetUser)
			users.PUT("/:id", d.Users.UpdateUser)
		}

		destinations := api.Group("/destinations")
		{
			destinations.GET("", d.Destinations.ListDestinations)
			destinations.GET("/:id", d.Destinations.GetDestination)
			destinations.POST("", d.Destinations.CreateDestination)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", d.Bookings.CreateBooking)
			bookings.GET("/:userId", d.Bookings.GetUserBookings)
		}
		api.GET("/booking-details/:id", d.Bookings.GetBookingDetails)

		images := api.Group("/images")
		{
			images.GET("", d.Content.GetImages)
			images.POST("", d.Content.CreateImage)
		}

		pages := api.Group("/pages")
		{
			pages.GET("", d.Content.GetPages)
			pages.GET("/:slug", d.Content.GetPage)
			pages.POST("", d.Content.CreatePage)
		}
	}

	return r
}
