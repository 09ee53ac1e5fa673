package bootstrap

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-backend/config"
	"travel-backend/controllers"
	"travel-backend/logger"
	"travel-backend/routes"
	"travel-backend/services"
)

// BuildContainer registers providers only; nothing connects until the first invoke.
func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.LogLevel, cfg.GinMode == gin.ReleaseMode)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		return config.OpenDatabase(cfg, log)
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (*services.IdentityService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return services.NewIdentityService(do.MustInvoke[*gorm.DB](i), cfg.BcryptCost), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.CatalogService, error) {
		return services.NewCatalogService(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.ActivityService, error) {
		return services.NewActivityService(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.BookingService, error) {
		return services.NewBookingService(
			do.MustInvoke[*gorm.DB](i),
			do.MustInvoke[*services.CatalogService](i),
			do.MustInvoke[*services.ActivityService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.FavoriteService, error) {
		return services.NewFavoriteService(
			do.MustInvoke[*gorm.DB](i),
			do.MustInvoke[*services.CatalogService](i),
			do.MustInvoke[*services.ActivityService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.ContentService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return services.NewContentService(do.MustInvoke[*gorm.DB](i), cfg.UploadDir), nil
	})

	// Controller
	do.Provide(inj, func(i *do.Injector) (*controllers.AuthController, error) {
		return controllers.NewAuthController(do.MustInvoke[*services.IdentityService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*controllers.UserController, error) {
		return controllers.NewUserController(do.MustInvoke[*services.IdentityService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*controllers.DestinationController, error) {
		return controllers.NewDestinationController(do.MustInvoke[*services.CatalogService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*controllers.BookingController, error) {
		return controllers.NewBookingController(do.MustInvoke[*services.BookingService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*controllers.FavoriteController, error) {
		return controllers.NewFavoriteController(do.MustInvoke[*services.FavoriteService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*controllers.ActivityController, error) {
		return controllers.NewActivityController(do.MustInvoke[*services.ActivityService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*controllers.ContentController, error) {
		return controllers.NewContentController(do.MustInvoke[*services.ContentService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*controllers.HealthController, error) {
		return controllers.NewHealthController(do.MustInvoke[*gorm.DB](i), do.MustInvoke[*zap.Logger](i)), nil
	})

	// Router
	do.Provide(inj, func(i *do.Injector) (*gin.Engine, error) {
		return routes.SetupRouter(routes.RouterDeps{
			Config:       do.MustInvoke[*config.Config](i),
			Log:          do.MustInvoke[*zap.Logger](i),
			Auth:         do.MustInvoke[*controllers.AuthController](i),
			Users:        do.MustInvoke[*controllers.UserController](i),
			Destinations: do.MustInvoke[*controllers.DestinationController](i),
			Bookings:     do.MustInvoke[*controllers.BookingController](i),
			Favorites:    do.MustInvoke[*controllers.FavoriteController](i),
			Activities:   do.MustInvoke[*controllers.ActivityController](i),
			Content:      do.MustInvoke[*controllers.ContentController](i),
			Health:       do.MustInvoke[*controllers.HealthController](i),
		}), nil
	})

	return inj
}
