package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/velenyx/sporthub/config"
	v1 "github.com/velenyx/sporthub/internal/controller/restapi/v1"
	"github.com/velenyx/sporthub/internal/session"
	"github.com/velenyx/sporthub/internal/usecase"
	"github.com/velenyx/sporthub/internal/usecase/editor"
	"github.com/velenyx/sporthub/pkg/logger"
)

// @title Sporthub
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	editors *editor.Manager,
	profiles usecase.ProfileUseCase,
	matches usecase.MatchUseCase,
	pictures usecase.PictureUseCase,
	cropper usecase.CropperUseCase,
	sessions *session.Holder,
	l logger.Interface,
) {
	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewRoutes(apiV1Group, editors, profiles, matches, pictures, cropper, sessions, cfg.S3.ProfilePicturesBucket, l)
	}
}
