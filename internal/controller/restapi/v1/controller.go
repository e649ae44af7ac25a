package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velenyx/sporthub/internal/controller/restapi/v1/response"
	"github.com/velenyx/sporthub/internal/session"
	"github.com/velenyx/sporthub/internal/usecase"
	"github.com/velenyx/sporthub/internal/usecase/editor"
	"github.com/velenyx/sporthub/pkg/logger"
)

type V1 struct {
	editors  *editor.Manager
	profiles usecase.ProfileUseCase
	matches  usecase.MatchUseCase
	pictures usecase.PictureUseCase
	cropper  usecase.CropperUseCase
	sessions *session.Holder
	logger   logger.Interface

	profilePicturesBucket string
}

func errorResponse(ctx *fiber.Ctx, code int, msg string) error {
	return ctx.Status(code).JSON(response.Error{Error: msg})
}
