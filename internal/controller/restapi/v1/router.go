package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velenyx/sporthub/internal/session"
	"github.com/velenyx/sporthub/internal/usecase"
	"github.com/velenyx/sporthub/internal/usecase/editor"
	"github.com/velenyx/sporthub/pkg/logger"
)

func NewRoutes(
	apiV1Group fiber.Router,
	editors *editor.Manager,
	profiles usecase.ProfileUseCase,
	matches usecase.MatchUseCase,
	pictures usecase.PictureUseCase,
	cropper usecase.CropperUseCase,
	sessions *session.Holder,
	profilePicturesBucket string,
	l logger.Interface,
) {
	r := &V1{
		editors:               editors,
		profiles:              profiles,
		matches:               matches,
		pictures:              pictures,
		cropper:               cropper,
		sessions:              sessions,
		logger:                l,
		profilePicturesBucket: profilePicturesBucket,
	}

	{
		// Session
		apiV1Group.Post("/session", r.openSession)
		apiV1Group.Delete("/session", r.closeSession)

		// Picture editors
		apiV1Group.Get("/editor/:kind/:id", r.editorState)
		apiV1Group.Post("/editor/:kind/:id/select", r.selectFile)
		apiV1Group.Post("/editor/:kind/:id/region", r.completeRegion)
		apiV1Group.Post("/editor/:kind/:id/confirm", r.confirmCrop)
		apiV1Group.Post("/editor/:kind/:id/cancel", r.cancelEdit)

		// Profiles
		apiV1Group.Get("/profile/:id", r.getProfile)
		apiV1Group.Get("/profile/:id/avatar", r.getAvatar)
		apiV1Group.Post("/hub/:hubID/profile", r.enterHub)
		apiV1Group.Get("/hub-profile/:id", r.getHubProfile)
		apiV1Group.Get("/hub-profile/:id/player", r.getHubPlayerProfile)
		apiV1Group.Patch("/hub-profile/:id/bio", r.updateBio)

		// Matches
		apiV1Group.Post("/matches", r.createMatch)
		apiV1Group.Get("/matches", r.listMatches)
		apiV1Group.Get("/matches/:id", r.getMatchDetails)
		apiV1Group.Post("/matches/:id/join", r.joinMatch)
	}
}
