package v1

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/controller/restapi/v1/response"
	"github.com/velenyx/sporthub/internal/entity"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

// @Summary 	Get profile
// @Tags 		profiles
// @Produce 	json
// @Param 		id path string true "Profile ID(uuid)"
// @Success 	200 {object} response.Profile
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Profile not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/profile/{id} [get]
func (r *V1) getProfile(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	p, err := r.profiles.GetProfile(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "profile not found")
		}
		r.logger.Error(err, "restapi - v1 - getProfile")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.Status(http.StatusOK).JSON(profileResponse(p))
}

// @Summary 	Get avatar thumbnail
// @Description Renders a 150x150 rendition of the profile picture on the fly
// @Tags 		profiles
// @Produce 	image/jpeg,image/png,image/webp
// @Param 		id path string true "Profile ID(uuid)"
// @Success 	200 {file} 	binary
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Profile or picture not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/profile/{id}/avatar [get]
func (r *V1) getAvatar(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	p, err := r.profiles.GetProfile(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "profile not found")
		}
		r.logger.Error(err, "restapi - v1 - getAvatar")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	if p.ProfilePictureURL == nil || *p.ProfilePictureURL == "" {
		return errorResponse(ctx, http.StatusNotFound, "profile has no picture")
	}

	payload, err := r.pictures.Fetch(ctx.UserContext(), r.profilePicturesBucket, *p.ProfilePictureURL)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "picture not found")
		}
		r.logger.Error(err, "restapi - v1 - getAvatar")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	thumb, err := r.cropper.Thumbnail(ctx.UserContext(), payload)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - getAvatar")

		return errorResponse(ctx, http.StatusInternalServerError, "rendering problems")
	}

	ctx.Set(fiber.HeaderContentType, thumb.ContentType)

	return ctx.Status(http.StatusOK).Send(thumb.Data)
}

// @Summary 	Enter hub
// @Description Returns the signed-in user's profile in the hub, creating it on first entry
// @Tags 		profiles
// @Produce 	json
// @Param 		hubID path string true "Hub ID(uuid)"
// @Success 	200 {object} response.HubProfile
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	401 {object} response.Error "No session"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/hub/{hubID}/profile [post]
func (r *V1) enterHub(ctx *fiber.Ctx) error {
	hubID, err := uuid.Parse(ctx.Params("hubID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid hub id")
	}

	userID, ok := r.sessions.Current()
	if !ok {
		return errorResponse(ctx, http.StatusUnauthorized, "sign in to enter a hub")
	}

	hp, err := r.profiles.GetOrCreateHubProfile(ctx.UserContext(), userID, hubID)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - enterHub")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.Status(http.StatusOK).JSON(hubProfileResponse(hp))
}

// @Summary 	Get hub profile
// @Tags 		profiles
// @Produce 	json
// @Param 		id path string true "Hub profile ID(uuid)"
// @Success 	200 {object} response.HubProfile
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Hub profile not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/hub-profile/{id} [get]
func (r *V1) getHubProfile(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	hp, err := r.profiles.GetHubProfile(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "hub profile not found")
		}
		r.logger.Error(err, "restapi - v1 - getHubProfile")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.Status(http.StatusOK).JSON(hubProfileResponse(hp))
}

// @Summary 	Get player card record
// @Description Resolves the player profile belonging to a hub profile
// @Tags 		profiles
// @Produce 	json
// @Param 		id path string true "Hub profile ID(uuid)"
// @Success 	200 {object} response.PlayerProfile
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "No player profile"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/hub-profile/{id}/player [get]
func (r *V1) getHubPlayerProfile(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	pp, err := r.profiles.GetPlayerProfileByHub(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "player profile not found")
		}
		r.logger.Error(err, "restapi - v1 - getHubPlayerProfile")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.Status(http.StatusOK).JSON(playerProfileResponse(pp))
}

type updateBioRequest struct {
	Bio string `json:"bio"`
}

// @Summary 	Update bio
// @Tags 		profiles
// @Accept 		json
// @Param 		id 		path string 		  true "Hub profile ID(uuid)"
// @Param 		request body updateBioRequest true "New bio"
// @Success		204 "Updated"
// @Failure 	400 {object} response.Error "Invalid ID or body"
// @Failure 	404 {object} response.Error "Hub profile not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/hub-profile/{id}/bio [patch]
func (r *V1) updateBio(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	var req updateBioRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid body")
	}

	err = r.profiles.UpdateBio(ctx.UserContext(), id, req.Bio)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "hub profile not found")
		}
		r.logger.Error(err, "restapi - v1 - updateBio")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.SendStatus(http.StatusNoContent)
}

func profileResponse(p *entity.Profile) response.Profile {
	resp := response.Profile{
		ID:       p.ID.String(),
		FullName: p.FullName,
	}
	if p.ProfilePictureURL != nil {
		resp.ProfilePictureURL = *p.ProfilePictureURL
	}

	return resp
}

func playerProfileResponse(pp *entity.PlayerProfile) response.PlayerProfile {
	resp := response.PlayerProfile{
		ID:           pp.ID.String(),
		HubProfileID: pp.HubProfileID.String(),
		SportType:    pp.SportType,
	}
	if pp.SkillLevel != nil {
		resp.SkillLevel = *pp.SkillLevel
	}
	if pp.YearsExperience != nil {
		resp.YearsExperience = *pp.YearsExperience
	}
	if pp.PlayerCardURL != nil {
		resp.PlayerCardURL = *pp.PlayerCardURL
	}

	return resp
}

func hubProfileResponse(hp *entity.HubProfile) response.HubProfile {
	resp := response.HubProfile{
		ID:     hp.ID.String(),
		UserID: hp.UserID.String(),
		HubID:  hp.HubID.String(),
		Stats:  hp.Stats,
	}
	if hp.Bio != nil {
		resp.Bio = *hp.Bio
	}
	if hp.ProfilePictureURL != nil {
		resp.ProfilePictureURL = *hp.ProfilePictureURL
	}

	return resp
}
