package v1

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/controller/restapi/v1/response"
	"github.com/velenyx/sporthub/internal/dto"
	"github.com/velenyx/sporthub/internal/entity"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

type createMatchRequest struct {
	CreatorID uuid.UUID `json:"creator_id"` // hub profile id

	dto.CreateMatch
}

// @Summary 	Create match
// @Description Creates an open match and seats the creator on the home team
// @Tags 		matches
// @Accept 		json
// @Produce 	json
// @Param 		request body createMatchRequest true "Match parameters"
// @Success 	201 {object} response.Match
// @Failure 	400 {object} response.Error "Invalid body"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/matches [post]
func (r *V1) createMatch(ctx *fiber.Ctx) error {
	var req createMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid body")
	}

	if req.CreatorID == uuid.Nil || req.HubID == uuid.Nil {
		return errorResponse(ctx, http.StatusBadRequest, "creator_id and hub_id are required")
	}
	if req.PlayersPerTeam <= 0 {
		return errorResponse(ctx, http.StatusBadRequest, "players_per_team must be positive")
	}

	m, err := r.matches.CreateMatch(ctx.UserContext(), req.CreatorID, req.CreateMatch)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - createMatch")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.Status(http.StatusCreated).JSON(matchResponse(m))
}

// @Summary 	List open matches
// @Tags 		matches
// @Produce 	json
// @Param 		hub_id query string true "Hub ID(uuid)"
// @Success 	200 {array}  response.Match
// @Failure 	400 {object} response.Error "Invalid hub id"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/matches [get]
func (r *V1) listMatches(ctx *fiber.Ctx) error {
	hubID, err := uuid.Parse(ctx.Query("hub_id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid hub id")
	}

	matches, err := r.matches.ListOpenMatches(ctx.UserContext(), hubID)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - listMatches")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	resp := make([]response.Match, 0, len(matches))
	for _, m := range matches {
		resp = append(resp, matchResponse(m))
	}

	return ctx.Status(http.StatusOK).JSON(resp)
}

// @Summary 	Get match details
// @Tags 		matches
// @Produce 	json
// @Param 		id path string true "Match ID(uuid)"
// @Success 	200 {object} response.MatchDetails
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Match not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/matches/{id} [get]
func (r *V1) getMatchDetails(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	details, err := r.matches.GetMatchDetails(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "match not found")
		}
		r.logger.Error(err, "restapi - v1 - getMatchDetails")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	resp := response.MatchDetails{Match: matchResponse(&details.Match)}
	for _, p := range details.Players {
		resp.Players = append(resp.Players, response.MatchPlayer{
			PlayerID: p.PlayerID.String(),
			Team:     string(p.Team),
			Status:   p.Status,
		})
	}

	return ctx.Status(http.StatusOK).JSON(resp)
}

type joinMatchRequest struct {
	HubProfileID uuid.UUID `json:"hub_profile_id"`
	Team         string    `json:"team"`
}

// @Summary 	Join match
// @Tags 		matches
// @Accept 		json
// @Param 		id 		path string 		  true "Match ID(uuid)"
// @Param 		request body joinMatchRequest true "Player and team"
// @Success		204 "Joined"
// @Failure 	400 {object} response.Error "Invalid ID or body"
// @Failure 	404 {object} response.Error "Match not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/matches/{id}/join [post]
func (r *V1) joinMatch(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	var req joinMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid body")
	}

	team := entity.Team(req.Team)
	if team != entity.TeamHome && team != entity.TeamAway {
		return errorResponse(ctx, http.StatusBadRequest, "team must be home or away")
	}
	if req.HubProfileID == uuid.Nil {
		return errorResponse(ctx, http.StatusBadRequest, "hub_profile_id is required")
	}

	err = r.matches.JoinMatch(ctx.UserContext(), id, req.HubProfileID, team)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "match not found")
		}
		r.logger.Error(err, "restapi - v1 - joinMatch")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.SendStatus(http.StatusNoContent)
}

func matchResponse(m *entity.Match) response.Match {
	return response.Match{
		ID:             m.ID.String(),
		CreatorID:      m.CreatorID.String(),
		HubID:          m.HubID.String(),
		Type:           m.Type,
		Date:           m.Date,
		Time:           m.Time,
		Duration:       m.Duration,
		PlayersPerTeam: m.PlayersPerTeam,
		Status:         string(m.Status),
		CreatedAt:      m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
