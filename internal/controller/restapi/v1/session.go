package v1

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/controller/restapi/v1/response"
)

type openSessionRequest struct {
	UserID string `json:"user_id"`
}

// @Summary 	Open session
// @Description Signs a user in, replacing any previous session
// @Tags 		session
// @Accept 		json
// @Produce 	json
// @Param 		request body openSessionRequest true "User id"
// @Success 	201 {object} response.Session
// @Failure 	400 {object} response.Error "Invalid user id"
// @Router 		/v1/session [post]
func (r *V1) openSession(ctx *fiber.Ctx) error {
	var req openSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid body")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid user id")
	}

	r.sessions.Set(userID)

	return ctx.Status(http.StatusCreated).JSON(response.Session{
		UserID:   userID.String(),
		SignedIn: true,
	})
}

// @Summary 	Close session
// @Description Signs the current user out
// @Tags 		session
// @Success		204 "Closed"
// @Router 		/v1/session [delete]
func (r *V1) closeSession(ctx *fiber.Ctx) error {
	r.sessions.Clear()

	return ctx.SendStatus(http.StatusNoContent)
}
