package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/velenyx/sporthub/internal/controller/restapi/v1/response"
	"github.com/velenyx/sporthub/internal/dto"
	"github.com/velenyx/sporthub/internal/usecase/editor"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

var editorKinds = map[string]editor.Kind{
	"profile_picture": editor.ProfilePicture,
	"player_card":     editor.PlayerCard,
	"hub_bio_picture": editor.HubBioPicture,
}

// editorFor resolves the :kind/:id pair to its editor instance. A nil
// editor means the error response has already been written.
func (r *V1) editorFor(ctx *fiber.Ctx) (*editor.Editor, error) {
	kind, ok := editorKinds[ctx.Params("kind")]
	if !ok {
		return nil, errorResponse(ctx, http.StatusBadRequest, "unknown editor kind. Allowed: profile_picture, player_card, hub_bio_picture")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return nil, errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	ed, err := r.editors.For(kind, id)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - editorFor")

		return nil, errorResponse(ctx, http.StatusInternalServerError, "editor unavailable")
	}

	return ed, nil
}

// @Summary 	Editor state
// @Description Returns the editor's position in the select/crop/upload flow
// @Tags 		editor
// @Produce 	json
// @Param 		kind path string true "Editor kind" Enums(profile_picture, player_card, hub_bio_picture)
// @Param 		id 	 path string true "Record ID(uuid)"
// @Success 	200 {object} response.EditorState
// @Failure 	400 {object} response.Error "Unknown kind or invalid id"
// @Router 		/v1/editor/{kind}/{id} [get]
func (r *V1) editorState(ctx *fiber.Ctx) error {
	ed, err := r.editorFor(ctx)
	if ed == nil {
		return err
	}

	cfg := ed.Config()

	return ctx.Status(http.StatusOK).JSON(response.EditorState{
		Kind:        ctx.Params("kind"),
		RecordID:    ctx.Params("id"),
		State:       string(ed.State()),
		Shape:       string(cfg.Shape),
		AspectRatio: cfg.AspectRatio,
		Region:      ed.Draft(),
		CurrentURL:  ed.CurrentURL(),
		LastError:   ed.Err(),
	})
}

// @Summary  	Select file
// @Description Validates the chosen file and decodes its preview
// @Tags 		editor
// @Accept 		mpfd
// @Produce 	json
// @Param 		kind path 	  string true "Editor kind" Enums(profile_picture, player_card, hub_bio_picture)
// @Param 		id 	 path 	  string true "Record ID(uuid)"
// @Param 		file formData file 	 true "Image file(jpg, png, webp)"
// @Success 	200 {object} response.Preview
// @Failure 	400 {object} response.Error "Empty file"
// @Failure 	409 {object} response.Error "Upload in flight"
// @Failure 	413 {object} response.Error "File too large"
// @Failure 	415 {object} response.Error "Unsupported format"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/editor/{kind}/{id}/select [post]
func (r *V1) selectFile(ctx *fiber.Ctx) error {
	ed, err := r.editorFor(ctx)
	if ed == nil {
		return err
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "file is required")
	}

	// 1. size first, so an oversized body maps to 413 not 415
	if file.Size == 0 {
		return errorResponse(ctx, http.StatusBadRequest, "file is empty")
	}
	if max := ed.Config().MaxFileSize; file.Size > max {
		return errorResponse(ctx, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file size cant be more than %d bytes", max))
	}

	// 2. read the body
	fileReader, err := file.Open()
	if err != nil {
		r.logger.Error(err, "restapi - v1 - selectFile")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with opening the file")
	}
	defer fileReader.Close()

	data, err := io.ReadAll(fileReader)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - selectFile")

		return errorResponse(ctx, http.StatusInternalServerError, "problems with reading the file")
	}

	// 3. validate and decode
	err = ed.Select(data, file.Header.Get("Content-Type"), file.Size, file.Filename)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBusy):
			return errorResponse(ctx, http.StatusConflict, "upload already in flight")
		case errors.Is(err, errs.ErrInvalidFileKind):
			return errorResponse(ctx, http.StatusUnsupportedMediaType, "unsupported file type. Allowed: jpeg, png, webp")
		case errors.Is(err, errs.ErrPreviewUnavailable):
			return errorResponse(ctx, http.StatusUnsupportedMediaType, "file is not a decodable image")
		}
		r.logger.Error(err, "restapi - v1 - selectFile")

		return errorResponse(ctx, http.StatusInternalServerError, "selection failed")
	}

	resp := response.Preview{State: string(ed.State())}
	if preview := ed.Preview(); preview != nil {
		resp.NativeW = preview.NativeW
		resp.NativeH = preview.NativeH
	}

	return ctx.Status(http.StatusOK).JSON(resp)
}

type regionRequest struct {
	dto.CropRegion
	Final *bool `json:"final"`
}

// @Summary 	Record crop region
// @Description Records the region; "final": false keeps it an in-progress adjustment that confirm ignores
// @Tags 		editor
// @Accept 		json
// @Param 		kind 	path string 		true "Editor kind" Enums(profile_picture, player_card, hub_bio_picture)
// @Param 		id 		path string 		true "Record ID(uuid)"
// @Param 		request body regionRequest 	true "Region in % or px of the rendered image"
// @Success		204 "Recorded"
// @Failure 	400 {object} response.Error "Invalid body"
// @Router 		/v1/editor/{kind}/{id}/region [post]
func (r *V1) completeRegion(ctx *fiber.Ctx) error {
	ed, err := r.editorFor(ctx)
	if ed == nil {
		return err
	}

	var req regionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid body")
	}

	if req.Final != nil && !*req.Final {
		ed.Region(req.CropRegion)
	} else {
		ed.CompleteRegion(req.CropRegion)
	}

	return ctx.SendStatus(http.StatusNoContent)
}

type confirmRequest struct {
	RenderedWidth  float64 `json:"rendered_width"`
	RenderedHeight float64 `json:"rendered_height"`
}

// @Summary 	Confirm crop
// @Description Rasterizes the completed region, uploads and attaches the result
// @Tags 		editor
// @Accept 		json
// @Produce 	json
// @Param 		kind 	path string 		 true "Editor kind" Enums(profile_picture, player_card, hub_bio_picture)
// @Param 		id 		path string 		 true "Record ID(uuid)"
// @Param 		request body confirmRequest true "Rendered dimensions the region was chosen against"
// @Success 	200 {object} response.Confirm
// @Failure 	400 {object} response.Error "Invalid body"
// @Failure 	401 {object} response.Error "No session"
// @Failure 	404 {object} response.Error "Record not found"
// @Failure 	409 {object} response.Error "Upload in flight"
// @Failure 	500 {object} response.Error "Storage or persistence failure"
// @Router 		/v1/editor/{kind}/{id}/confirm [post]
func (r *V1) confirmCrop(ctx *fiber.Ctx) error {
	ed, err := r.editorFor(ctx)
	if ed == nil {
		return err
	}

	var req confirmRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid body")
	}

	url, err := ed.Confirm(ctx.UserContext(), req.RenderedWidth, req.RenderedHeight)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBusy):
			return errorResponse(ctx, http.StatusConflict, "upload already in flight")
		case errors.Is(err, errs.ErrNoSession):
			return errorResponse(ctx, http.StatusUnauthorized, "sign in to upload")
		case errors.Is(err, errs.ErrRecordNotFound):
			return errorResponse(ctx, http.StatusNotFound, "record not found")
		}
		r.logger.Error(err, "restapi - v1 - confirmCrop")

		return errorResponse(ctx, http.StatusInternalServerError, "upload failed")
	}

	return ctx.Status(http.StatusOK).JSON(response.Confirm{
		State: string(ed.State()),
		URL:   url,
	})
}

// @Summary 	Cancel edit
// @Description Discards the selected file and crop state
// @Tags 		editor
// @Param 		kind path string true "Editor kind" Enums(profile_picture, player_card, hub_bio_picture)
// @Param 		id 	 path string true "Record ID(uuid)"
// @Success		204 "Cancelled"
// @Router 		/v1/editor/{kind}/{id}/cancel [post]
func (r *V1) cancelEdit(ctx *fiber.Ctx) error {
	ed, err := r.editorFor(ctx)
	if ed == nil {
		return err
	}

	ed.Cancel()

	return ctx.SendStatus(http.StatusNoContent)
}
