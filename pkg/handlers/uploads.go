package handlers

import (
	"errors"
	"net/http"

	"post-board-backend/pkg/config"
	"post-board-backend/pkg/uploads"
	"post-board-backend/pkg/utils"
)

type UploadsHandler struct {
	config  *config.Config
	uploads *uploads.Store
}

func NewUploadsHandler(cfg *config.Config, uploadStore *uploads.Store) *UploadsHandler {
	return &UploadsHandler{config: cfg, uploads: uploadStore}
}

// POST /uploads
// Accepts one multipart file field named "file" and responds with the
// public URL of the stored bytes.
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteErrorResponseWithCode(w, http.StatusBadRequest,
			uploads.CodeEmptyUpload, "A file field named \"file\" is required", "")
		return
	}
	defer file.Close()

	stored, err := h.uploads.Store(r.Context(), file, header.Filename)
	if err != nil {
		writeUploadError(w, err)
		return
	}
	utils.WriteCreatedResponse(w, stored)
}

// writeUploadError maps upload rejections onto HTTP responses. Only
// UPLOAD_FAILED is a server-side (possibly transient) failure; the
// rest are caller mistakes.
func writeUploadError(w http.ResponseWriter, err error) {
	var uerr *uploads.UploadError
	if errors.As(err, &uerr) {
		status := http.StatusBadRequest
		if uerr.Code == uploads.CodeUploadFailed {
			status = http.StatusInternalServerError
		}
		utils.WriteErrorResponseWithCode(w, status, uerr.Code, uerr.Message, "")
		return
	}
	utils.WriteInternalServerErrorResponse(w, err.Error())
}
