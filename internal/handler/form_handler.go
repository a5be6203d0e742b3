package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tridenda/talentlytica/internal/export"
	"github.com/tridenda/talentlytica/internal/model"
	"github.com/tridenda/talentlytica/internal/repository"
	"github.com/tridenda/talentlytica/internal/response"
	"github.com/tridenda/talentlytica/internal/service"
	"github.com/tridenda/talentlytica/internal/validator"
)

// FormHandler handles the grading form: cell edits, reads and exports.
type FormHandler struct {
	formService *service.FormService
	log         zerolog.Logger
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(formService *service.FormService, log zerolog.Logger) *FormHandler {
	return &FormHandler{
		formService: formService,
		log:         log.With().Str("component", "form_handler").Logger(),
	}
}

// CreateForm godoc
// POST /api/v1/forms
// Opens a new form session with every cell unset.
func (h *FormHandler) CreateForm(c *gin.Context) {
	formID, err := h.formService.CreateForm(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"form_id": formID})
}

// DeleteForm godoc
// DELETE /api/v1/forms/:form_id
func (h *FormHandler) DeleteForm(c *gin.Context) {
	if err := h.formService.DeleteForm(c.Request.Context(), c.Param("form_id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "form deleted successfully"})
}

// GetGrid godoc
// GET /api/v1/forms/:form_id/grades
// Returns every cell of the form, null for unset cells.
func (h *FormHandler) GetGrid(c *gin.Context) {
	rows, err := h.formService.Grid(c.Request.Context(), c.Param("form_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rows": rows})
}

// SetGrade godoc
// PUT /api/v1/forms/:form_id/grades
// Records one selector change. An empty value clears the cell.
func (h *FormHandler) SetGrade(c *gin.Context) {
	var req model.SetGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.formService.SetGrade(c.Request.Context(), c.Param("form_id"), *req.StudentID, *req.AspectID, req.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"student_id": *req.StudentID,
		"aspect_id":  *req.AspectID,
		"grade":      grade,
	})
}

// GetGrade godoc
// GET /api/v1/forms/:form_id/grades/:student_id/:aspect_id
func (h *FormHandler) GetGrade(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("student_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	aspectID, err := strconv.Atoi(c.Param("aspect_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	grade, err := h.formService.GetGrade(c.Request.Context(), c.Param("form_id"), studentID, aspectID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"student_id": studentID,
		"aspect_id":  aspectID,
		"grade":      grade,
	})
}

// Export godoc
// POST /api/v1/forms/:form_id/export
// The form's save action: returns the nested aspect/student snapshot.
func (h *FormHandler) Export(c *gin.Context) {
	snap, err := h.formService.Export(c.Request.Context(), c.Param("form_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// ExportJSON godoc
// GET /api/v1/forms/:form_id/export/json
// Returns the snapshot alone, indented for display.
func (h *FormHandler) ExportJSON(c *gin.Context) {
	snap, err := h.formService.Export(c.Request.Context(), c.Param("form_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, snap); err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", buf.Bytes())
}

// ExportExcel godoc
// GET /api/v1/forms/:form_id/export/xlsx
func (h *FormHandler) ExportExcel(c *gin.Context) {
	formID := c.Param("form_id")
	var buf bytes.Buffer
	if err := h.formService.ExportExcel(c.Request.Context(), formID, &buf); err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="penilaian-`+formID+`.xlsx"`)
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

// fail maps service errors onto API error codes.
func (h *FormHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrFormNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrFormNotFound)
	case errors.Is(err, service.ErrUnknownStudent):
		response.Fail(c, http.StatusNotFound, response.ErrUnknownStudent)
	case errors.Is(err, service.ErrUnknownAspect):
		response.Fail(c, http.StatusNotFound, response.ErrUnknownAspect)
	default:
		h.log.Error().Err(err).
			Str("request_id", response.RequestID(c)).
			Str("path", c.FullPath()).
			Msg("Form request failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
