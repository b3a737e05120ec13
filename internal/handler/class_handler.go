package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutorlane/tutorlane-backend/internal/model"
	"github.com/tutorlane/tutorlane-backend/internal/response"
	"github.com/tutorlane/tutorlane-backend/internal/service"
	"github.com/tutorlane/tutorlane-backend/internal/validator"
)

// ClassHandler handles class endpoints.
type ClassHandler struct {
	classService *service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// CreateClassRequest is the payload for creating a class.
type CreateClassRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	Subject     *string          `json:"subject"`
	DayOfWeek   *model.DayOfWeek `json:"day_of_week" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	TimeStart   *string          `json:"time_start" binding:"omitempty,datetime=15:04"`
	TimeEnd     *string          `json:"time_end" binding:"omitempty,datetime=15:04"`
	TeacherName *string          `json:"teacher_name"`
	MaxStudents *int             `json:"max_students" binding:"omitempty,min=1"`
}

// Create godoc
// POST /api/class
// Creates a new class.
func (h *ClassHandler) Create(c *gin.Context) {
	var req CreateClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Message(fields))
		return
	}

	class := &model.Class{
		Name:        req.Name,
		Subject:     req.Subject,
		DayOfWeek:   req.DayOfWeek,
		TimeStart:   req.TimeStart,
		TimeEnd:     req.TimeEnd,
		TeacherName: req.TeacherName,
		MaxStudents: req.MaxStudents,
	}

	if err := h.classService.Create(c.Request.Context(), class); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, class)
}

// List godoc
// GET /api/class?day=Monday
// Lists all classes, optionally filtered by day of week.
func (h *ClassHandler) List(c *gin.Context) {
	var day *model.DayOfWeek
	if raw := c.Query("day"); raw != "" {
		d := model.DayOfWeek(raw)
		day = &d
	}

	classes, err := h.classService.List(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, classes)
}
