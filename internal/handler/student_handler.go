package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/model"
	"github.com/tutorlane/tutorlane-backend/internal/response"
	"github.com/tutorlane/tutorlane-backend/internal/service"
	"github.com/tutorlane/tutorlane-backend/internal/validator"
)

// StudentHandler handles student endpoints.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// CreateStudentRequest is the payload for creating a student.
type CreateStudentRequest struct {
	Name         string    `json:"name" binding:"required,min=1,max=200"`
	DOB          *string   `json:"dob"`
	Gender       *string   `json:"gender"`
	CurrentGrade *int      `json:"current_grade" binding:"omitempty,min=1"`
	ParentID     uuid.UUID `json:"parent_id"`
}

// Create godoc
// POST /api/student
// Creates a new student owned by an existing parent.
func (h *StudentHandler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Message(fields))
		return
	}

	student := &model.Student{
		Name:         req.Name,
		DOB:          req.DOB,
		Gender:       req.Gender,
		CurrentGrade: req.CurrentGrade,
		ParentID:     req.ParentID,
	}

	if err := h.studentService.Create(c.Request.Context(), student); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, student)
}

// List godoc
// GET /api/student
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, students)
}

// GetByID godoc
// GET /api/student/:id
func (h *StudentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid student ID")
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, student)
}
