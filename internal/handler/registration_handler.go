package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tutorlane/tutorlane-backend/internal/response"
	"github.com/tutorlane/tutorlane-backend/internal/service"
	"github.com/tutorlane/tutorlane-backend/internal/validator"
)

// RegistrationHandler handles class-registration endpoints.
type RegistrationHandler struct {
	registrationService *service.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(registrationService *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// RegisterRequest is the payload for registering a student into a class.
// student_id presence is checked by the service so an empty body fails
// with the domain's own message rather than a binding error.
type RegisterRequest struct {
	StudentID uuid.UUID `json:"student_id"`
}

// Register godoc
// POST /api/class-registration/:class_id/register
// Registers a student into a class.
func (h *RegistrationHandler) Register(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("class_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid class ID")
		return
	}

	var req RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Message(fields))
		return
	}

	registration, err := h.registrationService.Register(c.Request.Context(), classID, req.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, registration)
}

// ListByStudent godoc
// GET /api/class-registration/student/:student_id
// Lists a student's registrations; unknown students yield an empty list.
func (h *RegistrationHandler) ListByStudent(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid student ID")
		return
	}

	registrations, err := h.registrationService.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, registrations)
}
