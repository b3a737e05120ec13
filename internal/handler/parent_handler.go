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

// ParentHandler handles parent endpoints.
type ParentHandler struct {
	parentService *service.ParentService
}

// NewParentHandler creates a new ParentHandler.
func NewParentHandler(parentService *service.ParentService) *ParentHandler {
	return &ParentHandler{parentService: parentService}
}

// CreateParentRequest is the payload for creating a parent.
type CreateParentRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=200"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
}

// Create godoc
// POST /api/parent
// Creates a new parent with a unique email.
func (h *ParentHandler) Create(c *gin.Context) {
	var req CreateParentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Message(fields))
		return
	}

	parent := &model.Parent{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := h.parentService.Create(c.Request.Context(), parent); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, parent)
}

// List godoc
// GET /api/parent
func (h *ParentHandler) List(c *gin.Context) {
	parents, err := h.parentService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, parents)
}

// GetByID godoc
// GET /api/parent/:id
func (h *ParentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid parent ID")
		return
	}

	parent, err := h.parentService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, parent)
}
