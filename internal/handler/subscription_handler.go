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

// SubscriptionHandler handles subscription endpoints.
type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// CreateSubscriptionRequest is the payload for creating a subscription.
type CreateSubscriptionRequest struct {
	StudentID     uuid.UUID `json:"student_id"`
	PackageName   *string   `json:"package_name"`
	StartDate     *string   `json:"start_date"`
	EndDate       *string   `json:"end_date"`
	TotalSessions *int      `json:"total_sessions" binding:"omitempty,min=0"`
}

// UseSessionRequest is the payload for consuming one session.
type UseSessionRequest struct {
	StudentID uuid.UUID `json:"student_id"`
}

// Create godoc
// POST /api/subscription
// Creates a subscription for an existing student.
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req CreateSubscriptionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Message(fields))
		return
	}

	sub := &model.Subscription{
		StudentID:     req.StudentID,
		PackageName:   req.PackageName,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TotalSessions: req.TotalSessions,
	}

	if err := h.subscriptionService.Create(c.Request.Context(), sub); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, sub)
}

// UseSession godoc
// PATCH /api/subscription/:id/use
// Consumes exactly one session from a subscription.
func (h *SubscriptionHandler) UseSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	var req UseSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, validator.Message(fields))
		return
	}

	sub, err := h.subscriptionService.UseSession(c.Request.Context(), id, req.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, sub)
}

// GetByID godoc
// GET /api/subscription/:id
func (h *SubscriptionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	sub, err := h.subscriptionService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, sub)
}

// ListByStudent godoc
// GET /api/subscription/student/:student_id/subscriptions
func (h *SubscriptionHandler) ListByStudent(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid student ID")
		return
	}

	subs, err := h.subscriptionService.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, subs)
}
