package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/services"
	"github.com/adikale/placementhub/internal/middleware"
)

// ConnectController handles the alumni connect board and mentorship flows
type ConnectController struct {
	mentorshipService *services.MentorshipService
	referralService   *services.ReferralService
}

// NewConnectController creates a new ConnectController
func NewConnectController(
	mentorshipService *services.MentorshipService,
	referralService *services.ReferralService,
) *ConnectController {
	return &ConnectController{
		mentorshipService: mentorshipService,
		referralService:   referralService,
	}
}

// GetBoard returns the shared alumni connect view
// @Summary Get the connect board
// @Description Retrieves open referral posts, bookable mentorship slots and the alumni directory. Students also get their own referral request statuses.
// @Tags connect
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ConnectBoardResponse} "Board retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connect [get]
func (c *ConnectController) GetBoard(ctx *gin.Context) {
	board, err := c.referralService.ConnectBoard(ctx, middleware.CurrentUserID(ctx), middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      board,
		Timestamp: time.Now(),
	})
}

// RequestMentorship sends a mentorship request to an alumnus
// @Summary Request mentorship
// @Description Sends a mentorship request from the authenticated student to an alumnus. An empty message gets a friendly default.
// @Tags connect
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni user ID"
// @Param request body dto.MentorshipRequestRequest true "Optional message"
// @Success 201 {object} dto.APIResponse{data=models.MentorshipRequest} "Request sent"
// @Failure 400 {object} dto.ErrorResponse "Target is not an alumnus"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Request already sent"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connect/alumni/{id}/mentorship [post]
func (c *ConnectController) RequestMentorship(ctx *gin.Context) {
	alumniID, ok := parseIDParam(ctx, "id", "alumni ID")
	if !ok {
		return
	}

	var req dto.MentorshipRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	request, err := c.mentorshipService.Request(ctx, middleware.CurrentUserID(ctx), alumniID, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// RespondMentorship accepts or rejects a mentorship request
// @Summary Respond to a mentorship request
// @Description Lets the receiving alumnus accept or reject a pending mentorship request and notifies the student
// @Tags connect
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentorship request ID"
// @Param request body dto.RespondMentorshipRequest true "Decision"
// @Success 200 {object} dto.APIResponse "Response recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid action"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Request belongs to a different alumnus"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connect/mentorship/{id}/respond [post]
func (c *ConnectController) RespondMentorship(ctx *gin.Context) {
	requestID, ok := parseIDParam(ctx, "id", "request ID")
	if !ok {
		return
	}

	var req dto.RespondMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.mentorshipService.Respond(ctx, middleware.CurrentUserID(ctx), requestID, req.Action); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Response recorded",
		Timestamp: time.Now(),
	})
}

// MyMentorshipRequests lists the caller's outgoing mentorship requests
// @Summary List my mentorship requests
// @Description Retrieves the authenticated student's mentorship requests, newest first
// @Tags connect
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipRequest} "Requests retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connect/mentorship/me [get]
func (c *ConnectController) MyMentorshipRequests(ctx *gin.Context) {
	requests, err := c.mentorshipService.RequestsByStudent(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// AddSlot publishes a bookable mentorship slot
// @Summary Offer a mentorship slot
// @Description Publishes a new bookable mentorship slot for the authenticated alumnus
// @Tags connect
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSlotRequest true "Slot details"
// @Success 201 {object} dto.APIResponse{data=models.MentorshipSlot} "Slot created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connect/slots [post]
func (c *ConnectController) AddSlot(ctx *gin.Context) {
	var req dto.CreateSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	slot, err := c.mentorshipService.AddSlot(ctx, middleware.CurrentUserID(ctx), req.Topic, req.SlotDate, req.SlotTime, req.MeetLink)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      slot,
		Timestamp: time.Now(),
	})
}

// BookSlot books an available mentorship slot
// @Summary Book a mentorship slot
// @Description Books an available slot for the authenticated student and notifies the mentor. Booking races lose cleanly.
// @Tags connect
// @Produce json
// @Security BearerAuth
// @Param id path int true "Slot ID"
// @Success 200 {object} dto.APIResponse "Slot booked"
// @Failure 400 {object} dto.ErrorResponse "Invalid slot ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Slot not found"
// @Failure 409 {object} dto.ErrorResponse "Slot no longer available"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connect/slots/{id}/book [post]
func (c *ConnectController) BookSlot(ctx *gin.Context) {
	slotID, ok := parseIDParam(ctx, "id", "slot ID")
	if !ok {
		return
	}

	if err := c.mentorshipService.BookSlot(ctx, middleware.CurrentUserID(ctx), slotID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Slot booked",
		Timestamp: time.Now(),
	})
}
