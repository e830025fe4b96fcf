package api

import (
	"net/http"

	reqdto "place-booking/internal/handler/dto/request"
	resdto "place-booking/internal/handler/dto/response"
	"place-booking/internal/handler/httperr"
	"place-booking/internal/handler/middleware"
	"place-booking/internal/usecase/commands"
	"place-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve a time slot on a resource for the current user
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.CreateBooking(c.Request.Context(), userID, req.ResourceID, req.StartTime, req.EndTime)
	if err != nil {
		httperr.AbortWithKind(c, err, "Create booking failed")
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), created.ID())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.Header("Location", "/api/bookings/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description Bookings of the current user, most recently created first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListBookingsForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List bookings for a resource
// @Description Ordered by start time; from/to return bookings overlapping the window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param from query string false "RFC3339 window start"
// @Param to query string false "RFC3339 window end"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /resources/{id}/bookings [get]
func (h *BookingHandler) ListForResource(c *gin.Context) {
	resourceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var window reqdto.BookingWindowQuery
	if err := c.ShouldBindQuery(&window); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time window", nil)
		return
	}
	views, err := h.q.ListBookingsForResource(c.Request.Context(), resourceID, window.From, window.To)
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Cancel booking
// @Description Owner or admin cancels an active booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	cancelled, err := h.cmds.CancelBooking(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithKind(c, err, "Cancel booking failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(cancelled))
}

// @Summary Reschedule booking
// @Description Move an active booking to a new slot, keeping its id
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleBookingRequest true "New slot"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/schedule [put]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	moved, err := h.cmds.RescheduleBooking(c.Request.Context(), id, req.StartTime, req.EndTime, actor)
	if err != nil {
		httperr.AbortWithKind(c, err, "Reschedule booking failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(moved))
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func currentActor(c *gin.Context) (commands.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return commands.Actor{}, false
	}
	role, _ := middleware.GetUserRole(c)
	return commands.Actor{UserID: userID, Role: role}, true
}
