package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/candles/rsvp-system/internal/core/domain"
	"github.com/candles/rsvp-system/internal/core/ports"
)

const storeUnavailableMessage = "The server is unable to process your request at the moment"

// EventHandler serves invite management for domain admins and the RSVP flow
// for guests.
type EventHandler struct {
	invites ports.InviteService
}

func NewEventHandler(invites ports.InviteService) *EventHandler {
	return &EventHandler{invites: invites}
}

// ListCodes returns the invite codes created for an event, newest first.
// Admin only.
//
// @Summary      List an event's invite codes
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Invite
// @Failure      401  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/events/master/{eventId}/codes [get]
func (h *EventHandler) ListCodes(c echo.Context) error {
	invites, err := h.invites.ListInvites(c.Request().Context(), c.Param("eventId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: storeUnavailableMessage})
	}
	return c.JSON(http.StatusOK, invites)
}

// CreateCode allocates a fresh invite code for an event. Admin only.
//
// @Summary      Allocate an invite code
// @Tags         events
// @Produce      json
// @Success      200  {object}  codeResponse
// @Failure      401  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/events/master/{eventId}/code/create [get]
func (h *EventHandler) CreateCode(c echo.Context) error {
	code, err := h.invites.AllocateCode(c.Request().Context(), c.Param("eventId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: storeUnavailableMessage})
	}
	return c.JSON(http.StatusOK, codeResponse{Code: code})
}

// SubmitRSVP records a guest's response against an invite code.
//
// @Summary      Submit an RSVP
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      rsvpRequest  true  "Guest response"
// @Success      200   {object}  rsvpResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/events/{inviteId} [post]
func (h *EventHandler) SubmitRSVP(c echo.Context) error {
	inviteID := c.Param("inviteId")
	if !domain.ValidInviteCode(inviteID) {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Please provide a valid invite code"})
	}

	var req rsvpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Please provide a valid name"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Please provide a valid name"})
	}

	in := ports.RSVPInput{Name: req.Name, Allergies: req.Allergies, Remarks: req.Remarks}
	if err := h.invites.SubmitRSVP(c.Request().Context(), inviteID, in); err != nil {
		if errors.Is(err, domain.ErrInviteAlreadyAccepted) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "This invite code has already been used"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: storeUnavailableMessage})
	}

	return c.JSON(http.StatusOK, rsvpResponse{Success: true})
}

// InviteDetails returns the invite record and its event for a guest holding
// a code.
//
// @Summary      Fetch invite and event details
// @Tags         events
// @Produce      json
// @Success      200  {object}  inviteDetailsResponse
// @Failure      400  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/events/{inviteId} [get]
func (h *EventHandler) InviteDetails(c echo.Context) error {
	inviteID := c.Param("inviteId")
	if !domain.ValidInviteCode(inviteID) {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Please provide a valid invite code"})
	}

	invite, event, err := h.invites.InviteDetails(c.Request().Context(), inviteID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: storeUnavailableMessage})
	}

	return c.JSON(http.StatusOK, inviteDetailsResponse{Invite: invite, Event: event})
}
