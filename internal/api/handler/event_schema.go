package handler

import "github.com/candles/rsvp-system/internal/core/domain"

type rsvpRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Allergies *string `json:"allergies" validate:"omitempty,max=255"`
	Remarks   *string `json:"remarks" validate:"omitempty,max=255"`
}

type codeResponse struct {
	Code string `json:"code"`
}

type rsvpResponse struct {
	Success bool `json:"success"`
}

type inviteDetailsResponse struct {
	Invite *domain.Invite `json:"invite"`
	Event  *domain.Event  `json:"event"`
}

type messageResponse struct {
	Message string `json:"message"`
}
