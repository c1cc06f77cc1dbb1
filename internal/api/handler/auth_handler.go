package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/candles/rsvp-system/internal/api/metrics"
	"github.com/candles/rsvp-system/internal/core/domain"
	"github.com/candles/rsvp-system/internal/core/ports"
	"github.com/candles/rsvp-system/internal/identity"
)

// AuthHandler serves the privilege probe, the socket secret, and login.
type AuthHandler struct {
	authService ports.AuthService
	sessions    *identity.Manager
	socketToken string
}

func NewAuthHandler(authService ports.AuthService, sessions *identity.Manager, socketToken string) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, socketToken: socketToken}
}

type loginRequest struct {
	Domain   string `json:"domain" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	DomainID string `json:"domainId"`
}

type privilegeResponse struct {
	Privileged bool `json:"privileged"`
}

type secretResponse struct {
	Secret string `json:"secret"`
}

// Privilege reports whether the caller's session is privileged.
//
// @Summary      Probe session privilege
// @Tags         auth
// @Produce      json
// @Success      200  {object}  privilegeResponse
// @Router       /api/auth/privilege [get]
func (h *AuthHandler) Privilege(c echo.Context) error {
	return c.JSON(http.StatusOK, privilegeResponse{Privileged: h.sessions.IsAdmin(c.Request())})
}

// Secret returns the privileged socket connection token to admin callers.
// Non-admins get an empty 403.
//
// @Summary      Fetch the privileged socket connection token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  secretResponse
// @Failure      403  "empty body"
// @Router       /api/auth/secret [get]
func (h *AuthHandler) Secret(c echo.Context) error {
	if !h.sessions.IsAdmin(c.Request()) {
		return c.NoContent(http.StatusForbidden)
	}
	return c.JSON(http.StatusOK, secretResponse{Secret: h.socketToken})
}

// Login verifies domain credentials and upgrades the caller's session.
//
// @Summary      Authenticate as a domain admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Domain credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	req.Domain = strings.ToLower(strings.TrimSpace(req.Domain))
	req.Password = strings.TrimSpace(req.Password)
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("validation_error").Inc()
		var fields FieldErrors
		if errors.As(err, &fields) {
			return c.JSON(http.StatusBadRequest, map[string]any{"errors": fields})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	// Resolve the session before authenticating, but persist only after a
	// successful match: persisting here and again below would queue two
	// cookie writes for this response.
	sess := h.sessions.Ensure(c.Request())

	domainID, err := h.authService.Login(c.Request().Context(), req.Domain, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("mismatch").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": "Incorrect password, please press the forget password button.",
			})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}

	sess.Authenticated = true
	sess.Domain = domainID
	if err := h.sessions.Persist(c.Response(), sess); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to issue session"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{DomainID: domainID})
}
