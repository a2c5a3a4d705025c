package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/user-service/internal/core/ports"
)

// AuthHandler serves the login and identity-echo endpoints.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type profileResponse struct {
	SubjectID string     `json:"subject_id"`
	Username  string     `json:"username"`
	Roles     []string   `json:"roles"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Login mints a token for credentials already validated by the local-strategy
// middleware; the identity comes from the request context, not the body.
//
// @Summary      Login with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	token, err := h.auth.IssueToken(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}

// Profile returns the caller's verified identity plus the last recorded login.
//
// @Summary      Current caller profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	resp := profileResponse{
		SubjectID: identity.SubjectID,
		Username:  identity.Username,
		Roles:     identity.Roles,
	}
	if at, ok := h.auth.LastLogin(c.Request().Context(), identity.Username); ok {
		resp.LastLogin = &at
	}

	return c.JSON(http.StatusOK, resp)
}

// AdminOnly echoes the identity back on a route restricted to the admin role.
//
// @Summary      Admin-gated identity echo
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /auth/admin [get]
func (h *AuthHandler) AdminOnly(c echo.Context) error {
	return h.echoIdentity(c)
}

// UserOnly echoes the identity back on a route restricted to the user role.
//
// @Summary      User-gated identity echo
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /auth/user [get]
func (h *AuthHandler) UserOnly(c echo.Context) error {
	return h.echoIdentity(c)
}

func (h *AuthHandler) echoIdentity(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{
		SubjectID: identity.SubjectID,
		Username:  identity.Username,
		Roles:     identity.Roles,
	})
}
