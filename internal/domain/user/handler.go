package user

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	issuer *auth.TokenIssuer
}

func NewHandler(svc *Service, issuer *auth.TokenIssuer) *Handler {
	return &Handler{svc: svc, issuer: issuer}
}

// RegisterRoutes mounts the auth endpoints on an unauthenticated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
}

type registerRequest struct {
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	RoleID   string  `json:"role_id"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

type loginRequest struct {
	Role     string `json:"role"`
	RoleID   string `json:"role_id"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	u, err := h.svc.Register(c.Request().Context(), Registration{
		Name:     req.Name,
		Role:     req.Role,
		RoleID:   req.RoleID,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if errors.Is(err, ErrDuplicate) {
		return echo.NewHTTPError(http.StatusBadRequest, "User with this ID already exists")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.issuer.Issue(u.ID.String(), u.Role, u.RoleID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to issue token")
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: u})
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	u, err := h.svc.Login(c.Request().Context(), req.Role, req.RoleID, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}

	token, err := h.issuer.Issue(u.ID.String(), u.Role, u.RoleID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to issue token")
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: u})
}
