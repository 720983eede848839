package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/toy-store/internal/api/dto"
	"github.com/spec-kit/toy-store/internal/auth"
	"github.com/spec-kit/toy-store/internal/service"
	apperrors "github.com/spec-kit/toy-store/pkg/util"
)

// UsersHandler exposes registration, login and identity endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Index handles GET /users.
func (h *UsersHandler) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": "users endpoint"})
}

// UserInfo handles GET /users/userInfo.
func (h *UsersHandler) UserInfo(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	user, err := h.auth.UserInfo(c.Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserInfo(user))
}

// Register handles POST /users.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.auth.Register(c.Context(), req.Input())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewRegisteredUser(user))
}

// Login handles POST /users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, err := h.auth.Login(c.Context(), req.Input())
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}
