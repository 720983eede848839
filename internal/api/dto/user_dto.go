package dto

import (
	"time"

	"github.com/spec-kit/toy-store/internal/domain"
)

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Input converts the request into the domain payload.
func (r RegisterRequest) Input() domain.UserInput {
	return domain.UserInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Input converts the request into the domain payload.
func (r LoginRequest) Input() domain.LoginInput {
	return domain.LoginInput{Email: r.Email, Password: r.Password}
}

// TokenResponse carries an issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is an identity with the credential redacted or omitted.
type UserResponse struct {
	ID        string          `json:"_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Password  string          `json:"password,omitempty"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewRegisteredUser redacts the credential the way the registration
// response always has.
func NewRegisteredUser(user *domain.User) UserResponse {
	resp := NewUserInfo(user)
	resp.Password = "****"
	return resp
}

// NewUserInfo omits the credential entirely.
func NewUserInfo(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
