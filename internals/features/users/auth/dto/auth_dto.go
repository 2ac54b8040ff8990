package dto

import (
	"strings"

	userModel "manrelbdg_backend/internals/features/users/user/model"
	helper "manrelbdg_backend/internals/helpers"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email.required":    "Email is required",
		"email":             "Invalid email format",
		"password.required": "Password is required",
		"password":          "Password must be at least 6 characters",
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN USER VIEWER"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = helper.CleanText(r.Name)
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
}

func (RegisterRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email.required":    "Email is required",
		"email":             "Invalid email format",
		"password.required": "Password is required",
		"password":          "Password must be at least 6 characters",
		"name.required":     "Name is required",
		"name":              "Name must be between 2 and 100 characters",
		"role":              "Role must be one of ADMIN, USER, VIEWER",
	}
}

type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func (r *UpdateProfileRequest) Normalize() { r.Name = helper.CleanText(r.Name) }

func (UpdateProfileRequest) ValidationMessages() map[string]string {
	return map[string]string{"name": "Name must be between 2 and 100 characters"}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

func (ChangePasswordRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"currentPassword": "Current password is required",
		"newPassword":     "New password must be at least 6 characters",
	}
}

type LoginResponse struct {
	User  *userModel.UserModel `json:"user"`
	Token string               `json:"token"`
}
