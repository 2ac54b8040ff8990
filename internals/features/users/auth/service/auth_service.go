package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/users/auth/dto"
	authRepo "manrelbdg_backend/internals/features/users/auth/repository"
	userModel "manrelbdg_backend/internals/features/users/user/model"
	helper "manrelbdg_backend/internals/helpers"
	helpersAuth "manrelbdg_backend/internals/helpers/auth"
)

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailTaken         = "User with this email already exists"
	MsgWrongPassword      = "Current password is incorrect"
)

type AuthService struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthService(db *gorm.DB, cfg *configs.Config) *AuthService {
	return &AuthService{DB: db, Cfg: cfg}
}

// ========================== LOGIN ==========================

// Login mengembalikan user, token, dan waktu kedaluwarsa token.
// Email tidak dikenal dan password salah memakai pesan yang sama.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*userModel.UserModel, string, time.Time, error) {
	user, err := authRepo.FindUserByEmail(ctx, s.DB, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", time.Time{}, helper.Unauthorized(MsgInvalidCredentials)
	}
	if err != nil {
		return nil, "", time.Time{}, err
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return nil, "", time.Time{}, helper.Unauthorized(MsgInvalidCredentials)
	}
	if !user.IsActive {
		return nil, "", time.Time{}, helper.Unauthorized(constants.MsgUserInactive)
	}

	token, exp, err := helpersAuth.IssueToken(s.Cfg.JWTSecret, s.Cfg.TokenTTL, user.ID, user.Email, user.Role, time.Now())
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// ========================== REGISTER (ADMIN) ==========================

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*userModel.UserModel, error) {
	exists, err := authRepo.EmailExists(ctx, s.DB, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, helper.Conflict(MsgEmailTaken)
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = constants.RoleUser
	}
	user := &userModel.UserModel{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		Role:     role,
		IsActive: true,
	}
	if err := authRepo.CreateUser(ctx, s.DB, user); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, helper.Conflict(MsgEmailTaken)
		}
		return nil, err
	}
	return user, nil
}

// ========================== PROFILE & PASSWORD ==========================

func (s *AuthService) UpdateProfile(ctx context.Context, user *userModel.UserModel, req dto.UpdateProfileRequest) (*userModel.UserModel, error) {
	if err := authRepo.UpdateUserName(ctx, s.DB, user.ID, req.Name); err != nil {
		return nil, err
	}
	return authRepo.FindUserByID(ctx, s.DB, user.ID)
}

func (s *AuthService) ChangePassword(ctx context.Context, user *userModel.UserModel, req dto.ChangePasswordRequest) error {
	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return helper.BadRequest(MsgWrongPassword)
	}
	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return authRepo.UpdateUserPassword(ctx, s.DB, user.ID, hashed)
}
