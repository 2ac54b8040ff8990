package users

import (
	"context"
	_ "embed"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepo "manrelbdg_backend/internals/features/users/auth/repository"
	authService "manrelbdg_backend/internals/features/users/auth/service"
	"manrelbdg_backend/internals/features/users/user/model"
)

//go:embed data_users.json
var dataUsers []byte

type UserSeed struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// SeedUsers: user yang email-nya sudah ada dilewati.
func SeedUsers(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var inputs []UserSeed
	if err := sonic.Unmarshal(dataUsers, &inputs); err != nil {
		return err
	}

	for _, data := range inputs {
		exists, err := authRepo.EmailExists(ctx, db, data.Email)
		if err != nil {
			return err
		}
		if exists {
			log.Info("ℹ️ user sudah ada, dilewati", zap.String("email", data.Email))
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashed, err := authService.HashPassword(data.Password)
		if err != nil {
			return err
		}
		u := &model.UserModel{
			Email:    data.Email,
			Password: hashed,
			Name:     data.Name,
			Role:     data.Role,
			IsActive: true,
		}
		if err := authRepo.CreateUser(ctx, db, u); err != nil {
			return err
		}
		log.Info("✅ user dibuat", zap.String("email", data.Email), zap.String("role", data.Role))
	}
	return nil
}

// FindAdmin: admin seed, dipakai sebagai createdBy data contoh.
func FindAdmin(ctx context.Context, db *gorm.DB) (*model.UserModel, error) {
	return authRepo.FindUserByEmail(ctx, db, "admin@manrelbdg.com")
}
