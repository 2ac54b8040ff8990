package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/users/user/model"
	helper "manrelbdg_backend/internals/helpers"
)

const MsgUserNotFound = "User not found"

var userSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"createdAt": "created_at",
}

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService { return &UserService{DB: db} }

// List: filter role opsional, pencarian nama/email.
func (s *UserService) List(ctx context.Context, p helper.Params, role string) ([]model.UserModel, int64, error) {
	role = strings.ToUpper(strings.TrimSpace(role))
	query := func() *gorm.DB {
		q := s.DB.Model(&model.UserModel{})
		if constants.HasRole(role, constants.AllRoles) {
			q = q.Where("role = ?", role)
		}
		return helper.ApplySearch(q, p.Search, "name", "email")
	}
	return helper.FetchPage[model.UserModel](ctx, query, p, p.OrderClause(userSortColumns, "created_at DESC"))
}

// SetActive mengaktifkan/menonaktifkan akun; admin tidak boleh menonaktifkan dirinya sendiri.
func (s *UserService) SetActive(ctx context.Context, actorID, userID uuid.UUID, active bool) (*model.UserModel, error) {
	if actorID == userID && !active {
		return nil, helper.BadRequest("Tidak dapat menonaktifkan akun sendiri")
	}

	var user model.UserModel
	err := s.DB.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound(MsgUserNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Model(&user).Update("is_active", active).Error; err != nil {
		return nil, err
	}
	user.IsActive = active
	return &user, nil
}
