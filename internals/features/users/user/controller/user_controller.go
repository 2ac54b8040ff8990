package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/constants"
	"manrelbdg_backend/internals/features/users/user/dto"
	"manrelbdg_backend/internals/features/users/user/service"
	helper "manrelbdg_backend/internals/helpers"
	authMw "manrelbdg_backend/internals/middlewares/auth"
)

type UserController struct {
	Log     *zap.Logger
	Service *service.UserService
}

func NewUserController(db *gorm.DB, log *zap.Logger) *UserController {
	return &UserController{Log: log, Service: service.NewUserService(db)}
}

// GET /api/users
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)
	users, total, err := uc.Service.List(c.UserContext(), p, c.Query("role"))
	if err != nil {
		return helper.FromError(c, uc.Log, err, "Failed to retrieve users")
	}
	return helper.JsonList(c, users, helper.BuildPagination(total, p.Page, p.Limit))
}

// PATCH /api/users/:id/status
func (uc *UserController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.MsgUserNotFound)
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidBody)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.FromError(c, uc.Log, err, "")
	}

	actorID, _ := authMw.CurrentUserID(c)
	user, err := uc.Service.SetActive(c.UserContext(), actorID, id, *req.IsActive)
	if err != nil {
		return helper.FromError(c, uc.Log, err, "Failed to update user status")
	}

	uc.Log.Info("user status changed",
		zap.String("actor_id", actorID.String()),
		zap.String("user_id", user.ID.String()),
		zap.Bool("is_active", user.IsActive),
	)
	return helper.JsonUpdated(c, "Status user diperbarui", user)
}
