package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/features/dashboard/service"
	helper "manrelbdg_backend/internals/helpers"
	"manrelbdg_backend/internals/middlewares"
)

type DashboardController struct {
	Log     *zap.Logger
	Service *service.DashboardService
}

func NewDashboardController(db *gorm.DB, log *zap.Logger) *DashboardController {
	return &DashboardController{Log: log, Service: service.NewDashboardService(db)}
}

// GET /api/dashboard
func (dc *DashboardController) Get(c *fiber.Ctx) error {
	data, err := dc.Service.Aggregate(c.UserContext())
	if err != nil {
		return helper.FromError(c, dc.Log, err, "Failed to fetch dashboard data")
	}
	return helper.JsonOK(c, "", data)
}

// GET /api/dashboard/history
func (dc *DashboardController) History(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)
	rows, total, err := dc.Service.History(c.UserContext(), p)
	if err != nil {
		return helper.FromError(c, dc.Log, err, "Gagal mengambil riwayat dashboard")
	}
	return helper.JsonList(c, rows, helper.BuildPagination(total, p.Page, p.Limit))
}

// POST /api/dashboard/snapshot
func (dc *DashboardController) Snapshot(c *fiber.Ctx) error {
	row, err := dc.Service.RecordSnapshot(c.UserContext())
	if err != nil {
		return helper.FromError(c, dc.Log, err, "Gagal mencatat snapshot")
	}
	middlewares.SetDomainTotals(row.TotalRelawan, row.TotalKoordinator, row.TotalDapil)
	return helper.JsonCreated(c, "Snapshot dashboard tercatat", row)
}
