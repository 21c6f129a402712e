package controllers

import (
	"time"

	"timevalue/src/clients/wechat"
	"timevalue/src/config"
	"timevalue/src/repositories"
	"timevalue/src/schemas"
	"timevalue/src/services"
	"timevalue/src/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	redis_utils "timevalue/src/utils/redis"
)

// Controller groups the repositories and services behind the API handlers.
// Handlers resolve the authenticated user and delegate here.
type Controller struct {
	Users         repositories.UserRepository
	Categories    repositories.CategoryRepository
	Projects      repositories.ProjectRepository
	VirtualAssets repositories.VirtualAssetRepository
	FixedAssets   repositories.FixedAssetRepository
	Expenses      repositories.ExpenseRepository
	Settings      repositories.SettingsRepository
	Notifications repositories.NotificationRepository

	Auth         *services.AuthService
	QRLogin      *services.QRLoginService
	Proration    services.ProrationServiceI
	Depreciation services.DepreciationServiceI
	Rent         *services.RentService
	Reports      *services.ReportService
	WeChat       wechat.ServiceI

	dashboardCache *utils.Cache[dashboardSnapshot]
	cfg            *config.Config
}

// dashboardSnapshot tags the cached dashboard with its owner so a stale slot
// never serves another user's numbers.
type dashboardSnapshot struct {
	UserID int
	Data   schemas.DashboardResponse
}

func NewController(db *pgxpool.Pool, redisHandler *redis_utils.RedisHandler, wechatClient wechat.ServiceI, cfg *config.Config) *Controller {
	users := repositories.NewUserRepository(db)
	proration := services.NewProrationService()
	depreciation := services.NewDepreciationService()
	rent := services.NewRentService()

	return &Controller{
		Users:         users,
		Categories:    repositories.NewCategoryRepository(db),
		Projects:      repositories.NewProjectRepository(db),
		VirtualAssets: repositories.NewVirtualAssetRepository(db),
		FixedAssets:   repositories.NewFixedAssetRepository(db),
		Expenses:      repositories.NewExpenseRepository(db),
		Settings:      repositories.NewSettingsRepository(db),
		Notifications: repositories.NewNotificationRepository(db),

		Auth:         services.NewAuthService(users, cfg.Auth),
		QRLogin:      services.NewQRLoginService(services.NewRedisQRSessionStore(redisHandler), cfg.WeChat.QRExpirySeconds),
		Proration:    proration,
		Depreciation: depreciation,
		Rent:         rent,
		Reports:      services.NewReportService(proration, depreciation, rent),
		WeChat:       wechatClient,

		dashboardCache: utils.NewCache[dashboardSnapshot](),
		cfg:            cfg,
	}
}

func formatDay(t time.Time) string {
	return t.Format(utils.ShortDashDateLayout)
}

func formatDayPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDay(*t)
}
