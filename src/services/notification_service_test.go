package services

import (
	"context"
	"testing"
	"time"

	"timevalue/src/config"
	"timevalue/src/models"
	"timevalue/src/repositories"
	"timevalue/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryVirtualAssetRepo struct {
	assets []models.VirtualAssetWithCategory
}

func (r *memoryVirtualAssetRepo) GetAllByUser(_ context.Context, _ int) ([]models.VirtualAssetWithCategory, error) {
	return r.assets, nil
}

func (r *memoryVirtualAssetRepo) GetByID(_ context.Context, _, _ int) (*models.VirtualAssetWithCategory, error) {
	return nil, repositories.ErrNotFound
}

func (r *memoryVirtualAssetRepo) GetExpiring(_ context.Context, userID int, from, to time.Time) ([]models.VirtualAssetWithCategory, error) {
	var result []models.VirtualAssetWithCategory
	for _, asset := range r.assets {
		if asset.UserID == userID && !asset.EndDate.Before(from) && !asset.EndDate.After(to) {
			result = append(result, asset)
		}
	}
	return result, nil
}

func (r *memoryVirtualAssetRepo) Create(_ context.Context, _ *models.VirtualAsset) error { return nil }
func (r *memoryVirtualAssetRepo) Update(_ context.Context, _ *models.VirtualAsset) error { return nil }
func (r *memoryVirtualAssetRepo) SoftDelete(_ context.Context, _, _ int) error           { return nil }

type memoryFixedAssetRepo struct {
	assets []models.FixedAssetWithCategory
}

func (r *memoryFixedAssetRepo) GetAllByUser(_ context.Context, _ int) ([]models.FixedAssetWithCategory, error) {
	return r.assets, nil
}

func (r *memoryFixedAssetRepo) GetAllRented(_ context.Context, userID int) ([]models.FixedAssetWithCategory, error) {
	var result []models.FixedAssetWithCategory
	for _, asset := range r.assets {
		if asset.UserID == userID && asset.Status == models.FixedStatusRent {
			result = append(result, asset)
		}
	}
	return result, nil
}

func (r *memoryFixedAssetRepo) GetByID(_ context.Context, _, _ int) (*models.FixedAssetWithCategory, error) {
	return nil, repositories.ErrNotFound
}

func (r *memoryFixedAssetRepo) Create(_ context.Context, _ *models.FixedAsset) error { return nil }
func (r *memoryFixedAssetRepo) Update(_ context.Context, _ *models.FixedAsset) error { return nil }
func (r *memoryFixedAssetRepo) SoftDelete(_ context.Context, _, _ int) error         { return nil }

type memorySettingsRepo struct {
	setting *models.NotificationSetting
}

func (r *memorySettingsRepo) GetNotificationSetting(_ context.Context, _ int) (*models.NotificationSetting, error) {
	if r.setting == nil {
		return nil, repositories.ErrNotFound
	}
	return r.setting, nil
}

func (r *memorySettingsRepo) UpsertNotificationSetting(_ context.Context, setting *models.NotificationSetting) error {
	r.setting = setting
	return nil
}

func (r *memorySettingsRepo) GetPreference(_ context.Context, _ int) (*models.Preference, error) {
	return nil, repositories.ErrNotFound
}

func (r *memorySettingsRepo) UpsertPreference(_ context.Context, _ *models.Preference) error {
	return nil
}

type memoryNotificationRepo struct {
	notifications []models.Notification
	userIDs       []int
}

func (r *memoryNotificationRepo) GetAllByUser(_ context.Context, userID, _ int) ([]models.Notification, error) {
	var result []models.Notification
	for _, notification := range r.notifications {
		if notification.UserID == userID {
			result = append(result, notification)
		}
	}
	return result, nil
}

func (r *memoryNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	notification.ID = len(r.notifications) + 1
	notification.CreatedAt = time.Now()
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *memoryNotificationRepo) MarkRead(_ context.Context, _, _ int) error { return nil }

func (r *memoryNotificationRepo) ExistsRecent(_ context.Context, userID int, kind string, assetID int, since time.Time) (bool, error) {
	for _, notification := range r.notifications {
		if notification.UserID == userID && notification.Kind == kind &&
			notification.AssetID != nil && *notification.AssetID == assetID &&
			!notification.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryNotificationRepo) AllUserIDs(_ context.Context) ([]int, error) {
	return r.userIDs, nil
}

func notificationFixture() (*NotificationService, *memoryNotificationRepo, time.Time) {
	today := utils.Date(2024, time.June, 1)
	dueDay := 3
	rentPrice := 2000.0

	virtualRepo := &memoryVirtualAssetRepo{assets: []models.VirtualAssetWithCategory{
		{VirtualAsset: models.VirtualAsset{
			ID: 1, UserID: 1, Name: "网盘会员",
			TotalAmount: 365,
			StartDate:   utils.Date(2023, time.June, 15),
			EndDate:     utils.Date(2024, time.June, 14),
		}, CategoryName: "云服务"},
		{VirtualAsset: models.VirtualAsset{
			ID: 2, UserID: 1, Name: "音乐会员",
			TotalAmount: 128,
			StartDate:   utils.Date(2024, time.January, 1),
			EndDate:     utils.Date(2024, time.December, 31),
		}, CategoryName: "音乐"},
	}}
	fixedRepo := &memoryFixedAssetRepo{assets: []models.FixedAssetWithCategory{
		{FixedAsset: models.FixedAsset{
			ID: 10, UserID: 1, Name: "出租公寓",
			OriginalValue: 800000, UsefulLifeYears: 40,
			PurchaseDate: utils.Date(2020, time.March, 1),
			Status:       models.FixedStatusRent,
			RentPrice:    &rentPrice, RentDueDay: &dueDay,
		}, CategoryName: "房产"},
	}}
	notificationRepo := &memoryNotificationRepo{userIDs: []int{1}}

	service := NewNotificationService(
		virtualRepo, fixedRepo, &memorySettingsRepo{}, notificationRepo,
		NewRentService(),
		config.NotificationsConfig{DefaultExpiringDays: 30, DefaultRentDueDays: 7},
	)
	return service, notificationRepo, today
}

func TestScanUserWritesExpiringAndRentDue(t *testing.T) {
	service, repo, today := notificationFixture()

	created, err := service.ScanUser(context.Background(), 1, today)
	require.NoError(t, err)

	// The June 14 subscription falls inside the 30-day window, the December
	// one does not. Rent due on the 3rd is two days out.
	assert.Equal(t, 2, created)
	require.Len(t, repo.notifications, 2)
	assert.Equal(t, models.NotificationKindExpiring, repo.notifications[0].Kind)
	assert.Equal(t, models.NotificationKindRentDue, repo.notifications[1].Kind)
}

func TestScanUserIsIdempotentWithinADay(t *testing.T) {
	service, repo, today := notificationFixture()
	ctx := context.Background()

	first, err := service.ScanUser(ctx, 1, today)
	require.NoError(t, err)
	assert.Equal(t, 2, first)

	second, err := service.ScanUser(ctx, 1, today)
	require.NoError(t, err)
	assert.Equal(t, 0, second)
	assert.Len(t, repo.notifications, 2)
}

func TestScanAllUsersCoversEveryUser(t *testing.T) {
	service, repo, today := notificationFixture()
	repo.userIDs = []int{1, 2}

	created, err := service.ScanAllUsers(context.Background(), today)
	require.NoError(t, err)

	// User 2 owns no assets, so only user 1 produces notifications.
	assert.Equal(t, 2, created)
}

func TestScanUserHonorsDisabledSettings(t *testing.T) {
	service, repo, today := notificationFixture()
	service.settings = &memorySettingsRepo{setting: &models.NotificationSetting{
		UserID:          1,
		ExpiringEnabled: false,
		RentDueEnabled:  true,
		RentDueDays:     7,
	}}

	created, err := service.ScanUser(context.Background(), 1, today)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	require.Len(t, repo.notifications, 1)
	assert.Equal(t, models.NotificationKindRentDue, repo.notifications[0].Kind)
}
