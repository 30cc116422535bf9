package gormrepos

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/device"
)

var deviceColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"type":       "type",
	"location":   "location",
	"lastSeen":   "last_seen",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type deviceRepository struct {
	db *gorm.DB
}

var _ device.Repository = (*deviceRepository)(nil) // interface compliance check

func NewDeviceRepository(db *gorm.DB) *deviceRepository {
	return &deviceRepository{db: db}
}

func (repo deviceRepository) row(dev device.Device) deviceRow {
	return deviceRow{
		ID:        int64(dev.ID),
		Name:      dev.Name,
		Type:      dev.Type,
		Location:  dev.Location,
		LastSeen:  dev.LastSeen,
		Status:    dev.Status,
		CreatedAt: dev.CreatedAt,
		UpdatedAt: dev.UpdatedAt,
	}
}

func (repo deviceRepository) unrow(row deviceRow) device.Device {
	return device.Device{
		ID:        core.ID(row.ID),
		Name:      row.Name,
		Type:      row.Type,
		Location:  row.Location,
		LastSeen:  row.LastSeen,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func (repo deviceRepository) CreateDevice(ctx context.Context, dev device.Device) (device.Device, error) {
	row := repo.row(dev)
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return device.Device{}, errors.Wrap(err, "inserting device")
	}
	return repo.unrow(row), nil
}

func (repo deviceRepository) QueryAllDevices(ctx context.Context, ordering ...core.DBOrdering) ([]device.Device, error) {
	var rows []deviceRow
	q := applyOrdering(repo.db.WithContext(ctx), deviceColumns, ordering)
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying devices")
	}
	devices := make([]device.Device, 0, len(rows))
	for _, row := range rows {
		devices = append(devices, repo.unrow(row))
	}
	return devices, nil
}

func (repo deviceRepository) GetDeviceByID(ctx context.Context, id core.ID) (device.Device, error) {
	var row deviceRow
	if err := repo.db.WithContext(ctx).First(&row, int64(id)).Error; err != nil {
		return device.Device{}, trapNotFound(err, device.ErrNotFound, "finding device by ID")
	}
	return repo.unrow(row), nil
}

func (repo deviceRepository) UpdateDevice(ctx context.Context, dev device.Device) (device.Device, error) {
	row := repo.row(dev)
	res := repo.db.WithContext(ctx).Model(&deviceRow{ID: row.ID}).Select("*").Omit("id", "created_at").Updates(row)
	if res.Error != nil {
		return device.Device{}, errors.Wrap(res.Error, "updating device")
	}
	if res.RowsAffected == 0 {
		return device.Device{}, device.ErrNotFound
	}
	return dev, nil
}

func (repo deviceRepository) DeleteDevicesByID(ctx context.Context, ids ...core.ID) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&deviceRow{}, toIDs(ids))
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "deleting devices")
	}
	return res.RowsAffected, nil
}
