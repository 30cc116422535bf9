package device

import (
	"context"
	"time"

	"github.com/malcolm008/RFID-system/core"
)

var ErrNotFound = core.NewNotFoundError("Device not found")

type (
	Repository interface {
		CreateDevice(ctx context.Context, dev Device) (Device, error)
		QueryAllDevices(ctx context.Context, ordering ...core.DBOrdering) ([]Device, error)
		GetDeviceByID(ctx context.Context, id core.ID) (Device, error)
		UpdateDevice(ctx context.Context, dev Device) (Device, error)
		DeleteDevicesByID(ctx context.Context, ids ...core.ID) (int64, error)
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (svc *Service) Create(ctx context.Context, nd NewDevice) (Device, error) {
	now := time.Now().UTC()
	dev := Device{
		Name:      nd.Name,
		Type:      nd.Type,
		Location:  nd.Location,
		LastSeen:  nd.LastSeen.UTC(),
		Status:    nd.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if dev.Status == "" {
		dev.Status = StatusOffline
	}
	return svc.repo.CreateDevice(ctx, dev)
}

// QueryAll returns all devices, most recently seen first unless another
// ordering is requested.
func (svc *Service) QueryAll(ctx context.Context, ordering ...core.DBOrdering) ([]Device, error) {
	if len(ordering) == 0 {
		ordering = []core.DBOrdering{{Field: "lastSeen", Ascending: false}}
	}
	return svc.repo.QueryAllDevices(ctx, ordering...)
}

func (svc *Service) GetByID(ctx context.Context, id core.ID) (Device, error) {
	return svc.repo.GetDeviceByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, ud UpdateDevice) (Device, error) {
	dev, err := svc.repo.GetDeviceByID(ctx, ud.ID)
	if err != nil {
		return Device{}, err
	}
	dev = ud.merge(dev)
	dev.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateDevice(ctx, dev)
}

func (svc *Service) Delete(ctx context.Context, id core.ID) error {
	n, err := svc.repo.DeleteDevicesByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) DeleteMany(ctx context.Context, ids ...core.ID) (int64, error) {
	return svc.repo.DeleteDevicesByID(ctx, ids...)
}
