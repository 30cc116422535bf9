package inmemdb

import (
	"context"
	"sort"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/device"
)

type deviceRepository struct {
	db *deviceTable
}

func NewDeviceRepository(db *DB) device.Repository {
	return &deviceRepository{db: db.device}
}

func (repo *deviceRepository) query(ordering []core.DBOrdering) []device.Device {
	devices := make([]device.Device, 0, len(repo.db.table))
	for _, dev := range repo.db.table {
		devices = append(devices, *dev)
	}

	sort.Slice(devices, func(i, j int) bool { return devices[i].ID < devices[j].ID })
	for _, ord := range ordering {
		if ord.Field != "lastSeen" {
			continue
		}
		sort.SliceStable(devices, func(i, j int) bool {
			if ord.Ascending {
				return devices[i].LastSeen.Before(devices[j].LastSeen)
			}
			return devices[i].LastSeen.After(devices[j].LastSeen)
		})
	}
	return devices
}

func (repo *deviceRepository) CreateDevice(_ context.Context, dev device.Device) (device.Device, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.seq++
	dev.ID = core.ID(repo.db.seq)
	repo.db.table[int(dev.ID)] = &dev
	return dev, nil
}

func (repo *deviceRepository) QueryAllDevices(_ context.Context, ordering ...core.DBOrdering) ([]device.Device, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(ordering), nil
}

func (repo *deviceRepository) GetDeviceByID(_ context.Context, id core.ID) (device.Device, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if dev, ok := repo.db.table[int(id)]; ok {
		return *dev, nil
	}
	return device.Device{}, device.ErrNotFound
}

func (repo *deviceRepository) UpdateDevice(_ context.Context, dev device.Device) (device.Device, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[int(dev.ID)]; !ok {
		return device.Device{}, device.ErrNotFound
	}
	repo.db.table[int(dev.ID)] = &dev
	return dev, nil
}

func (repo *deviceRepository) DeleteDevicesByID(_ context.Context, ids ...core.ID) (int64, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	var n int64
	for _, id := range ids {
		if _, ok := repo.db.table[int(id)]; ok {
			delete(repo.db.table, int(id))
			n++
		}
	}
	return n, nil
}
