package inmemdb

import (
	"context"
	"sort"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/timetable"
)

type timetableRepository struct {
	db *timetableTable
}

func NewTimetableRepository(db *DB) timetable.Repository {
	return &timetableRepository{db: db.timetable}
}

func (repo *timetableRepository) query() []timetable.Entry {
	entries := make([]timetable.Entry, 0, len(repo.db.table))
	for _, ent := range repo.db.table {
		entries = append(entries, *ent)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

func (repo *timetableRepository) CreateEntry(_ context.Context, ent timetable.Entry) (timetable.Entry, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.seq++
	ent.ID = core.ID(repo.db.seq)
	repo.db.table[int(ent.ID)] = &ent
	return ent, nil
}

func (repo *timetableRepository) QueryAllEntries(_ context.Context, ordering ...core.DBOrdering) ([]timetable.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *timetableRepository) GetEntryByID(_ context.Context, id core.ID) (timetable.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if ent, ok := repo.db.table[int(id)]; ok {
		return *ent, nil
	}
	return timetable.Entry{}, timetable.ErrNotFound
}

func (repo *timetableRepository) UpdateEntry(_ context.Context, ent timetable.Entry) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[int(ent.ID)]; !ok {
		return timetable.ErrNotFound
	}
	repo.db.table[int(ent.ID)] = &ent
	return nil
}

func (repo *timetableRepository) DeleteEntriesByID(_ context.Context, ids ...core.ID) (int64, error) {
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
