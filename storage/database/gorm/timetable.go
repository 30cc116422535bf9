package gormrepos

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/timetable"
)

var timetableColumns = map[string]string{
	"id":         "id",
	"program":    "program_id",
	"course":     "course_id",
	"teacher":    "teacher_id",
	"device":     "device_id",
	"location":   "location",
	"year":       "year",
	"day":        "day",
	"startTime":  "start_time",
	"endTime":    "end_time",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type timetableRepository struct {
	db *gorm.DB
}

var _ timetable.Repository = (*timetableRepository)(nil) // interface compliance check

func NewTimetableRepository(db *gorm.DB) *timetableRepository {
	return &timetableRepository{db: db}
}

func (repo timetableRepository) row(ent timetable.Entry) timetableEntryRow {
	row := timetableEntryRow{
		ID:            int64(ent.ID),
		ProgramID:     int64(ent.Program),
		CourseID:      int64(ent.Course),
		TeacherID:     int64(ent.Teacher),
		Location:      ent.Location,
		Year:          ent.Year,
		Day:           ent.Day,
		StartTime:     ent.StartTime,
		EndTime:       ent.EndTime,
		Qualification: ent.Qualification,
		CreatedAt:     ent.CreatedAt,
		UpdatedAt:     ent.UpdatedAt,
	}
	if ent.Device != nil {
		id := int64(*ent.Device)
		row.DeviceID = &id
	}
	return row
}

func (repo timetableRepository) unrow(row timetableEntryRow) timetable.Entry {
	ent := timetable.Entry{
		ID:            core.ID(row.ID),
		Program:       core.ID(row.ProgramID),
		Course:        core.ID(row.CourseID),
		Teacher:       core.ID(row.TeacherID),
		Location:      row.Location,
		Year:          row.Year,
		Day:           row.Day,
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		Qualification: row.Qualification,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.DeviceID != nil {
		id := core.ID(*row.DeviceID)
		ent.Device = &id
	}
	return ent
}

func (repo timetableRepository) CreateEntry(ctx context.Context, ent timetable.Entry) (timetable.Entry, error) {
	row := repo.row(ent)
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return timetable.Entry{}, errors.Wrap(err, "inserting timetable entry")
	}
	return repo.unrow(row), nil
}

func (repo timetableRepository) QueryAllEntries(ctx context.Context, ordering ...core.DBOrdering) ([]timetable.Entry, error) {
	var rows []timetableEntryRow
	q := applyOrdering(repo.db.WithContext(ctx), timetableColumns, ordering)
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying timetable entries")
	}
	entries := make([]timetable.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, repo.unrow(row))
	}
	return entries, nil
}

func (repo timetableRepository) GetEntryByID(ctx context.Context, id core.ID) (timetable.Entry, error) {
	var row timetableEntryRow
	if err := repo.db.WithContext(ctx).First(&row, int64(id)).Error; err != nil {
		return timetable.Entry{}, trapNotFound(err, timetable.ErrNotFound, "finding timetable entry by ID")
	}
	return repo.unrow(row), nil
}

func (repo timetableRepository) UpdateEntry(ctx context.Context, ent timetable.Entry) error {
	row := repo.row(ent)
	res := repo.db.WithContext(ctx).Model(&timetableEntryRow{ID: row.ID}).Select("*").Omit("id", "created_at").Updates(row)
	if res.Error != nil {
		return errors.Wrap(res.Error, "updating timetable entry")
	}
	if res.RowsAffected == 0 {
		return timetable.ErrNotFound
	}
	return nil
}

func (repo timetableRepository) DeleteEntriesByID(ctx context.Context, ids ...core.ID) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&timetableEntryRow{}, toIDs(ids))
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "deleting timetable entries")
	}
	return res.RowsAffected, nil
}
