package gormrepos

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/course"
)

var courseColumns = map[string]string{
	"id":            "id",
	"name":          "name",
	"code":          "code",
	"qualification": "qualification",
	"semester":      "semester",
	"year":          "year",
}

type courseRepository struct {
	db *gorm.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *gorm.DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo courseRepository) row(crs course.Course) courseRow {
	row := courseRow{
		ID:            int64(crs.ID),
		Name:          crs.Name,
		Code:          crs.Code,
		Qualification: crs.Qualification,
		Semester:      crs.Semester,
		Year:          crs.Year,
	}
	for _, id := range crs.Programs {
		row.Programs = append(row.Programs, programRow{ID: int64(id)})
	}
	return row
}

func (repo courseRepository) unrow(row courseRow) course.Course {
	crs := course.Course{
		ID:            core.ID(row.ID),
		Name:          row.Name,
		Code:          row.Code,
		Qualification: row.Qualification,
		Programs:      make([]core.ID, 0, len(row.Programs)),
		Semester:      row.Semester,
		Year:          row.Year,
	}
	for _, prog := range row.Programs {
		crs.Programs = append(crs.Programs, core.ID(prog.ID))
	}
	return crs
}

func (repo courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	row := repo.row(crs)
	// only link existing programs, never upsert them
	if err := repo.db.WithContext(ctx).Omit("Programs.*").Create(&row).Error; err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return repo.unrow(row), nil
}

func (repo courseRepository) QueryAllCourses(ctx context.Context, ordering ...core.DBOrdering) ([]course.Course, error) {
	var rows []courseRow
	q := applyOrdering(repo.db.WithContext(ctx).Preload("Programs"), courseColumns, ordering)
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	courses := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, repo.unrow(row))
	}
	return courses, nil
}

func (repo courseRepository) GetCourseByID(ctx context.Context, id core.ID) (course.Course, error) {
	var row courseRow
	if err := repo.db.WithContext(ctx).Preload("Programs").First(&row, int64(id)).Error; err != nil {
		return course.Course{}, trapNotFound(err, course.ErrNotFound, "finding course by ID")
	}
	return repo.unrow(row), nil
}

func (repo courseRepository) UpdateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	row := repo.row(crs)
	res := repo.db.WithContext(ctx).
		Model(&courseRow{ID: row.ID}).
		Select("name", "code", "qualification", "semester", "year").
		Updates(row)
	if res.Error != nil {
		return course.Course{}, errors.Wrap(res.Error, "updating course")
	}
	if res.RowsAffected == 0 {
		return course.Course{}, course.ErrNotFound
	}

	// replace the program links wholesale
	links := make([]programRow, 0, len(crs.Programs))
	for _, id := range crs.Programs {
		links = append(links, programRow{ID: int64(id)})
	}
	if err := repo.db.WithContext(ctx).Model(&courseRow{ID: row.ID}).Association("Programs").Replace(&links); err != nil {
		return course.Course{}, errors.Wrap(err, "updating course programs")
	}
	return crs, nil
}

func (repo courseRepository) DeleteCoursesByID(ctx context.Context, ids ...core.ID) (int64, error) {
	// join rows are removed by the ON DELETE CASCADE constraint
	res := repo.db.WithContext(ctx).Delete(&courseRow{}, toIDs(ids))
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "deleting courses")
	}
	return res.RowsAffected, nil
}
