package gormrepos

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/teacher"
)

var teacherColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"email":      "email",
	"course":     "course",
	"department": "department",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type teacherRepository struct {
	db *gorm.DB
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *gorm.DB) *teacherRepository {
	return &teacherRepository{db: db}
}

func (repo teacherRepository) row(tch teacher.Teacher) teacherRow {
	return teacherRow{
		ID:             int64(tch.ID),
		Name:           tch.Name,
		Email:          tch.Email,
		Course:         tch.Course,
		Department:     tch.Department,
		HasRfid:        tch.HasRfid.Bool(),
		HasFingerprint: tch.HasFingerprint.Bool(),
		CreatedAt:      tch.CreatedAt,
		UpdatedAt:      tch.UpdatedAt,
	}
}

func (repo teacherRepository) unrow(row teacherRow) teacher.Teacher {
	return teacher.Teacher{
		ID:             core.ID(row.ID),
		Name:           row.Name,
		Email:          row.Email,
		Course:         row.Course,
		Department:     row.Department,
		HasRfid:        core.Flag(row.HasRfid),
		HasFingerprint: core.Flag(row.HasFingerprint),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func (repo teacherRepository) CreateTeacher(ctx context.Context, tch teacher.Teacher) (teacher.Teacher, error) {
	row := repo.row(tch)
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return teacher.Teacher{}, teacher.ErrEmailExists
		}
		return teacher.Teacher{}, errors.Wrap(err, "inserting teacher")
	}
	return repo.unrow(row), nil
}

func (repo teacherRepository) QueryAllTeachers(ctx context.Context, ordering ...core.DBOrdering) ([]teacher.Teacher, error) {
	var rows []teacherRow
	q := applyOrdering(repo.db.WithContext(ctx), teacherColumns, ordering)
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying teachers")
	}
	teachers := make([]teacher.Teacher, 0, len(rows))
	for _, row := range rows {
		teachers = append(teachers, repo.unrow(row))
	}
	return teachers, nil
}

func (repo teacherRepository) GetTeacherByID(ctx context.Context, id core.ID) (teacher.Teacher, error) {
	var row teacherRow
	if err := repo.db.WithContext(ctx).First(&row, int64(id)).Error; err != nil {
		return teacher.Teacher{}, trapNotFound(err, teacher.ErrNotFound, "finding teacher by ID")
	}
	return repo.unrow(row), nil
}

func (repo teacherRepository) UpdateTeacher(ctx context.Context, tch teacher.Teacher) (teacher.Teacher, error) {
	row := repo.row(tch)
	res := repo.db.WithContext(ctx).Model(&teacherRow{ID: row.ID}).Select("*").Omit("id", "created_at").Updates(row)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return teacher.Teacher{}, teacher.ErrEmailExists
		}
		return teacher.Teacher{}, errors.Wrap(res.Error, "updating teacher")
	}
	if res.RowsAffected == 0 {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	return tch, nil
}

func (repo teacherRepository) DeleteTeachersByID(ctx context.Context, ids ...core.ID) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&teacherRow{}, toIDs(ids))
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "deleting teachers")
	}
	return res.RowsAffected, nil
}
