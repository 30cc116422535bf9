package gormrepos

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/student"
)

var studentColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"regNumber":  "reg_number",
	"program":    "program",
	"year":       "year",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type studentRepository struct {
	db *gorm.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *gorm.DB) *studentRepository {
	return &studentRepository{db: db}
}

func (repo studentRepository) row(std student.Student) studentRow {
	return studentRow{
		ID:             int64(std.ID),
		Name:           std.Name,
		RegNumber:      std.RegNumber,
		Program:        std.Program,
		Year:           std.Year,
		HasRfid:        std.HasRfid.Bool(),
		HasFingerprint: std.HasFingerprint.Bool(),
		CreatedAt:      std.CreatedAt,
		UpdatedAt:      std.UpdatedAt,
	}
}

func (repo studentRepository) unrow(row studentRow) student.Student {
	return student.Student{
		ID:             core.ID(row.ID),
		Name:           row.Name,
		RegNumber:      row.RegNumber,
		Program:        row.Program,
		Year:           row.Year,
		HasRfid:        core.Flag(row.HasRfid),
		HasFingerprint: core.Flag(row.HasFingerprint),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func (repo studentRepository) CreateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	row := repo.row(std)
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return student.Student{}, student.ErrRegNumberExists
		}
		return student.Student{}, errors.Wrap(err, "inserting student")
	}
	return repo.unrow(row), nil
}

func (repo studentRepository) QueryAllStudents(ctx context.Context, ordering ...core.DBOrdering) ([]student.Student, error) {
	var rows []studentRow
	q := applyOrdering(repo.db.WithContext(ctx), studentColumns, ordering)
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	students := make([]student.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, repo.unrow(row))
	}
	return students, nil
}

func (repo studentRepository) GetStudentByID(ctx context.Context, id core.ID) (student.Student, error) {
	var row studentRow
	if err := repo.db.WithContext(ctx).First(&row, int64(id)).Error; err != nil {
		return student.Student{}, trapNotFound(err, student.ErrNotFound, "finding student by ID")
	}
	return repo.unrow(row), nil
}

func (repo studentRepository) UpdateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	row := repo.row(std)
	res := repo.db.WithContext(ctx).Model(&studentRow{ID: row.ID}).Select("*").Omit("id", "created_at").Updates(row)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return student.Student{}, student.ErrRegNumberExists
		}
		return student.Student{}, errors.Wrap(res.Error, "updating student")
	}
	if res.RowsAffected == 0 {
		return student.Student{}, student.ErrNotFound
	}
	return std, nil
}

func (repo studentRepository) DeleteStudentsByID(ctx context.Context, ids ...core.ID) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&studentRow{}, toIDs(ids))
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "deleting students")
	}
	return res.RowsAffected, nil
}
