package gormrepos

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/program"
)

var programColumns = map[string]string{
	"id":            "id",
	"name":          "name",
	"qualification": "qualification",
	"level":         "level",
	"duration":      "duration",
	"department":    "department",
}

type programRepository struct {
	db *gorm.DB
}

var _ program.Repository = (*programRepository)(nil) // interface compliance check

func NewProgramRepository(db *gorm.DB) *programRepository {
	return &programRepository{db: db}
}

func (repo programRepository) row(prog program.Program) programRow {
	return programRow{
		ID:            int64(prog.ID),
		Name:          prog.Name,
		Qualification: prog.Qualification,
		Level:         prog.Level,
		Duration:      prog.Duration,
		Department:    prog.Department,
	}
}

func (repo programRepository) unrow(row programRow) program.Program {
	return program.Program{
		ID:            core.ID(row.ID),
		Name:          row.Name,
		Qualification: row.Qualification,
		Level:         row.Level,
		Duration:      row.Duration,
		Department:    row.Department,
	}
}

func (repo programRepository) CreateProgram(ctx context.Context, prog program.Program) (program.Program, error) {
	row := repo.row(prog)
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return program.Program{}, errors.Wrap(err, "inserting program")
	}
	return repo.unrow(row), nil
}

func (repo programRepository) QueryAllPrograms(ctx context.Context, ordering ...core.DBOrdering) ([]program.Program, error) {
	var rows []programRow
	q := applyOrdering(repo.db.WithContext(ctx), programColumns, ordering)
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying programs")
	}
	programs := make([]program.Program, 0, len(rows))
	for _, row := range rows {
		programs = append(programs, repo.unrow(row))
	}
	return programs, nil
}

func (repo programRepository) GetProgramByID(ctx context.Context, id core.ID) (program.Program, error) {
	var row programRow
	if err := repo.db.WithContext(ctx).First(&row, int64(id)).Error; err != nil {
		return program.Program{}, trapNotFound(err, program.ErrNotFound, "finding program by ID")
	}
	return repo.unrow(row), nil
}

func (repo programRepository) GetProgramsByID(ctx context.Context, ids ...core.ID) ([]program.Program, error) {
	var rows []programRow
	if err := repo.db.WithContext(ctx).Find(&rows, toIDs(ids)).Error; err != nil {
		return nil, errors.Wrap(err, "finding programs by ID")
	}
	programs := make([]program.Program, 0, len(rows))
	for _, row := range rows {
		programs = append(programs, repo.unrow(row))
	}
	return programs, nil
}

func (repo programRepository) UpdateProgram(ctx context.Context, prog program.Program) (program.Program, error) {
	row := repo.row(prog)
	res := repo.db.WithContext(ctx).Model(&programRow{ID: row.ID}).Select("*").Omit("id").Updates(row)
	if res.Error != nil {
		return program.Program{}, errors.Wrap(res.Error, "updating program")
	}
	if res.RowsAffected == 0 {
		return program.Program{}, program.ErrNotFound
	}
	return prog, nil
}

func (repo programRepository) DeleteProgramsByID(ctx context.Context, ids ...core.ID) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&programRow{}, toIDs(ids))
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "deleting programs")
	}
	return res.RowsAffected, nil
}
