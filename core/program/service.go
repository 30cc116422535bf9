package program

import (
	"context"
	"fmt"

	"github.com/malcolm008/RFID-system/core"
)

var ErrNotFound = core.NewNotFoundError("Program not found")

type (
	Repository interface {
		CreateProgram(ctx context.Context, prog Program) (Program, error)
		QueryAllPrograms(ctx context.Context, ordering ...core.DBOrdering) ([]Program, error)
		GetProgramByID(ctx context.Context, id core.ID) (Program, error)
		// GetProgramsByID returns the programs whose ids are in `ids`;
		// missing ids are silently skipped.
		GetProgramsByID(ctx context.Context, ids ...core.ID) ([]Program, error)
		UpdateProgram(ctx context.Context, prog Program) (Program, error)
		DeleteProgramsByID(ctx context.Context, ids ...core.ID) (int64, error)
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (svc *Service) Create(ctx context.Context, np NewProgram) (Program, error) {
	prog := Program{
		Name:          np.Name,
		Qualification: np.Qualification,
		Level:         np.Level,
		Duration:      np.Duration,
		Department:    np.Department,
	}
	prog, err := svc.repo.CreateProgram(ctx, prog)
	if err != nil {
		return Program{}, err
	}
	svc.logger.Debug(fmt.Sprintf("program created: id=%s name=%s", prog.ID, prog.Name))
	return prog, nil
}

func (svc *Service) QueryAll(ctx context.Context, ordering ...core.DBOrdering) ([]Program, error) {
	return svc.repo.QueryAllPrograms(ctx, ordering...)
}

func (svc *Service) GetByID(ctx context.Context, id core.ID) (Program, error) {
	return svc.repo.GetProgramByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, up UpdateProgram) (Program, error) {
	prog, err := svc.repo.GetProgramByID(ctx, up.ID)
	if err != nil {
		return Program{}, err
	}
	prog = up.merge(prog)

	// the level rules hold for the merged record, not just the supplied fields
	if err := CheckLevel(prog.Qualification, prog.Level); err != nil {
		return Program{}, err
	}
	return svc.repo.UpdateProgram(ctx, prog)
}

func (svc *Service) Delete(ctx context.Context, id core.ID) error {
	n, err := svc.repo.DeleteProgramsByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) DeleteMany(ctx context.Context, ids ...core.ID) (int64, error) {
	return svc.repo.DeleteProgramsByID(ctx, ids...)
}
