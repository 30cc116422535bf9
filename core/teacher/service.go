package teacher

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/malcolm008/RFID-system/core"
)

var (
	ErrNotFound    = core.NewNotFoundError("Teacher not found")
	ErrEmailExists = errors.New("a teacher with this email already exists")
)

type (
	Repository interface {
		CreateTeacher(ctx context.Context, tch Teacher) (Teacher, error)
		QueryAllTeachers(ctx context.Context, ordering ...core.DBOrdering) ([]Teacher, error)
		GetTeacherByID(ctx context.Context, id core.ID) (Teacher, error)
		UpdateTeacher(ctx context.Context, tch Teacher) (Teacher, error)
		DeleteTeachersByID(ctx context.Context, ids ...core.ID) (int64, error)
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (svc *Service) Create(ctx context.Context, nt NewTeacher) (Teacher, error) {
	now := time.Now().UTC()
	tch := Teacher{
		Name:           nt.Name,
		Email:          nt.Email,
		Course:         nt.Course,
		Department:     nt.Department,
		HasRfid:        nt.HasRfid,
		HasFingerprint: nt.HasFingerprint,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	tch, err := svc.repo.CreateTeacher(ctx, tch)
	if err != nil {
		return Teacher{}, svc.trapEmailExists(err)
	}
	svc.logger.Debug(fmt.Sprintf("teacher created: id=%s email=%s", tch.ID, tch.Email))
	return tch, nil
}

func (svc *Service) QueryAll(ctx context.Context, ordering ...core.DBOrdering) ([]Teacher, error) {
	return svc.repo.QueryAllTeachers(ctx, ordering...)
}

func (svc *Service) GetByID(ctx context.Context, id core.ID) (Teacher, error) {
	return svc.repo.GetTeacherByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, ut UpdateTeacher) (Teacher, error) {
	tch, err := svc.repo.GetTeacherByID(ctx, ut.ID)
	if err != nil {
		return Teacher{}, err
	}
	tch = ut.merge(tch)
	tch.UpdatedAt = time.Now().UTC()

	tch, err = svc.repo.UpdateTeacher(ctx, tch)
	if err != nil {
		return Teacher{}, svc.trapEmailExists(err)
	}
	return tch, nil
}

func (svc *Service) Delete(ctx context.Context, id core.ID) error {
	n, err := svc.repo.DeleteTeachersByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) DeleteMany(ctx context.Context, ids ...core.ID) (int64, error) {
	return svc.repo.DeleteTeachersByID(ctx, ids...)
}

func (svc *Service) trapEmailExists(err error) error {
	if errors.Cause(err) == ErrEmailExists {
		return core.NewValidationError(err, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
	}
	return err
}
