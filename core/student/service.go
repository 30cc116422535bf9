package student

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/malcolm008/RFID-system/core"
)

var (
	ErrNotFound        = core.NewNotFoundError("Student not found")
	ErrRegNumberExists = errors.New("a student with this regNumber already exists")
)

type (
	Repository interface {
		CreateStudent(ctx context.Context, std Student) (Student, error)
		QueryAllStudents(ctx context.Context, ordering ...core.DBOrdering) ([]Student, error)
		GetStudentByID(ctx context.Context, id core.ID) (Student, error)
		UpdateStudent(ctx context.Context, std Student) (Student, error)
		DeleteStudentsByID(ctx context.Context, ids ...core.ID) (int64, error)
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	now := time.Now().UTC()
	std := Student{
		Name:           ns.Name,
		RegNumber:      ns.RegNumber,
		Program:        ns.Program,
		Year:           ns.Year,
		HasRfid:        ns.HasRfid,
		HasFingerprint: ns.HasFingerprint,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	std, err := svc.repo.CreateStudent(ctx, std)
	if err != nil {
		return Student{}, svc.trapRegNumberExists(err)
	}
	svc.logger.Debug(fmt.Sprintf("student created: id=%s regNumber=%s", std.ID, std.RegNumber))
	return std, nil
}

func (svc *Service) QueryAll(ctx context.Context, ordering ...core.DBOrdering) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx, ordering...)
}

func (svc *Service) GetByID(ctx context.Context, id core.ID) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, us UpdateStudent) (Student, error) {
	std, err := svc.repo.GetStudentByID(ctx, us.ID)
	if err != nil {
		return Student{}, err
	}
	std = us.merge(std)
	std.UpdatedAt = time.Now().UTC()

	std, err = svc.repo.UpdateStudent(ctx, std)
	if err != nil {
		return Student{}, svc.trapRegNumberExists(err)
	}
	return std, nil
}

func (svc *Service) Delete(ctx context.Context, id core.ID) error {
	n, err := svc.repo.DeleteStudentsByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany removes all matching records and reports how many were removed.
func (svc *Service) DeleteMany(ctx context.Context, ids ...core.ID) (int64, error) {
	return svc.repo.DeleteStudentsByID(ctx, ids...)
}

func (svc *Service) trapRegNumberExists(err error) error {
	if errors.Cause(err) == ErrRegNumberExists {
		return core.NewValidationError(err, core.FieldError{Field: "regNumber", Error: ErrRegNumberExists.Error()})
	}
	return err
}
