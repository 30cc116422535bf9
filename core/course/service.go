package course

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/program"
)

var (
	ErrNotFound = core.NewNotFoundError("Course not found")

	noProgramsText      = "At least one program must be selected."
	unknownProgramsText = "one or more selected programs do not exist"
)

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		QueryAllCourses(ctx context.Context, ordering ...core.DBOrdering) ([]Course, error)
		GetCourseByID(ctx context.Context, id core.ID) (Course, error)
		UpdateCourse(ctx context.Context, crs Course) (Course, error)
		DeleteCoursesByID(ctx context.Context, ids ...core.ID) (int64, error)
	}

	Service struct {
		repo     Repository
		progRepo program.Repository
		logger   core.Logger
	}
)

func NewService(repo Repository, progRepo program.Repository, logger core.Logger) *Service {
	return &Service{repo: repo, progRepo: progRepo, logger: logger}
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	crs := Course{
		Name:          nc.Name,
		Code:          nc.Code,
		Qualification: nc.Qualification,
		Programs:      nc.Programs,
		Semester:      nc.Semester,
		Year:          nc.Year,
	}
	if err := svc.checkPrograms(ctx, crs); err != nil {
		return Course{}, err
	}
	crs, err := svc.repo.CreateCourse(ctx, crs)
	if err != nil {
		return Course{}, err
	}
	svc.logger.Debug(fmt.Sprintf("course created: id=%s code=%s", crs.ID, crs.Code))
	return crs, nil
}

func (svc *Service) QueryAll(ctx context.Context, ordering ...core.DBOrdering) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx, ordering...)
}

func (svc *Service) GetByID(ctx context.Context, id core.ID) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, uc UpdateCourse) (Course, error) {
	crs, err := svc.repo.GetCourseByID(ctx, uc.ID)
	if err != nil {
		return Course{}, err
	}
	crs = uc.merge(crs)

	// re-check the program rules against the merged record
	if err := svc.checkPrograms(ctx, crs); err != nil {
		return Course{}, err
	}
	return svc.repo.UpdateCourse(ctx, crs)
}

func (svc *Service) Delete(ctx context.Context, id core.ID) error {
	n, err := svc.repo.DeleteCoursesByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) DeleteMany(ctx context.Context, ids ...core.ID) (int64, error) {
	return svc.repo.DeleteCoursesByID(ctx, ids...)
}

// checkPrograms resolves the linked programs and enforces the cross-entity
// rules: at least one program, matching qualification per program, and
// course year within each program's duration. All applicable errors are
// reported together.
func (svc *Service) checkPrograms(ctx context.Context, crs Course) error {
	if len(crs.Programs) == 0 {
		return core.NewValidationError(
			errors.New(noProgramsText),
			core.FieldError{Field: "programs", Error: noProgramsText},
		)
	}

	progs, err := svc.progRepo.GetProgramsByID(ctx, crs.Programs...)
	if err != nil {
		return errors.Wrap(err, "resolving course programs")
	}
	if len(progs) != len(dedupe(crs.Programs)) {
		return core.NewValidationError(
			errors.New(unknownProgramsText),
			core.FieldError{Field: "programs", Error: unknownProgramsText},
		)
	}

	var fldErrs []core.FieldError
	for _, prog := range progs {
		if prog.Qualification != crs.Qualification {
			fldErrs = append(fldErrs, core.FieldError{
				Field: "programs",
				Error: fmt.Sprintf("program %q is a %s program, not %s", prog.Name, prog.Qualification, crs.Qualification),
			})
		}
		if crs.Year > prog.Duration {
			fldErrs = append(fldErrs, core.FieldError{
				Field: "year",
				Error: fmt.Sprintf("year exceeds the duration of program %q (%d years)", prog.Name, prog.Duration),
			})
		}
	}
	if len(fldErrs) > 0 {
		return core.NewValidationError(errors.New("course does not satisfy its program rules"), fldErrs...)
	}
	return nil
}

func dedupe(ids []core.ID) []core.ID {
	seen := make(map[core.ID]struct{}, len(ids))
	out := make([]core.ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
