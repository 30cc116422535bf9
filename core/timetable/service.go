package timetable

import (
	"context"
	"fmt"
	"time"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/core/course"
	"github.com/malcolm008/RFID-system/core/device"
	"github.com/malcolm008/RFID-system/core/program"
	"github.com/malcolm008/RFID-system/core/teacher"
)

var ErrNotFound = core.NewNotFoundError("Timetable entry not found")

type Repository interface {
	CreateEntry(ctx context.Context, ent Entry) (Entry, error)
	QueryAllEntries(ctx context.Context, ordering ...core.DBOrdering) ([]Entry, error)
	GetEntryByID(ctx context.Context, id core.ID) (Entry, error)
	UpdateEntry(ctx context.Context, ent Entry) error
	DeleteEntriesByID(ctx context.Context, ids ...core.ID) (int64, error)
}

type Service struct {
	repo        Repository
	programRepo program.Repository
	courseRepo  course.Repository
	teacherRepo teacher.Repository
	deviceRepo  device.Repository
	logger      core.Logger
}

func NewService(
	repo Repository,
	programRepo program.Repository,
	courseRepo course.Repository,
	teacherRepo teacher.Repository,
	deviceRepo device.Repository,
	logger core.Logger,
) *Service {
	return &Service{
		repo:        repo,
		programRepo: programRepo,
		courseRepo:  courseRepo,
		teacherRepo: teacherRepo,
		deviceRepo:  deviceRepo,
		logger:      logger,
	}
}

func (svc *Service) Create(ctx context.Context, ne NewEntry) (Entry, error) {
	ent := Entry{
		Program:       ne.Program,
		Course:        ne.Course,
		Teacher:       ne.Teacher,
		Device:        ne.Device,
		Location:      ne.Location,
		Year:          ne.Year,
		Day:           ne.Day,
		StartTime:     ne.StartTime,
		EndTime:       ne.EndTime,
		Qualification: ne.Qualification,
	}
	if err := svc.checkRefs(ctx, ent); err != nil {
		return Entry{}, err
	}

	now := time.Now().UTC()
	ent.CreatedAt = now
	ent.UpdatedAt = now

	ent, err := svc.repo.CreateEntry(ctx, ent)
	if err != nil {
		return Entry{}, err
	}
	svc.logger.Debug(fmt.Sprintf("timetable entry created: id=%s course=%s", ent.ID, ent.Course))
	return ent, nil
}

func (svc *Service) QueryAll(ctx context.Context, ordering ...core.DBOrdering) ([]Entry, error) {
	return svc.repo.QueryAllEntries(ctx, ordering...)
}

func (svc *Service) GetByID(ctx context.Context, id core.ID) (Entry, error) {
	return svc.repo.GetEntryByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, ue UpdateEntry) (Entry, error) {
	ent, err := svc.GetByID(ctx, ue.ID)
	if err != nil {
		return Entry{}, err
	}
	ent = ue.merge(ent)
	if err = svc.checkRefs(ctx, ent); err != nil {
		return Entry{}, err
	}
	ent.UpdatedAt = time.Now().UTC()
	if err = svc.repo.UpdateEntry(ctx, ent); err != nil {
		return Entry{}, err
	}
	return ent, nil
}

func (svc *Service) Delete(ctx context.Context, id core.ID) error {
	n, err := svc.repo.DeleteEntriesByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *Service) DeleteMany(ctx context.Context, ids ...core.ID) (int64, error) {
	return svc.repo.DeleteEntriesByID(ctx, ids...)
}

// checkRefs verifies that every referenced record exists. Missing references
// are reported together, one field error per reference.
func (svc *Service) checkRefs(ctx context.Context, ent Entry) error {
	var fields []core.FieldError

	if _, err := svc.programRepo.GetProgramByID(ctx, ent.Program); err != nil {
		if !core.IsNotFound(err) {
			return err
		}
		fields = append(fields, core.FieldError{Field: "program", Error: "program not found"})
	}
	if _, err := svc.courseRepo.GetCourseByID(ctx, ent.Course); err != nil {
		if !core.IsNotFound(err) {
			return err
		}
		fields = append(fields, core.FieldError{Field: "course", Error: "course not found"})
	}
	if _, err := svc.teacherRepo.GetTeacherByID(ctx, ent.Teacher); err != nil {
		if !core.IsNotFound(err) {
			return err
		}
		fields = append(fields, core.FieldError{Field: "teacher", Error: "teacher not found"})
	}
	if ent.Device != nil {
		if _, err := svc.deviceRepo.GetDeviceByID(ctx, *ent.Device); err != nil {
			if !core.IsNotFound(err) {
				return err
			}
			fields = append(fields, core.FieldError{Field: "device", Error: "device not found"})
		}
	}

	if len(fields) > 0 {
		return core.NewValidationError(nil, fields...)
	}
	return nil
}
