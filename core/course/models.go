package course

import (
	"github.com/go-playground/validator/v10"

	"github.com/malcolm008/RFID-system/core"
)

type Course struct {
	ID            core.ID   `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Qualification string    `json:"qualification"`
	Programs      []core.ID `json:"programs"`
	Semester      int       `json:"semester"`
	Year          int       `json:"year"`
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Name          string    `json:"name" validate:"required"`
	Code          string    `json:"code" validate:"required"`
	Qualification string    `json:"qualification" validate:"required,oneof=Certificate Diploma Degree Masters PhD"`
	Programs      []core.ID `json:"programs"`
	Semester      int       `json:"semester" validate:"required,min=1"`
	Year          int       `json:"year" validate:"required,min=1"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Code = core.CleanString(nc.Code)
	nc.Qualification = core.CleanString(nc.Qualification)
	return validate.Struct(nc)
}

// UpdateCourse defines what information may be provided to modify an existing
// Course. Nil fields retain their prior value; a non-nil Programs list
// replaces the linked programs wholesale.
type UpdateCourse struct {
	ID            core.ID   `json:"id"`
	Name          *string   `json:"name"`
	Code          *string   `json:"code"`
	Qualification *string   `json:"qualification" validate:"omitempty,oneof=Certificate Diploma Degree Masters PhD"`
	Programs      []core.ID `json:"programs"`
	Semester      *int      `json:"semester" validate:"omitempty,min=1"`
	Year          *int      `json:"year" validate:"omitempty,min=1"`
}

func (uc *UpdateCourse) Validate(validate *validator.Validate) error {
	if uc.Name != nil {
		*uc.Name = core.CleanString(*uc.Name)
	}
	if uc.Code != nil {
		*uc.Code = core.CleanString(*uc.Code)
	}
	if uc.Qualification != nil {
		*uc.Qualification = core.CleanString(*uc.Qualification)
	}
	return validate.Struct(uc)
}

func (uc UpdateCourse) merge(crs Course) Course {
	if uc.Name != nil {
		crs.Name = *uc.Name
	}
	if uc.Code != nil {
		crs.Code = *uc.Code
	}
	if uc.Qualification != nil {
		crs.Qualification = *uc.Qualification
	}
	if uc.Programs != nil {
		crs.Programs = uc.Programs
	}
	if uc.Semester != nil {
		crs.Semester = *uc.Semester
	}
	if uc.Year != nil {
		crs.Year = *uc.Year
	}
	return crs
}
