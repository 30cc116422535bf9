package program

import (
	"github.com/go-playground/validator/v10"

	"github.com/malcolm008/RFID-system/core"
)

// Qualifications
const (
	QualificationCertificate = "Certificate"
	QualificationDiploma     = "Diploma"
	QualificationDegree      = "Degree"
	QualificationMasters     = "Masters"
	QualificationPhD         = "PhD"
)

// Levels
const (
	LevelUndergraduate = "undergraduate"
	LevelPostgraduate  = "postgraduate"
)

var Qualifications = []string{
	QualificationCertificate,
	QualificationDiploma,
	QualificationDegree,
	QualificationMasters,
	QualificationPhD,
}

type Program struct {
	ID            core.ID `json:"id"`
	Name          string  `json:"name"`
	Qualification string  `json:"qualification"`
	Level         string  `json:"level,omitempty"`
	Duration      int     `json:"duration"` // years
	Department    string  `json:"department"`
}

// NewProgram contains information needed to create a new Program.
type NewProgram struct {
	Name          string `json:"name" validate:"required"`
	Qualification string `json:"qualification" validate:"required,oneof=Certificate Diploma Degree Masters PhD"`
	Level         string `json:"level" validate:"omitempty,oneof=undergraduate postgraduate"`
	Duration      int    `json:"duration" validate:"required,min=1"`
	Department    string `json:"department" validate:"required"`
}

func (np *NewProgram) Validate(validate *validator.Validate) error {
	np.Name = core.CleanString(np.Name)
	np.Qualification = core.CleanString(np.Qualification)
	np.Level = core.CleanString(np.Level, true /* lower */)
	np.Department = core.CleanString(np.Department)

	if err := validate.Struct(np); err != nil {
		return err
	}
	return CheckLevel(np.Qualification, np.Level)
}

// UpdateProgram defines what information may be provided to modify an existing
// Program. Nil fields retain their prior value; the level rules are re-checked
// against the merged record by the service.
type UpdateProgram struct {
	ID            core.ID `json:"id"`
	Name          *string `json:"name"`
	Qualification *string `json:"qualification" validate:"omitempty,oneof=Certificate Diploma Degree Masters PhD"`
	Level         *string `json:"level" validate:"omitempty,oneof=undergraduate postgraduate"`
	Duration      *int    `json:"duration" validate:"omitempty,min=1"`
	Department    *string `json:"department"`
}

func (up *UpdateProgram) Validate(validate *validator.Validate) error {
	if up.Name != nil {
		*up.Name = core.CleanString(*up.Name)
	}
	if up.Qualification != nil {
		*up.Qualification = core.CleanString(*up.Qualification)
	}
	if up.Level != nil {
		*up.Level = core.CleanString(*up.Level, true /* lower */)
	}
	if up.Department != nil {
		*up.Department = core.CleanString(*up.Department)
	}
	return validate.Struct(up)
}

func (up UpdateProgram) merge(prog Program) Program {
	if up.Name != nil {
		prog.Name = *up.Name
	}
	if up.Qualification != nil {
		prog.Qualification = *up.Qualification
	}
	if up.Level != nil {
		prog.Level = *up.Level
	}
	if up.Duration != nil {
		prog.Duration = *up.Duration
	}
	if up.Department != nil {
		prog.Department = *up.Department
	}
	return prog
}
