package teacher

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/malcolm008/RFID-system/core"
)

type Teacher struct {
	ID             core.ID   `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Course         string    `json:"course"`
	Department     string    `json:"department"`
	HasRfid        core.Flag `json:"hasRfid"`
	HasFingerprint core.Flag `json:"hasFingerprint"`
	CreatedAt      time.Time `json:"created_at"` // UTC
	UpdatedAt      time.Time `json:"updated_at"` // UTC
}

// NewTeacher contains information needed to register a new Teacher.
type NewTeacher struct {
	Name           string    `json:"name" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	Course         string    `json:"course" validate:"required"`
	Department     string    `json:"department" validate:"required"`
	HasRfid        core.Flag `json:"hasRfid"`
	HasFingerprint core.Flag `json:"hasFingerprint"`
}

func (nt *NewTeacher) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanString(nt.Name)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Course = core.CleanString(nt.Course)
	nt.Department = core.CleanString(nt.Department)
	return validate.Struct(nt)
}

// UpdateTeacher defines what information may be provided to modify an existing
// Teacher. Nil fields retain their prior value.
type UpdateTeacher struct {
	ID             core.ID    `json:"id"`
	Name           *string    `json:"name"`
	Email          *string    `json:"email" validate:"omitempty,email"`
	Course         *string    `json:"course"`
	Department     *string    `json:"department"`
	HasRfid        *core.Flag `json:"hasRfid"`
	HasFingerprint *core.Flag `json:"hasFingerprint"`
}

func (ut *UpdateTeacher) Validate(validate *validator.Validate) error {
	if ut.Name != nil {
		*ut.Name = core.CleanString(*ut.Name)
	}
	if ut.Email != nil {
		*ut.Email = core.CleanString(*ut.Email, true /* lower */)
	}
	if ut.Course != nil {
		*ut.Course = core.CleanString(*ut.Course)
	}
	if ut.Department != nil {
		*ut.Department = core.CleanString(*ut.Department)
	}
	return validate.Struct(ut)
}

func (ut UpdateTeacher) merge(tch Teacher) Teacher {
	if ut.Name != nil {
		tch.Name = *ut.Name
	}
	if ut.Email != nil {
		tch.Email = *ut.Email
	}
	if ut.Course != nil {
		tch.Course = *ut.Course
	}
	if ut.Department != nil {
		tch.Department = *ut.Department
	}
	if ut.HasRfid != nil {
		tch.HasRfid = *ut.HasRfid
	}
	if ut.HasFingerprint != nil {
		tch.HasFingerprint = *ut.HasFingerprint
	}
	return tch
}
