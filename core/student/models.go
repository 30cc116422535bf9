package student

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/malcolm008/RFID-system/core"
)

type Student struct {
	ID             core.ID   `json:"id"`
	Name           string    `json:"name"`
	RegNumber      string    `json:"regNumber"`
	Program        string    `json:"program"`
	Year           int       `json:"year"`
	HasRfid        core.Flag `json:"hasRfid"`
	HasFingerprint core.Flag `json:"hasFingerprint"`
	CreatedAt      time.Time `json:"created_at"` // UTC
	UpdatedAt      time.Time `json:"updated_at"` // UTC
}

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	Name           string    `json:"name" validate:"required"`
	RegNumber      string    `json:"regNumber" validate:"required"`
	Program        string    `json:"program" validate:"required"`
	Year           int       `json:"year" validate:"required,min=1"`
	HasRfid        core.Flag `json:"hasRfid"`
	HasFingerprint core.Flag `json:"hasFingerprint"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.RegNumber = core.CleanString(ns.RegNumber)
	ns.Program = core.CleanString(ns.Program)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing
// Student. Nil fields retain their prior value.
type UpdateStudent struct {
	ID             core.ID    `json:"id"`
	Name           *string    `json:"name"`
	RegNumber      *string    `json:"regNumber"`
	Program        *string    `json:"program"`
	Year           *int       `json:"year" validate:"omitempty,min=1"`
	HasRfid        *core.Flag `json:"hasRfid"`
	HasFingerprint *core.Flag `json:"hasFingerprint"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	if us.Name != nil {
		*us.Name = core.CleanString(*us.Name)
	}
	if us.RegNumber != nil {
		*us.RegNumber = core.CleanString(*us.RegNumber)
	}
	if us.Program != nil {
		*us.Program = core.CleanString(*us.Program)
	}
	return validate.Struct(us)
}

// merge applies the supplied fields onto an existing record.
func (us UpdateStudent) merge(std Student) Student {
	if us.Name != nil {
		std.Name = *us.Name
	}
	if us.RegNumber != nil {
		std.RegNumber = *us.RegNumber
	}
	if us.Program != nil {
		std.Program = *us.Program
	}
	if us.Year != nil {
		std.Year = *us.Year
	}
	if us.HasRfid != nil {
		std.HasRfid = *us.HasRfid
	}
	if us.HasFingerprint != nil {
		std.HasFingerprint = *us.HasFingerprint
	}
	return std
}
