package program

import (
	"github.com/pkg/errors"

	"github.com/malcolm008/RFID-system/core"
)

var (
	levelRequiredText  = "Degree programs require a level"
	levelForbiddenText = "This qualification does not support levels"
)

// CheckLevel enforces the qualification/level rules: a Degree program must
// specify a level, Certificate and Diploma programs must not.
func CheckLevel(qualification, level string) error {
	if qualification == QualificationDegree && level == "" {
		return core.NewValidationError(
			errors.New(levelRequiredText),
			core.FieldError{Field: "level", Error: levelRequiredText},
		)
	}
	if (qualification == QualificationCertificate || qualification == QualificationDiploma) && level != "" {
		return core.NewValidationError(
			errors.New(levelForbiddenText),
			core.FieldError{Field: "level", Error: levelForbiddenText},
		)
	}
	return nil
}
