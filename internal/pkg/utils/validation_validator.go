package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var schedulePatternRegex = regexp.MustCompile(`^[0-9]-[0-9]-[0-9]$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("dose_period", validateDosePeriod)
	validate.RegisterValidation("schedule_pattern", validateSchedulePattern)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDosePeriod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "morning" || value == "afternoon" || value == "night"
}

// validateSchedulePattern matches the hospital's morning-afternoon-night dose
// pattern shorthand, e.g. "1-0-1".
func validateSchedulePattern(fl validator.FieldLevel) bool {
	return schedulePatternRegex.MatchString(fl.Field().String())
}
