package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"crm/constants"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

// Register installs the custom binding tags on gin's validator engine.
// It is safe to call more than once.
func Register() error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *playground.Validate) error {
	tags := map[string]playground.Func{
		"yearmonth":   isYearMonth,
		"jobtype":     oneOf(constants.JobTypes),
		"jobstatus":   oneOf(constants.JobStatuses),
		"staffrole":   oneOf(constants.StaffRoles),
		"staffstatus": oneOf(constants.UserStatuses),
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func isYearMonth(fl playground.FieldLevel) bool {
	return IsYearMonth(fl.Field().String())
}

func oneOf(values []string) playground.Func {
	return func(fl playground.FieldLevel) bool {
		return constants.Contains(values, fl.Field().String())
	}
}

// IsYearMonth reports whether s is a YYYY-MM month
func IsYearMonth(s string) bool {
	if len(s) != len(constants.MonthLayout) {
		return false
	}
	_, err := time.Parse(constants.MonthLayout, s)
	return err == nil
}

// Message turns a binding error into a single readable sentence.
func Message(err error) string {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe playground.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be greater than %s", field, orEqual(fe))
	case "yearmonth":
		return field + " must be in YYYY-MM format"
	case "jobtype":
		return field + " must be one of " + strings.Join(constants.JobTypes, ", ")
	case "jobstatus":
		return field + " must be one of " + strings.Join(constants.JobStatuses, ", ")
	case "staffrole":
		return field + " must be one of " + strings.Join(constants.StaffRoles, ", ")
	case "staffstatus":
		return field + " must be one of " + strings.Join(constants.UserStatuses, ", ")
	default:
		return field + " is invalid"
	}
}

func orEqual(fe playground.FieldError) string {
	if fe.Tag() == "gte" {
		return "or equal to " + fe.Param()
	}
	return fe.Param()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
