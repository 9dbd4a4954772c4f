package task

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DueDateLayout is the accepted input format for due_date values.
const DueDateLayout = "2006-01-02 15:04:05"

// CreateInput is the client payload for creating a task, with the create
// rule set attached as validate tags.
type CreateInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	Status      *string `json:"status" validate:"omitnil,oneof=pending in_progress completed"`
	DueDate     *string `json:"due_date" validate:"omitnil,datetime=2006-01-02 15:04:05"`
}

// UpdateInput is the client payload for a partial update. Title is optional
// but must be non-empty when supplied; the other rules match CreateInput.
type UpdateInput struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	Status      *string `json:"status" validate:"omitnil,oneof=pending in_progress completed"`
	DueDate     *string `json:"due_date" validate:"omitnil,datetime=2006-01-02 15:04:05"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the JSON field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCreate checks in against the create rule set. It returns a
// *ValidationError listing every violated field, or nil.
func ValidateCreate(in CreateInput) error {
	return translate(validate.Struct(in))
}

// ValidateUpdate checks in against the update rule set.
func ValidateUpdate(in UpdateInput) error {
	return translate(validate.Struct(in))
}

// translate converts validator errors into a ValidationError with
// human-readable messages.
func translate(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.add(fe.Field(), messageFor(fe))
	}
	return ve
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "min":
		return fmt.Sprintf("The %s field must not be empty.", field)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "datetime":
		return fmt.Sprintf("The %s does not match the format YYYY-MM-DD HH:MM:SS.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
