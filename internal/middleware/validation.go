package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// BadRequestErrorResponse is returned when binding fails.
type BadRequestErrorResponse struct {
	Error   string            `json:"error"`
	Details []ValidationError `json:"details,omitempty"`
}

// RegisterValidators installs the custom tags on gin's validator engine.
// Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation("yearmonth", validateYearMonth); err != nil {
		return err
	}
	if err := v.RegisterValidation("isodate", validateISODate); err != nil {
		return err
	}
	return v.RegisterValidation("category", validateCategory)
}

// decimalValue lets numeric tags such as gt=0 apply to decimal.Decimal.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := domain.ParseMonth(fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}

func validateCategory(fl validator.FieldLevel) bool {
	_, ok := domain.LookupCategory(domain.Category(fl.Field().String()))
	return ok
}

// ValidationErrors converts a binding error into field errors. It returns nil
// for errors that did not come from the validator (e.g. malformed JSON).
func ValidationErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: getErrorMsg(fe),
			Type:    fe.Tag(),
		})
	}
	return out
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short or too small, minimum is " + err.Param()
	case "max":
		return "Value is too long or too large, maximum is " + err.Param()
	case "gt":
		return "Value must be greater than " + err.Param()
	case "gte":
		return "Value must be greater than or equal to " + err.Param()
	case "oneof":
		return "Value must be one of: " + err.Param()
	case "yearmonth":
		return "Value must be a month in YYYY-MM format"
	case "isodate":
		return "Value must be a date in YYYY-MM-DD format"
	case "category":
		return "Unknown category"
	default:
		return "Invalid value"
	}
}

// NewBadRequestResponse builds the 400 body for a binding error.
func NewBadRequestResponse(err error) BadRequestErrorResponse {
	details := ValidationErrors(err)
	if details == nil {
		return BadRequestErrorResponse{Error: "Invalid request body: " + err.Error()}
	}
	return BadRequestErrorResponse{Error: "Invalid request data", Details: details}
}
