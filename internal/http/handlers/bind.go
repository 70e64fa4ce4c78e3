package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/yungbote/storefront-backend/internal/platform/apierr"
	"github.com/yungbote/storefront-backend/internal/services"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validator report fields by their json key.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// bindJSON decodes the request body into dst and translates decode and
// validator failures into field errors.
func bindJSON(c *gin.Context, op string, dst any) error {
	useJSONFieldNames()
	var err error
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		err = binding.Validator.ValidateStruct(dst)
	} else {
		err = c.ShouldBindJSON(dst)
	}
	if err == nil {
		return nil
	}
	return bindError(op, err)
}

func bindError(op string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = apierr.NonFieldErrors
		}
		return apierr.Invalid(op, field, typeMessage(typeErr.Type))
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := map[string][]string{}
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], validationMessage(fe))
		}
		return apierr.Validation(op, fields)
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apierr.New(apierr.CodeValidation, op, "JSON parse error - unexpected end of input", err)
	}
	return apierr.New(apierr.CodeValidation, op, "JSON parse error - "+err.Error(), err)
}

func typeMessage(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "Invalid value."
	}
	if t == reflect.TypeOf(decimal.Decimal{}) {
		return "A valid number is required."
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Float32, reflect.Float64:
		return "A valid number is required."
	case reflect.String:
		return "Not a valid string."
	default:
		return "Invalid value."
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return services.MsgRequired
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}

// decimalField accepts a JSON number or numeric string. A bad value is
// reported as a type error so bindJSON can name the field.
type decimalField struct {
	decimal.Decimal
}

func (d *decimalField) UnmarshalJSON(b []byte) error {
	if err := d.Decimal.UnmarshalJSON(b); err != nil {
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(decimal.Decimal{})}
	}
	return nil
}

func (d *decimalField) value() *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := d.Decimal
	return &v
}
