package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/assignment"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs JSON field naming and the domain tags
// (accessory, legacy_accessory, asset_id) on v.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	rules := map[string]validator.Func{
		"accessory": func(fl validator.FieldLevel) bool {
			return assignment.Accessory(strings.TrimSpace(fl.Field().String())).IsValid()
		},
		"legacy_accessory": func(fl validator.FieldLevel) bool {
			_, err := assignment.ParseLegacyAccessory(fl.Field().String())
			return err == nil
		},
		"asset_id": func(fl validator.FieldLevel) bool {
			return asset.ValidateAssetID(asset.NormalizeAssetID(fl.Field().String())) == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// TranslateValidationErrors flattens binding failures into field details.
// Non-validator errors yield nil.
func TranslateValidationErrors(err error) []ValidationDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]ValidationDetail, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, ValidationDetail{
			Field:   e.Field(),
			Message: validationMessage(e),
		})
	}
	return details
}

// FromFieldErrors converts domain field errors to response details
func FromFieldErrors(fields []shared.FieldError) []ValidationDetail {
	if len(fields) == 0 {
		return nil
	}
	out := make([]ValidationDetail, len(fields))
	for i, f := range fields {
		out[i] = ValidationDetail{Field: f.Field, Message: f.Message}
	}
	return out
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "lte":
		return "Must be less than or equal to " + e.Param()
	case "accessory":
		return "Accessory must be one of Charger, Mouse, Headphones, Monitor"
	case "legacy_accessory":
		return "Accessory must be one of CHARGER, MOUSE, HEADPHONES, MONITOR"
	case "asset_id":
		return "Asset ID must match format AST-001"
	default:
		return "Invalid value"
	}
}
