package utils

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// ใช้ชื่อจาก json tag ใน error details
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

func ValidateStruct(s any) error {
	return getValidator().Struct(s)
}

// GetValidationErrors แปลง validator errors เป็น field -> rule
func GetValidationErrors(err error) map[string]string {
	result := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		result["_"] = err.Error()
		return result
	}

	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		result[fe.Field()] = rule
	}
	return result
}
