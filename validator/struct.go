// Package validator checks browser forms before anything is sent upstream and
// reports failures as a map of JSON field names to messages.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

// errorMessages maps languages to validation tags to messages.
var errorMessages = map[string]map[string]string{
	"en": {
		"required": "The field '%s' is required.",
		"email":    "The field '%s' must be a valid email address.",
		"min":      "The field '%s' must be at least %s characters long.",
		"max":      "The field '%s' must be no longer than %s characters.",
		"lte":      "The field '%s' must be less than or equal to %s.",
		"gte":      "The field '%s' must be greater than or equal to %s.",
		"oneof":    "The field '%s' must be one of [%s].",
	},
	"ko": {
		"required": "'%s' 항목은 필수입니다.",
		"email":    "'%s' 항목은 올바른 이메일 주소여야 합니다.",
		"min":      "'%s' 항목은 최소 %s자 이상이어야 합니다.",
		"max":      "'%s' 항목은 %s자를 넘을 수 없습니다.",
		"lte":      "'%s' 항목은 %s 이하여야 합니다.",
		"gte":      "'%s' 항목은 %s 이상이어야 합니다.",
		"oneof":    "'%s' 항목은 [%s] 중 하나여야 합니다.",
	},
}

// parseMessage builds the message for one failed rule.
func parseMessage(field string, e validator.FieldError, lang ...string) string {
	msgLang := "en"
	if len(lang) > 0 && lang[0] != "" {
		msgLang = lang[0]
	}
	msgs, ok := errorMessages[msgLang]
	if !ok {
		msgs = errorMessages["en"]
	}
	if msg, ok := msgs[e.Tag()]; ok {
		switch strings.Count(msg, "%s") {
		case 1:
			return fmt.Sprintf(msg, field)
		case 2:
			return fmt.Sprintf(msg, field, e.Param())
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", field, e.Tag())
}

// ValidateStruct validates s and returns JSON field names mapped to messages.
// The map is empty when s is valid.
func ValidateStruct(s any, lang ...string) map[string]string {
	validationErrors := make(map[string]string)

	err := validate.Struct(s)
	if err == nil {
		return validationErrors
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		validationErrors["_"] = err.Error()
		return validationErrors
	}
	for _, e := range validationErrs {
		field := e.Field()
		if _, seen := validationErrors[field]; seen {
			continue
		}
		validationErrors[field] = parseMessage(field, e, lang...)
	}
	return validationErrors
}

// Language picks a supported message language from an Accept-Language header.
func Language(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		base := strings.SplitN(tag, "-", 2)[0]
		if _, ok := errorMessages[base]; ok {
			return base
		}
	}
	return "en"
}
