package handler

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]{10,}$`)
	emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

	digitPattern   = regexp.MustCompile(`\d`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

var registerValidationsOnce sync.Once

// RegisterValidations adds the storefront rules to gin's validator.
func RegisterValidations() {
	registerValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			logrus.Error("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("emailaddr", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
	})
}

// fieldMessages holds the form message for each field and failed rule.
var fieldMessages = map[string]map[string]string{
	"first_name": {
		"required": "First name is required",
		"min":      "First name must be at least 2 characters",
	},
	"last_name": {
		"required": "Last name is required",
		"min":      "Last name must be at least 2 characters",
	},
	"email": {
		"required":  "Email is required",
		"emailaddr": "Invalid email address",
		"email":     "Invalid email address",
	},
	"phone_number": {
		"phone": "Please enter a valid phone number",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password must be at least 8 characters",
	},
	"confirm_password": {
		"required": "Please confirm your password",
		"eqfield":  "Passwords do not match",
	},
	"new_password": {
		"required": "New password is required",
		"min":      "Password must be at least 8 characters",
	},
	"current_password": {
		"required": "Current password is required",
	},
	"uid": {
		"required": "Activation uid is required",
	},
	"token": {
		"required": "Activation token is required",
	},
}

// FieldErrors maps a binding error to one message per JSON field. It
// reports false for errors that are not validation failures (bad JSON).
func FieldErrors(err error) (map[string]string, bool) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := fieldMessages[field][fe.Tag()]; ok {
			out[field] = msg
			continue
		}
		out[field] = "Invalid value"
	}
	return out, true
}

// PasswordRequirement is one line of the password checklist.
type PasswordRequirement struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Meets bool   `json:"meets"`
}

// PasswordRequirements evaluates the checklist shown next to the password field.
func PasswordRequirements(password string) []PasswordRequirement {
	return []PasswordRequirement{
		{ID: 1, Text: "At least 8 characters", Meets: len([]rune(password)) >= 8},
		{ID: 2, Text: "Contains a number", Meets: digitPattern.MatchString(password)},
		{ID: 3, Text: "Contains uppercase letter", Meets: upperPattern.MatchString(password)},
		{ID: 4, Text: "Contains lowercase letter", Meets: lowerPattern.MatchString(password)},
		{ID: 5, Text: "Contains special character", Meets: specialPattern.MatchString(password)},
	}
}
