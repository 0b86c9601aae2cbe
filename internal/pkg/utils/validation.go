package utils

import (
	"glamslot-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	validate           *validator.Validate
	slotTimePattern    = regexp.MustCompile(constvars.RegexSlotTimeHHMM)
	phoneNumberPattern = regexp.MustCompile(constvars.RegexPhoneTenDigit)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
	validate.RegisterValidation("slot_time", validateSlotTime)
	validate.RegisterValidation("slot_date", validateSlotDate)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("object_id", validateObjectID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateSlotTime(fl validator.FieldLevel) bool {
	return IsValidSlotTime(fl.Field().String())
}

func validateSlotDate(fl validator.FieldLevel) bool {
	_, err := ParseDay(fl.Field().String())
	return err == nil
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberPattern.MatchString(fl.Field().String())
}

func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// IsValidSlotTime reports whether value is a 24-hour HH:MM wall-clock time.
func IsValidSlotTime(value string) bool {
	return slotTimePattern.MatchString(value)
}
