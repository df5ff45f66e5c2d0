package validator

import (
	"encoding/json"
	"fmt"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"io"
	"regexp"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate *val.Validate

	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

func registerStayDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.StayDateFormat, strings.TrimSpace(value))

	return err == nil
}

// registerDecimalValidation accepts non-negative decimals written as plain text, e.g. "1000" or "1499.50".
func registerDecimalValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return false
	}

	return !amount.IsNegative()
}

func registerPhoneValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return phonePattern.MatchString(strings.TrimSpace(value))
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("ddmmyyyy", registerStayDateValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("decimal", registerDecimalValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}
}

// Validate decodes a JSON document from r into data and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.InvalidInput(fmt.Sprintf("failed to decode request body: %v", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.InvalidInput(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.InvalidInput(msg) //nolint:wrapcheck
	}

	return nil
}
