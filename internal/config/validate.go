package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rshade/userpage/internal/i18n"
)

// ErrInvalidConfig is returned by Validate when any field fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// LocaleValidator accepts an empty value or one of the bundled locales.
var LocaleValidator validator.Func = func(fl validator.FieldLevel) bool {
	locale, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return locale == "" || i18n.IsSupported(locale)
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("locale", LocaleValidator); err != nil {
		return nil, fmt.Errorf("registering locale validator: %w", err)
	}
	return v, nil
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Source.Timeout < 0 {
		return fmt.Errorf("%w: source.timeout must be >= 0, got %s", ErrInvalidConfig, c.Source.Timeout)
	}

	v, err := newValidator()
	if err != nil {
		return err
	}

	err = v.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
