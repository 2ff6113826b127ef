// Package validate holds the request validation rules shared by gin binding
// and the services.
package validate

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	std      = newValidator()
	ginOnce  sync.Once
	ginError error
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := registerCustom(v); err != nil {
		panic(err)
	}
	return v
}

func registerCustom(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return fmt.Errorf("register notblank: %w", err)
	}
	return nil
}

// RegisterGin installs the custom rules on gin's binding validator.
// Safe to call more than once.
func RegisterGin() error {
	ginOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			ginError = fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
			return
		}
		ginError = registerCustom(v)
	})
	return ginError
}

// Email reports whether s is a syntactically valid address.
func Email(s string) bool {
	return std.Var(s, "required,email") == nil
}
