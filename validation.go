package scriptlog

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

// validateOptions applies the struct tags on Options before any field is
// interpreted, so range and length violations fail Init with one consistent
// error shape.
func validateOptions(opts *Options) error {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	return nil
}
