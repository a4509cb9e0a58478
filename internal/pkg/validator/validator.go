package validator

import (
	"sync"

	"fieldbooking/internal/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	registerOnce sync.Once
)

func init() {
	validate = validator.New()
	mustRegister(validate)
}

// RegisterGin adds the domain validations to gin's binding engine so
// `binding:"booking_status"` and `binding:"user_role"` work in DTOs.
func RegisterGin() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			mustRegister(v)
		}
	})
}

func mustRegister(v *validator.Validate) {
	if err := v.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		return domain.BookingStatus(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return domain.UserRole(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
}

// Validate struct fields
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = e.Tag()
	}
	return out
}

// FieldErrors flattens a gin binding error into field -> failed tag.
func FieldErrors(err error) map[string]string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = e.Tag()
	}
	return out
}
