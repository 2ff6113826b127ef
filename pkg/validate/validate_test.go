package validate

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func TestEmail(t *testing.T) {
	valid := []string{"ana@ipn.mx", "luis.perez+tag@alumno.ipn.mx"}
	invalid := []string{"", "ana", "ana@", "@ipn.mx", " ana@ipn.mx"}

	for _, s := range valid {
		if !Email(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range invalid {
		if Email(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestRegisterGin_NotBlank(t *testing.T) {
	if err := RegisterGin(); err != nil {
		t.Fatalf("RegisterGin failed: %v", err)
	}
	if err := RegisterGin(); err != nil {
		t.Fatalf("second RegisterGin failed: %v", err)
	}

	type req struct {
		Nombre string `binding:"required,notblank"`
	}
	v := binding.Validator.Engine().(*validator.Validate)
	if err := v.Struct(req{Nombre: "   "}); err == nil {
		t.Error("whitespace-only value should fail notblank")
	}
	if err := v.Struct(req{Nombre: "Física"}); err != nil {
		t.Errorf("non-blank value should pass: %v", err)
	}
}
