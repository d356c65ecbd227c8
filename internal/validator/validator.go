// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"moneytracker/internal/ledger"
	"moneytracker/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn adds the custom validators to v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("budget_scope", validateBudgetScope)
	_ = v.RegisterValidation("window", validateWindow)
	_ = v.RegisterValidation("token_scope", validateTokenScope)
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateBudgetScope(fl validator.FieldLevel) bool {
	return models.BudgetScope(fl.Field().String()).Valid()
}

func validateWindow(fl validator.FieldLevel) bool {
	_, err := ledger.ParseWindow(fl.Field().String())
	return err == nil
}

func validateTokenScope(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "app", "widget":
		return true
	}
	return false
}
