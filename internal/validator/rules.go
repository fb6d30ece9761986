package validator

import (
	"log"
	"strings"

	"agm_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("notification_type", func(fl validator.FieldLevel) bool {
		return models.NotificationType(fl.Field().String()).IsValid()
	})
}

func notificationTypeList() string {
	types := models.NotificationTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
