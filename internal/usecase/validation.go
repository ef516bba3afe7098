package usecase

import (
	"fmt"
	"strings"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
	"github.com/xavierca1/lembrete-consorcio/internal/store"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateLeadInput(input store.CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if input.Status != "" && !entity.IsValidLeadStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "is invalid"})
	}

	if input.NextFollowUp != "" {
		if _, ok := entity.ParseTime(input.NextFollowUp); !ok {
			errors = append(errors, ValidationError{"nextFollowUp", "is not a valid date"})
		}
	}

	return errors
}

func ValidateCreateBoletoInput(input store.CreateBoletoInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if input.DueDate == "" {
		errors = append(errors, ValidationError{"dueDate", "is required"})
	} else if _, ok := entity.ParseTime(input.DueDate); !ok {
		errors = append(errors, ValidationError{"dueDate", "is not a valid date"})
	}

	if input.Value <= 0 {
		errors = append(errors, ValidationError{"value", "must be greater than zero"})
	}

	if input.Status != "" && !entity.IsValidBoletoStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "is invalid"})
	}

	return errors
}
