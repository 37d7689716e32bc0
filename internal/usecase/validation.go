package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
)

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateSaleInput(input CreateSaleInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, FieldError{"name", "is required"})
	} else if len(input.Name) < 3 {
		errs = append(errs, FieldError{"name", "must have at least 3 characters"})
	} else if len(input.Name) > 200 {
		errs = append(errs, FieldError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errs = append(errs, FieldError{"email", "is invalid"})
		}
	}

	if input.CPF == "" {
		errs = append(errs, FieldError{"cpf", "is required"})
	} else if !isValidCPF(input.CPF) {
		errs = append(errs, FieldError{"cpf", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errs = append(errs, FieldError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errs = append(errs, FieldError{"phone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.BirthDate) == "" {
		errs = append(errs, FieldError{"birth_date", "is required"})
	} else if !isValidDate(input.BirthDate) {
		errs = append(errs, FieldError{"birth_date", "must be a valid date (YYYY-MM-DD)"})
	}

	if strings.TrimSpace(input.PlanID) == "" {
		errs = append(errs, FieldError{"plan_id", "is required"})
	}

	if input.BillingDueDay < 1 || input.BillingDueDay > 25 {
		errs = append(errs, FieldError{"billing_due_day", "must be between 1 and 25"})
	}

	if strings.TrimSpace(input.Street) == "" {
		errs = append(errs, FieldError{"street", "is required"})
	}
	if strings.TrimSpace(input.Number) == "" {
		errs = append(errs, FieldError{"number", "is required"})
	}
	if strings.TrimSpace(input.District) == "" {
		errs = append(errs, FieldError{"district", "is required"})
	}
	if strings.TrimSpace(input.City) == "" {
		errs = append(errs, FieldError{"city", "is required"})
	}
	if strings.TrimSpace(input.State) == "" {
		errs = append(errs, FieldError{"state", "is required"})
	}
	if !isValidZipCode(input.ZipCode) {
		errs = append(errs, FieldError{"zip_code", "must be a valid CEP (XXXXX-XXX)"})
	}

	return errs
}

var nonDigits = regexp.MustCompile(`\D`)

// isValidCPF confere tamanho, sequência repetida e os dois dígitos
// verificadores.
func isValidCPF(cpf string) bool {
	cleaned := nonDigits.ReplaceAllString(cpf, "")

	if len(cleaned) != 11 {
		return false
	}

	allEqual := true
	for i := 1; i < len(cleaned); i++ {
		if cleaned[i] != cleaned[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	digit := func(upTo int) int {
		sum := 0
		for i := 0; i < upTo; i++ {
			sum += int(cleaned[i]-'0') * (upTo + 1 - i)
		}
		rest := (sum * 10) % 11
		if rest == 10 {
			rest = 0
		}
		return rest
	}

	return digit(9) == int(cleaned[9]-'0') && digit(10) == int(cleaned[10]-'0')
}

func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 11
}

func isValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}
	return false
}

func isValidZipCode(zipcode string) bool {
	cleaned := nonDigits.ReplaceAllString(zipcode, "")
	return len(cleaned) == 8
}
