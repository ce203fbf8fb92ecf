package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/andreluoliveira82/car-api/internal/config"
	"github.com/andreluoliveira82/car-api/internal/domain"
)

var (
	brandNameRe = regexp.MustCompile(`^[A-Za-z0-9\s\-]+$`)
	carModelRe  = regexp.MustCompile(`^[A-Za-z0-9\s\-]+$`)

	// Brazilian plates: old format AAA0000, Mercosul format AAA0A00.
	oldPlateRe      = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlateRe = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

// Rules holds the configurable ceilings used by the brand and car
// validators. The zero value is unusable; construct it with NewRules.
type Rules struct {
	limits config.LimitsConfig
	now    func() time.Time
}

// NewRules creates a Rules bound to the given ceilings.
func NewRules(limits config.LimitsConfig) *Rules {
	return &Rules{limits: limits, now: time.Now}
}

// NewRulesAt is like NewRules but with an injectable clock, used by tests to
// pin the current year.
func NewRulesAt(limits config.LimitsConfig, now func() time.Time) *Rules {
	return &Rules{limits: limits, now: now}
}

// BrandName validates and normalizes a brand name: trimmed, 2–50 characters,
// letters, digits, spaces and hyphens only.
func BrandName(value string) (string, error) {
	value = strings.TrimSpace(value)

	switch {
	case value == "":
		return "", domain.NewValidationError("name", "O nome da marca não pode estar vazio.")
	case len(value) < 2:
		return "", domain.NewValidationError("name", "O nome da marca deve ter pelo menos 2 caracteres.")
	case len(value) > 50:
		return "", domain.NewValidationError("name", "O nome da marca deve ter no máximo 50 caracteres.")
	}

	if !brandNameRe.MatchString(value) {
		return "", domain.NewValidationError("name",
			"O nome da marca deve conter apenas letras, números, espaços e hífens.")
	}

	return value, nil
}

// BrandDescription trims a brand description and enforces the configured
// maximum length.
func (r *Rules) BrandDescription(value string) (string, error) {
	if len([]rune(value)) > r.limits.MaxBrandDescription {
		return "", domain.NewValidationError("description",
			fmt.Sprintf("A descrição deve ter no máximo %d caracteres.", r.limits.MaxBrandDescription))
	}
	return strings.TrimSpace(value), nil
}

// CarModel validates and normalizes a car model name: trimmed, 2–50
// characters, letters, digits, spaces and hyphens only.
func CarModel(value string) (string, error) {
	value = strings.TrimSpace(value)

	switch {
	case value == "":
		return "", domain.NewValidationError("model", "O modelo do carro não pode estar vazio.")
	case len(value) < 2:
		return "", domain.NewValidationError("model", "O modelo deve ter pelo menos 2 caracteres.")
	case len(value) > 50:
		return "", domain.NewValidationError("model", "O modelo deve ter no máximo 50 caracteres.")
	}

	if !carModelRe.MatchString(value) {
		return "", domain.NewValidationError("model",
			"O modelo deve conter apenas letras, números, espaços e hífens.")
	}

	return value, nil
}

// FactoryYear validates a factory year against the configured floor and the
// current year plus the configured future allowance.
func (r *Rules) FactoryYear(value int) (int, error) {
	currentYear := r.now().Year()

	if value < r.limits.MinFactoryYear {
		return 0, domain.NewValidationError("factory_year",
			fmt.Sprintf("O ano de fabricação deve ser a partir de %d.", r.limits.MinFactoryYear))
	}
	if value > currentYear+r.limits.MaxFutureYear {
		return 0, domain.NewValidationError("factory_year",
			fmt.Sprintf("O ano de fabricação não pode ultrapassar %d.", currentYear+r.limits.MaxFutureYear))
	}

	return value, nil
}

// ModelYear validates a model year relative to the factory year. A model
// year equal to the factory year is accepted; an earlier one is not.
func (r *Rules) ModelYear(value, factoryYear int) (int, error) {
	currentYear := r.now().Year()

	if value < factoryYear {
		return 0, domain.NewValidationError("model_year",
			"O ano do modelo não pode ser anterior ao ano de fabricação.")
	}
	if value > currentYear+r.limits.MaxFutureYear {
		return 0, domain.NewValidationError("model_year",
			fmt.Sprintf("O ano do modelo não pode ultrapassar %d.", currentYear+r.limits.MaxFutureYear))
	}

	return value, nil
}

// Price validates a price against the configured ceiling.
func (r *Rules) Price(value float64) (float64, error) {
	if value < 0 {
		return 0, domain.NewValidationError("price", "O preço não pode ser negativo.")
	}
	if value > r.limits.MaxPrice {
		return 0, domain.NewValidationError("price",
			fmt.Sprintf("O preço deve ser no máximo %.0f.", r.limits.MaxPrice))
	}
	return value, nil
}

// Mileage validates a mileage against the configured ceiling.
func (r *Rules) Mileage(value int) (int, error) {
	if value < 0 {
		return 0, domain.NewValidationError("mileage", "A quilometragem não pode ser negativa.")
	}
	if value > r.limits.MaxMileage {
		return 0, domain.NewValidationError("mileage",
			fmt.Sprintf("A quilometragem deve ser no máximo %d.", r.limits.MaxMileage))
	}
	return value, nil
}

// Plate normalizes a Brazilian license plate (strip hyphens, uppercase, trim)
// and validates it against the old and Mercosul formats. Normalization is
// idempotent: validating an already-normalized plate returns it unchanged.
func Plate(value string) (string, error) {
	value = strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(value, "-", "")))

	if !oldPlateRe.MatchString(value) && !mercosulPlateRe.MatchString(value) {
		return "", domain.NewValidationError("plate",
			"Placa inválida. Aceitos: padrão antigo (AAA0000) ou Mercosul (AAA0A00).")
	}

	return value, nil
}
