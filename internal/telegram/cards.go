package telegram

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carmatch/carmatch-bot/internal/domain"
)

// FormatCars renders search results as a block of car cards, at most limit
// cards per turn.
func FormatCars(cars []domain.CarResult, limit int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔎 Подобрано автомобилей: %d\n", len(cars)))

	shown := cars
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, c := range shown {
		sb.WriteString("\n")
		sb.WriteString(FormatCar(c))
		sb.WriteString("\n")
	}
	if len(cars) > len(shown) {
		sb.WriteString(fmt.Sprintf("\n…и ещё %d вариантов. Уточните запрос, чтобы сузить подборку.", len(cars)-len(shown)))
	}
	return sb.String()
}

// FormatCar renders one vehicle card.
func FormatCar(c domain.CarResult) string {
	var sb strings.Builder

	title := strings.TrimSpace(c.MarkName + " " + c.ModelName)
	if c.Year > 0 {
		title = fmt.Sprintf("%s, %d", title, c.Year)
	}
	sb.WriteString("🚗 *" + title + "*\n")

	if c.PriceRub.Valid {
		sb.WriteString("💰 " + FormatPriceRub(c.PriceRub.Decimal) + "\n")
	}

	var specs []string
	if c.BodyType != "" {
		specs = append(specs, "кузов: "+c.BodyType)
	}
	if c.FuelType != "" {
		specs = append(specs, "топливо: "+c.FuelType)
	}
	if c.Transmission != "" {
		specs = append(specs, "КПП: "+c.Transmission)
	}
	if len(specs) > 0 {
		sb.WriteString(strings.Join(specs, " · ") + "\n")
	}
	if c.Modification != "" {
		sb.WriteString("Модификация: " + c.Modification + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatPriceRub renders a ruble price with thousand grouping: 1 250 000 ₽.
func FormatPriceRub(price decimal.Decimal) string {
	whole := price.Round(0).IntPart()
	neg := whole < 0
	if neg {
		whole = -whole
	}

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, " ")
	if neg {
		out = "-" + out
	}
	return out + " ₽"
}
