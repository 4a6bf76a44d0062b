package telegram

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carmatch/carmatch-bot/internal/domain"
)

func TestFormatPriceRub(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{950, "950 ₽"},
		{1150000, "1 150 000 ₽"},
		{1000, "1 000 ₽"},
		{12345678, "12 345 678 ₽"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPriceRub(decimal.NewFromInt(tt.price)))
	}
}

func TestFormatCar(t *testing.T) {
	car := domain.CarResult{
		MarkName:     "Lada",
		ModelName:    "Vesta",
		Year:         2019,
		PriceRub:     decimal.NewNullDecimal(decimal.NewFromInt(1_150_000)),
		BodyType:     "седан",
		FuelType:     "бензин",
		Transmission: "MT",
		Modification: "1.6 MT 106 л.с.",
	}

	card := FormatCar(car)
	assert.Contains(t, card, "Lada Vesta, 2019")
	assert.Contains(t, card, "1 150 000 ₽")
	assert.Contains(t, card, "кузов: седан")
	assert.Contains(t, card, "Модификация: 1.6 MT 106 л.с.")
}

func TestFormatCarWithoutPriceOrYear(t *testing.T) {
	card := FormatCar(domain.CarResult{MarkName: "Kia", ModelName: "Rio"})
	assert.Contains(t, card, "Kia Rio")
	assert.NotContains(t, card, "₽")
	assert.NotContains(t, card, ", 0")
}

func TestFormatCarsLimitsCards(t *testing.T) {
	cars := make([]domain.CarResult, 8)
	for i := range cars {
		cars[i] = domain.CarResult{MarkName: "Lada", ModelName: "Granta"}
	}

	text := FormatCars(cars, 5)
	assert.Contains(t, text, "Подобрано автомобилей: 8")
	assert.Equal(t, 5, strings.Count(text, "🚗"))
	assert.Contains(t, text, "ещё 3 вариантов")
}
