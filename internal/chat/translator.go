package chat

import (
	"strconv"
	"strings"

	"github.com/carmatch/carmatch-bot/internal/config"
	"github.com/carmatch/carmatch-bot/internal/domain"
)

// BuildSearchQuery translates server-extracted parameters into a structured
// car search. Values the server sends are untyped strings; numeric fields
// that fail to parse are simply left out of the query, never reported.
// Unrecognized parameter types are ignored. The fixed result limit is always
// attached.
func BuildSearchQuery(params []domain.ExtractedParam) domain.CarSearchQuery {
	q := domain.CarSearchQuery{Limit: config.SearchResultLimit}

	for _, p := range params {
		v := strings.TrimSpace(p.Value)
		if v == "" {
			continue
		}
		switch p.Type {
		case domain.ParamBrand:
			q.Brand = v
		case domain.ParamModel:
			q.Model = v
		case domain.ParamBodyType:
			q.BodyType = v
		case domain.ParamModification:
			q.Modification = v
		case domain.ParamTransmission:
			q.Transmission = v
		case domain.ParamFuelType:
			q.FuelType = v
		case domain.ParamYear:
			if n, err := strconv.Atoi(v); err == nil {
				q.Year = n
			}
		case domain.ParamMinYear:
			if n, err := strconv.Atoi(v); err == nil {
				q.MinYear = n
			}
		case domain.ParamBudgetMax:
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				q.BudgetMax = n
			}
		case domain.ParamHorsepower:
			if n, err := strconv.Atoi(v); err == nil {
				q.Horsepower = n
			}
		case domain.ParamEngineVolume:
			// the server often sends "1,6" instead of "1.6"
			if f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64); err == nil {
				q.EngineVolume = f
			}
		}
	}
	return q
}
