package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/carmatch/carmatch-bot/internal/domain"
)

type CarSearchResponse struct {
	Count   int                `json:"count"`
	Results []domain.CarResult `json:"results"`
}

// SearchCars runs a structured search. Zero-valued query fields are left out
// of the request entirely.
func (c *Client) SearchCars(ctx context.Context, q domain.CarSearchQuery) (*CarSearchResponse, error) {
	var resp CarSearchResponse
	if err := c.get(ctx, "/cars/search", searchValues(q), &resp); err != nil {
		return nil, fmt.Errorf("search cars: %w", err)
	}
	return &resp, nil
}

func searchValues(q domain.CarSearchQuery) url.Values {
	v := url.Values{}
	setStr := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	setStr("brand", q.Brand)
	setStr("model", q.Model)
	setStr("body_type", q.BodyType)
	setStr("modification", q.Modification)
	setStr("transmission", q.Transmission)
	setStr("fuel_type", q.FuelType)
	if q.Year > 0 {
		v.Set("year", strconv.Itoa(q.Year))
	}
	if q.EngineVolume > 0 {
		v.Set("engine_volume", strconv.FormatFloat(q.EngineVolume, 'f', -1, 64))
	}
	if q.Horsepower > 0 {
		v.Set("horsepower", strconv.Itoa(q.Horsepower))
	}
	if q.BudgetMax > 0 {
		v.Set("budget_max", strconv.FormatInt(q.BudgetMax, 10))
	}
	if q.MinYear > 0 {
		v.Set("min_year", strconv.Itoa(q.MinYear))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}
