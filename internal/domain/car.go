package domain

import "github.com/shopspring/decimal"

// CarResult is a vehicle returned by the search endpoint. Rendered read-only,
// never mutated by the client.
type CarResult struct {
	ID           int64               `json:"id"`
	MarkName     string              `json:"mark_name"`
	ModelName    string              `json:"model_name"`
	Year         int                 `json:"year"`
	PriceRub     decimal.NullDecimal `json:"price_rub"`
	BodyType     string              `json:"body_type"`
	FuelType     string              `json:"fuel_type"`
	EngineVolume float64             `json:"engine_volume,omitempty"`
	Horsepower   int                 `json:"horsepower,omitempty"`
	Modification string              `json:"modification"`
	Transmission string              `json:"transmission"`
	Images       []string            `json:"images"`
	Description  string              `json:"description,omitempty"`
}

// CarSearchQuery is the structured search built from extracted parameters.
// Zero-valued fields are omitted from the request.
type CarSearchQuery struct {
	Brand        string
	Model        string
	BodyType     string
	Year         int
	Modification string
	Transmission string
	FuelType     string
	EngineVolume float64
	Horsepower   int
	BudgetMax    int64
	MinYear      int
	Limit        int
}
