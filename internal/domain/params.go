package domain

// ParamType is the kind of fact the backend claims to have parsed from the
// conversation.
type ParamType string

const (
	ParamBrand        ParamType = "brand"
	ParamModel        ParamType = "model"
	ParamBodyType     ParamType = "body_type"
	ParamYear         ParamType = "year"
	ParamModification ParamType = "modification"
	ParamTransmission ParamType = "transmission"
	ParamFuelType     ParamType = "fuel_type"
	ParamEngineVolume ParamType = "engine_volume"
	ParamHorsepower   ParamType = "horsepower"
	ParamBudgetMax    ParamType = "budget_max"
	ParamMinYear      ParamType = "min_year"
)

// ExtractedParam is produced only by the server. Value is an untyped string
// and has to be parsed locally.
type ExtractedParam struct {
	Type       ParamType `json:"type"`
	Value      string    `json:"value"`
	Confidence float64   `json:"confidence"`
}
