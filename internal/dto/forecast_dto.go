package dto

// ForecastRequest carries a product name and its historical sales as a
// comma-separated string of numbers. CurrentStock is accepted for wire
// compatibility with the existing frontend but plays no part in the model.
type ForecastRequest struct {
	Product      string `json:"product"   validate:"required"`
	CurrentStock int    `json:"currentStock"`
	SalesData    string `json:"salesData"`
}

// ForecastResponse returns the per-period demand forecast. On insufficient
// input this is [0]; on a fitting failure it is a zero vector of the full
// horizon — the endpoint never errors over bad series data.
type ForecastResponse struct {
	Product  string    `json:"product"`
	Forecast []float64 `json:"forecast"`
}
