package models

// Device is a registered edge unit. Loaded once at startup from config and
// never mutated at runtime.
type Device struct {
	ID   string  `json:"id" mapstructure:"id"`
	Name string  `json:"name" mapstructure:"name"`
	Lat  float64 `json:"lat" mapstructure:"lat"`
	Lng  float64 `json:"lng" mapstructure:"lng"`
}
