package models

import "fmt"

// WeatherRecord is the current-conditions snapshot returned by a weather provider.
type WeatherRecord struct {
	Name        string  `json:"name" example:"Paris"`
	Country     string  `json:"country" example:"FR"`
	Temperature float64 `json:"temperature" example:"18.4"`
	Description string  `json:"description" example:"clear sky"`
	Humidity    float64 `json:"humidity" example:"60"`
	WindSpeed   float64 `json:"wind_speed" example:"3.2"`
	Icon        string  `json:"icon" example:"01d"`
	Source      string  `json:"source" example:"openweathermap"`
}

// Location renders "name, country", dropping the separator when either part is missing.
func (r WeatherRecord) Location() string {
	switch {
	case r.Country == "":
		return r.Name
	case r.Name == "":
		return r.Country
	}
	return fmt.Sprintf("%s, %s", r.Name, r.Country)
}
