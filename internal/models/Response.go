package models

// WeatherView holds the display fields and panel visibility of the weather widget.
type WeatherView struct {
	City          string `json:"city" example:"Paris"`
	Location      string `json:"location,omitempty" example:"Paris, FR"`
	Temperature   string `json:"temperature,omitempty" example:"18°"`
	Description   string `json:"description,omitempty" example:"clear sky"`
	Humidity      string `json:"humidity,omitempty" example:"60%"`
	WindSpeed     string `json:"wind_speed,omitempty" example:"3.2 m/s"`
	IconURL       string `json:"icon_url,omitempty" example:"https://openweathermap.org/img/wn/01d@2x.png"`
	ResultVisible bool   `json:"result_visible"`
	ErrorVisible  bool   `json:"error_visible"`
	Error         string `json:"error,omitempty" example:"City not found"`
}
