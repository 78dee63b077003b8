package domain

// CurrentWeatherResponse é o payload da rota /weather do OpenWeatherMap,
// reduzido aos campos que o widget do dashboard exibe.
type CurrentWeatherResponse struct {
	Name    string `json:"name"`
	Main    Main   `json:"main"`
	Weather []Info `json:"weather"`
}

type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type Info struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
