package openweatherclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	openweatherdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/openweather/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type CurrentWeatherResult openweatherdomain.CurrentWeatherResponse

// GetCurrentWeather consulta o clima atual da cidade configurada.
func (c *OpenWeatherClient) GetCurrentWeather(city string) (CurrentWeatherResult, error) {
	var response CurrentWeatherResult

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Weather.BaseURL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/weather")

	// Adicionar parâmetros de consulta. O OpenWeatherMap autentica pela
	// própria query, não por header.
	query := endpoint.Query()
	query.Set("q", city)
	query.Set("appid", c.config.Weather.APIKey)
	query.Set("units", c.config.Weather.Units)
	query.Set("lang", c.config.Weather.Lang)
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}

// GetIcon baixa o PNG do ícone do clima para ser servido pelo proxy,
// evitando expor a origem do OpenWeatherMap ao navegador.
func (c *OpenWeatherClient) GetIcon(code string) ([]byte, error) {
	iconURL := fmt.Sprintf("%s/%s@2x.png", c.config.Weather.IconURL, code)

	return utils.MakeRequest(iconURL)
}
