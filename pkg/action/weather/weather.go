// Package weather provides the OpenWeatherMap-backed action set: get_weather
// and get_forecast. Both actions call the external API over HTTP, so they
// carry TypeIntegrate and are gated behind a dedicated permission token.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/actonlabs/acton/pkg/action"
	"github.com/actonlabs/acton/pkg/errmodel"
)

// PermWeather gates the outbound calls to the weather service.
const PermWeather = "weather:read"

// DefaultBaseURL is the OpenWeatherMap current-weather and forecast API root.
const DefaultBaseURL = "http://api.openweathermap.org/data/2.5"

const (
	defaultTimeout  = 10 * time.Second
	maxForecastDays = 5
)

// API holds the connection settings shared by the weather actions.
// A zero Client falls back to a client with a 10s timeout; a zero BaseURL
// falls back to DefaultBaseURL.
type API struct {
	Key     string
	BaseURL string
	Client  *http.Client
}

// All returns the weather action set for one API key, ready to register.
func All(api API) []action.Action {
	return []action.Action{
		CurrentWeather{API: api},
		Forecast{API: api},
	}
}

func (a API) get(ctx context.Context, path string, q url.Values, out any) error {
	base := a.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	client := a.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	q.Set("appid", a.Key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return fmt.Errorf("weather api status %d: %s", res.StatusCode, strings.TrimSpace(string(b)))
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func checkUnits(actionName string, args map[string]any) error {
	switch argString(args, "units") {
	case "metric", "imperial", "kelvin":
		return nil
	}
	return errmodel.InvalidArgument(actionName, "units", "units must be metric, imperial, or kelvin")
}

func argString(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func argInt(args map[string]any, key string) int {
	switch n := args[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// CurrentWeather fetches current conditions for a location.
type CurrentWeather struct{ API API }

func (CurrentWeather) Describe() action.Definition {
	return action.Definition{
		Name:        "get_weather",
		Description: "Get current weather conditions for a location",
		Type:        action.TypeIntegrate,
		Permissions: []action.Permission{{Name: PermWeather, Description: "query the external weather service"}},
		Params: []action.ParamSpec{
			{Name: "location", Kind: action.KindString, Description: "City name or coordinates (lat,lon)", Required: true},
			{Name: "units", Kind: action.KindString, Description: "Temperature units (metric, imperial, kelvin)", Required: false, Default: "metric"},
		},
	}
}

func (a CurrentWeather) Validate(_ context.Context, inv action.Invocation) error {
	if argString(inv.Args, "location") == "" {
		return errmodel.InvalidArgument("get_weather", "location", "location is empty")
	}
	return checkUnits("get_weather", inv.Args)
}

func (a CurrentWeather) Execute(ctx context.Context, inv action.Invocation) (any, error) {
	location := argString(inv.Args, "location")
	units := argString(inv.Args, "units")

	var data struct {
		Name string `json:"name"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
			Pressure  float64 `json:"pressure"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	q := url.Values{"q": {location}, "units": {units}}
	if err := a.API.get(ctx, "/weather", q, &data); err != nil {
		return nil, err
	}

	name := data.Name
	if name == "" {
		name = location
	}
	description := ""
	if len(data.Weather) > 0 {
		description = data.Weather[0].Description
	}
	return map[string]any{
		"location":    name,
		"temperature": data.Main.Temp,
		"feels_like":  data.Main.FeelsLike,
		"description": description,
		"humidity":    data.Main.Humidity,
		"wind_speed":  data.Wind.Speed,
		"pressure":    data.Main.Pressure,
		"units":       units,
	}, nil
}

// Forecast fetches a multi-day forecast for a location. The upstream API
// returns 3-hourly entries (8 per day); Execute folds them into one entry
// per date with merged min/max temperatures.
type Forecast struct{ API API }

func (Forecast) Describe() action.Definition {
	return action.Definition{
		Name:        "get_forecast",
		Description: "Get weather forecast for multiple days",
		Type:        action.TypeIntegrate,
		Permissions: []action.Permission{{Name: PermWeather, Description: "query the external weather service"}},
		Params: []action.ParamSpec{
			{Name: "location", Kind: action.KindString, Description: "City name or coordinates (lat,lon)", Required: true},
			{Name: "days", Kind: action.KindInteger, Description: "Number of days (1-5)", Required: false, Default: 5},
			{Name: "units", Kind: action.KindString, Description: "Temperature units (metric, imperial, kelvin)", Required: false, Default: "metric"},
		},
	}
}

func (a Forecast) Validate(_ context.Context, inv action.Invocation) error {
	if argString(inv.Args, "location") == "" {
		return errmodel.InvalidArgument("get_forecast", "location", "location is empty")
	}
	if days := argInt(inv.Args, "days"); days < 1 || days > maxForecastDays {
		return errmodel.InvalidArgument("get_forecast", "days",
			fmt.Sprintf("days must be between 1 and %d", maxForecastDays))
	}
	return checkUnits("get_forecast", inv.Args)
}

func (a Forecast) Execute(ctx context.Context, inv action.Invocation) (any, error) {
	location := argString(inv.Args, "location")
	days := argInt(inv.Args, "days")
	units := argString(inv.Args, "units")

	var data struct {
		City struct {
			Name string `json:"name"`
		} `json:"city"`
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				TempMin  float64 `json:"temp_min"`
				TempMax  float64 `json:"temp_max"`
				Humidity int     `json:"humidity"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
			} `json:"weather"`
			Wind struct {
				Speed float64 `json:"speed"`
			} `json:"wind"`
			Pop float64 `json:"pop"`
		} `json:"list"`
	}
	q := url.Values{
		"q":     {location},
		"units": {units},
		// 8 three-hour slots per day
		"cnt": {fmt.Sprint(days * 8)},
	}
	if err := a.API.get(ctx, "/forecast", q, &data); err != nil {
		return nil, err
	}

	var daily []map[string]any
	currentDate := ""
	for _, item := range data.List {
		date := time.Unix(item.Dt, 0).UTC()
		key := date.Format("2006-01-02")
		if key != currentDate {
			currentDate = key
			description := ""
			if len(item.Weather) > 0 {
				description = item.Weather[0].Description
			}
			daily = append(daily, map[string]any{
				"date":             key,
				"day":              date.Weekday().String(),
				"temp_min":         item.Main.TempMin,
				"temp_max":         item.Main.TempMax,
				"description":      description,
				"humidity":         item.Main.Humidity,
				"wind_speed":       item.Wind.Speed,
				"rain_probability": item.Pop * 100,
			})
			continue
		}
		last := daily[len(daily)-1]
		if item.Main.TempMin < last["temp_min"].(float64) {
			last["temp_min"] = item.Main.TempMin
		}
		if item.Main.TempMax > last["temp_max"].(float64) {
			last["temp_max"] = item.Main.TempMax
		}
	}

	name := data.City.Name
	if name == "" {
		name = location
	}
	return map[string]any{
		"location": name,
		"forecast": daily,
		"units":    units,
	}, nil
}
