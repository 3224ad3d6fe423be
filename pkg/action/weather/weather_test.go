package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/actonlabs/acton/pkg/action"
	"github.com/actonlabs/acton/pkg/errmodel"
)

func weatherExecutor(t *testing.T, handler http.HandlerFunc) (*action.Executor, *action.PermissionSet) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	reg := action.NewRegistry()
	for _, a := range All(API{Key: "test-key", BaseURL: srv.URL, Client: srv.Client()}) {
		if err := reg.Register(a); err != nil {
			t.Fatal(err)
		}
	}
	perms := action.NewPermissionSet(PermWeather)
	return action.NewExecutor(reg, perms, nil), perms
}

const currentJSON = `{
	"name": "Hanoi",
	"main": {"temp": 28.5, "feels_like": 31.2, "humidity": 74, "pressure": 1009},
	"weather": [{"description": "scattered clouds"}],
	"wind": {"speed": 3.6}
}`

func TestGetWeather(t *testing.T) {
	var gotQuery map[string]string
	ex, _ := weatherExecutor(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Errorf("path=%s", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{"q": q.Get("q"), "appid": q.Get("appid"), "units": q.Get("units")}
		_, _ = w.Write([]byte(currentJSON))
	})
	res := ex.Execute(context.Background(), action.Invocation{
		ActionName: "get_weather",
		Args:       map[string]any{"location": "Hanoi", "units": "imperial"},
	})
	if !res.Success {
		t.Fatalf("res=%+v", res)
	}
	if gotQuery["q"] != "Hanoi" || gotQuery["appid"] != "test-key" || gotQuery["units"] != "imperial" {
		t.Fatalf("query=%v", gotQuery)
	}
	payload := res.Payload.(map[string]any)
	if payload["location"] != "Hanoi" || payload["temperature"] != 28.5 || payload["description"] != "scattered clouds" {
		t.Fatalf("payload=%v", payload)
	}
	if payload["humidity"] != 74 || payload["wind_speed"] != 3.6 {
		t.Fatalf("payload=%v", payload)
	}
}

func TestGetWeatherDefaultUnits(t *testing.T) {
	units := ""
	ex, _ := weatherExecutor(t, func(w http.ResponseWriter, r *http.Request) {
		units = r.URL.Query().Get("units")
		_, _ = w.Write([]byte(currentJSON))
	})
	res := ex.Execute(context.Background(), action.Invocation{
		ActionName: "get_weather",
		Args:       map[string]any{"location": "Hanoi"},
	})
	if !res.Success {
		t.Fatalf("res=%+v", res)
	}
	if units != "metric" {
		t.Fatalf("units=%q want metric", units)
	}
}

func TestGetWeatherRejectsBadUnits(t *testing.T) {
	ex, _ := weatherExecutor(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the API")
	})
	res := ex.Execute(context.Background(), action.Invocation{
		ActionName: "get_weather",
		Args:       map[string]any{"location": "Hanoi", "units": "celsius"},
	})
	if res.Success || res.ErrKind() != errmodel.CodeInvalidArgument {
		t.Fatalf("res=%+v", res)
	}
}

func TestGetWeatherPermissionGate(t *testing.T) {
	ex, perms := weatherExecutor(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the API")
	})
	perms.Revoke(PermWeather)
	res := ex.Execute(context.Background(), action.Invocation{
		ActionName: "get_weather",
		Args:       map[string]any{"location": "Hanoi"},
	})
	if res.Success || res.ErrKind() != errmodel.CodePermissionDenied {
		t.Fatalf("res=%+v", res)
	}
}

func TestGetWeatherAPIError(t *testing.T) {
	ex, _ := weatherExecutor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":401,"message":"Invalid API key"}`, http.StatusUnauthorized)
	})
	res := ex.Execute(context.Background(), action.Invocation{
		ActionName: "get_weather",
		Args:       map[string]any{"location": "Hanoi"},
	})
	if res.Success || res.ErrKind() != errmodel.CodeExecutionFailed {
		t.Fatalf("res=%+v", res)
	}
}

func TestGetForecastAggregatesByDate(t *testing.T) {
	// Two 3-hour slots on the first day (with a colder morning minimum and a
	// warmer afternoon maximum), one slot on the next day.
	const forecastJSON = `{
		"city": {"name": "Hanoi"},
		"list": [
			{"dt": 1756425600, "main": {"temp_min": 24.1, "temp_max": 27.0, "humidity": 80},
			 "weather": [{"description": "light rain"}], "wind": {"speed": 2.1}, "pop": 0.4},
			{"dt": 1756436400, "main": {"temp_min": 25.5, "temp_max": 31.2, "humidity": 70},
			 "weather": [{"description": "overcast"}], "wind": {"speed": 3.0}, "pop": 0.2},
			{"dt": 1756512000, "main": {"temp_min": 23.0, "temp_max": 29.5, "humidity": 75},
			 "weather": [{"description": "clear sky"}], "wind": {"speed": 1.5}, "pop": 0}
		]
	}`
	cnt := ""
	ex, _ := weatherExecutor(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast" {
			t.Errorf("path=%s", r.URL.Path)
		}
		cnt = r.URL.Query().Get("cnt")
		_, _ = w.Write([]byte(forecastJSON))
	})
	res := ex.Execute(context.Background(), action.Invocation{
		ActionName: "get_forecast",
		Args:       map[string]any{"location": "Hanoi", "days": 2},
	})
	if !res.Success {
		t.Fatalf("res=%+v", res)
	}
	if cnt != "16" {
		t.Fatalf("cnt=%q want 16", cnt)
	}
	payload := res.Payload.(map[string]any)
	daily := payload["forecast"].([]map[string]any)
	if len(daily) != 2 {
		t.Fatalf("days=%d want 2", len(daily))
	}
	first := daily[0]
	if first["temp_min"] != 24.1 || first["temp_max"] != 31.2 {
		t.Fatalf("merged temps: %v", first)
	}
	if first["description"] != "light rain" || first["rain_probability"] != 40.0 {
		t.Fatalf("first day: %v", first)
	}
}

func TestGetForecastRejectsBadDays(t *testing.T) {
	ex, _ := weatherExecutor(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the API")
	})
	for _, days := range []int{0, 6} {
		res := ex.Execute(context.Background(), action.Invocation{
			ActionName: "get_forecast",
			Args:       map[string]any{"location": "Hanoi", "days": days},
		})
		if res.Success || res.ErrKind() != errmodel.CodeInvalidArgument {
			t.Fatalf("days=%d: res=%+v", days, res)
		}
	}
}
