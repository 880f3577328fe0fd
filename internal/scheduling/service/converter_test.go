package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meetsync/scheduler-backend/internal/scheduling/domain"
)

func TestConverterClient_ConvertTimeZone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/conversion/converttimezone" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		var req convertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.FromTimeZone != "America/New_York" {
			t.Errorf("unexpected fromTimeZone: %s", req.FromTimeZone)
		}
		if req.DateTime != "2024-08-14 23:06:00" {
			t.Errorf("unexpected dateTime: %s", req.DateTime)
		}
		if req.ToTimeZone != "Europe/London" {
			t.Errorf("unexpected toTimeZone: %s", req.ToTimeZone)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"fromTimezone": "America/New_York",
			"fromDateTime": "2024-08-14T23:06:00",
			"toTimeZone": "Europe/London",
			"conversionResult": {
				"year": 2024, "month": 8, "day": 15,
				"hour": 4, "minute": 6, "seconds": 0, "milliSeconds": 0,
				"dateTime": "2024-08-15T04:06:00",
				"date": "08/15/2024", "time": "04:06",
				"timeZone": "Europe/London", "dstActive": true
			}
		}`))
	}))
	defer server.Close()

	client := NewConverterClient(server.URL)
	result, err := client.ConvertTimeZone(context.Background(), "America/New_York", "2024-08-14 23:06:00", "Europe/London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DateTime != "2024-08-15T04:06:00" {
		t.Errorf("unexpected dateTime: %s", result.DateTime)
	}
	if result.TimeZone != "Europe/London" {
		t.Errorf("unexpected timeZone: %s", result.TimeZone)
	}
	if !result.DstActive {
		t.Error("expected dstActive")
	}
}

func TestConverterClient_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`"Invalid datetime format"`))
	}))
	defer server.Close()

	client := NewConverterClient(server.URL)
	_, err := client.ConvertTimeZone(context.Background(), "America/New_York", "garbage", "Europe/London")
	if !errors.Is(err, domain.ErrInvalidAPIResponse) {
		t.Fatalf("expected ErrInvalidAPIResponse, got %v", err)
	}
}

func TestConverterClient_MissingConversionResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewConverterClient(server.URL)
	_, err := client.ConvertTimeZone(context.Background(), "America/New_York", "2024-08-14 23:06:00", "Europe/London")
	if !errors.Is(err, domain.ErrInvalidAPIResponse) {
		t.Fatalf("expected ErrInvalidAPIResponse, got %v", err)
	}
}

func TestConverterClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewConverterClient(server.URL)
	_, err := client.ConvertTimeZone(context.Background(), "America/New_York", "2024-08-14 23:06:00", "Europe/London")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, domain.ErrInvalidAPIResponse) {
		t.Fatalf("transport failure should not masquerade as an API-format error: %v", err)
	}
}
