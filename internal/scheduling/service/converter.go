package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/meetsync/scheduler-backend/internal/scheduling/domain"
)

// ConverterClient talks to the external time-conversion service. One request
// per conversion; nothing is retried or cached.
type ConverterClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewConverterClient creates a client for the given service base URL.
func NewConverterClient(baseURL string) *ConverterClient {
	return &ConverterClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: ConvertTimeout,
		},
	}
}

type convertRequest struct {
	FromTimeZone string `json:"fromTimeZone"`
	DateTime     string `json:"dateTime"`
	ToTimeZone   string `json:"toTimeZone"`
	DstAmbiguity string `json:"dstAmbiguity"`
}

type convertResponse struct {
	FromTimezone     string                   `json:"fromTimezone"`
	FromDateTime     string                   `json:"fromDateTime"`
	ToTimeZone       string                   `json:"toTimeZone"`
	ConversionResult *domain.ConversionResult `json:"conversionResult"`
}

// ConvertTimeZone re-expresses dateTime (a zone-less wall clock in fromZone)
// in toZone. A non-success status or a response without a usable
// conversionResult surfaces as domain.ErrInvalidAPIResponse.
func (c *ConverterClient) ConvertTimeZone(ctx context.Context, fromZone, dateTime, toZone string) (*domain.ConversionResult, error) {
	logger := NewLogger(ctx)

	payload, err := json.Marshal(convertRequest{
		FromTimeZone: fromZone,
		DateTime:     dateTime,
		ToTimeZone:   toZone,
		DstAmbiguity: "",
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	reqURL := c.baseURL + "/api/conversion/converttimezone"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		logger.LogError("convert_time_zone", err)
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LogError("convert_time_zone", err)
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.LogWarnf("convert_time_zone", "upstream returned status %d for %s -> %s", resp.StatusCode, fromZone, toZone)
		return nil, domain.ErrInvalidAPIResponse
	}

	var body convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.LogError("convert_time_zone", err)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if body.ConversionResult == nil || body.ConversionResult.DateTime == "" {
		logger.LogWarnf("convert_time_zone", "missing conversionResult for %s -> %s", fromZone, toZone)
		return nil, domain.ErrInvalidAPIResponse
	}

	return body.ConversionResult, nil
}
