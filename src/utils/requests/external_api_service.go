package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"timevalue/src/utils"
)

// ExternalAPIService is a small JSON HTTP client for external collaborators
// (the WeChat open platform is the only consumer today).
type ExternalAPIService struct {
	client *http.Client
}

// NewExternalAPIService creates a new instance of ExternalAPIService
func NewExternalAPIService() *ExternalAPIService {
	return &ExternalAPIService{client: &http.Client{}}
}

func (s *ExternalAPIService) makeRequest(ctx context.Context, method, endpoint string, params url.Values, body interface{}) (*http.Response, error) {
	if params != nil {
		endpoint = endpoint + "?" + params.Encode()
	}

	var err error
	var jsonBody []byte
	if body != nil {
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return s.client.Do(req)
}

// GetJSON makes a GET request and decodes the JSON response into result.
func (s *ExternalAPIService) GetJSON(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	resp, err := s.makeRequest(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return utils.NewHTTPError(resp.StatusCode, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

// PostJSON makes a POST request and decodes the JSON response into result.
func (s *ExternalAPIService) PostJSON(ctx context.Context, endpoint string, params url.Values, body, result interface{}) error {
	resp, err := s.makeRequest(ctx, http.MethodPost, endpoint, params, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return utils.NewHTTPError(resp.StatusCode, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}
