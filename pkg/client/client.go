package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/leyangloh/progress-bot/internal/domain"
)

// Client is the API client for the progress bot's HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetProgress retrieves the current progress report without delivering it
func (c *Client) GetProgress() (*domain.Report, error) {
	var response struct {
		Data *domain.Report `json:"data"`
	}
	if err := c.get("/api/v1/progress", &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// TriggerReportResult is the response of a report trigger
type TriggerReportResult struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Milestones  int       `json:"milestones"`
}

// TriggerReport runs the full pipeline including Slack delivery
func (c *Client) TriggerReport() (*TriggerReportResult, error) {
	var response struct {
		Data *TriggerReportResult `json:"data"`
	}
	if err := c.post("/api/v1/report", &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// HealthCheck checks if the API is healthy
func (c *Client) HealthCheck() error {
	var response struct {
		Status string `json:"status"`
	}
	if err := c.get("/health", &response); err != nil {
		return err
	}
	if response.Status != "ok" {
		return fmt.Errorf("unhealthy status: %s", response.Status)
	}
	return nil
}

func (c *Client) get(path string, result interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	return c.decode(resp, result)
}

func (c *Client) post(path string, result interface{}) error {
	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(nil))
	if err != nil {
		return err
	}
	return c.decode(resp, result)
}

func (c *Client) decode(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
