package data

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"turbine-backtest/internal/model"
)

// Client fetches source CSV datasets over HTTP, for deployments where the
// wind, price and power-curve files live on a data server instead of disk.
type Client struct {
	BaseURL string
	Client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RemoteError represents a non-2xx response from the data server.
type RemoteError struct {
	StatusCode int
	URL        string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

// FetchSamples downloads and parses a timestamp;value CSV by name.
func (c *Client) FetchSamples(name string) ([]Sample, error) {
	body, err := c.get(name)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return ParseSamples(body)
}

// FetchPowerCurve downloads and parses a wind_speed;power CSV by name.
func (c *Client) FetchPowerCurve(name string) (model.PowerCurve, error) {
	body, err := c.get(name)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return ParsePowerCurve(body)
}

func (c *Client) get(name string) (io.ReadCloser, error) {
	u, err := url.JoinPath(c.BaseURL, name)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Get(u)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, &RemoteError{StatusCode: resp.StatusCode, URL: u}
	}
	return resp.Body, nil
}
