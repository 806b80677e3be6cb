// Package fetch obtains measurement values from remote HTTP services.
package fetch

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Timeout bounds every request made by a Client.
const Timeout = 10 * time.Second

// Client fetches JSON documents over HTTP with a fixed timeout.
type Client struct {
	http   *http.Client
	logger *logrus.Logger
}

// NewClient creates a fetch client. When validate is false certificate
// verification is disabled, for services behind self-signed certs.
func NewClient(validate bool, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !validate {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		http: &http.Client{
			Timeout:   Timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// Get requests url and returns the raw response body.
func (c *Client) Get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.WithField("url", url).Debug("Requesting")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("bytes", len(body)).Debug("Received")
	return body, nil
}

// GetJSON requests url and decodes the response body into v.
func (c *Client) GetJSON(url string, v any) error {
	body, err := c.Get(url)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}
