package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TranslateClient talks to a MyMemory-compatible machine translation API.
type TranslateClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTranslateClient(baseURL string) *TranslateClient {
	return &TranslateClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *TranslateClient) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus json.Number `json:"responseStatus"`
}

// Translate returns the machine translation of text between two language
// codes. Callers decide what to do on failure; this method only reports it.
func (c *TranslateClient) Translate(ctx context.Context, text, from, to string) (string, error) {
	if strings.TrimSpace(c.baseURL) == "" {
		return "", errors.New("translate baseURL is required")
	}

	u, err := url.Parse(c.baseURL + "/get")
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("q", text)
	q.Set("langpair", from+"|"+to)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("translate failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out myMemoryResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("translate: invalid json: %w", err)
	}
	if status, err := out.ResponseStatus.Int64(); err == nil && status != 200 {
		return "", fmt.Errorf("translate failed: responseStatus=%d", status)
	}

	translated := strings.TrimSpace(out.ResponseData.TranslatedText)
	if translated == "" {
		return "", errors.New("translate response did not include text")
	}
	return translated, nil
}
