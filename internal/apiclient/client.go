// Package apiclient is a typed Go client for the HTTP API. It derives
// every call from the shared contract table, so a path or method change
// on the server is picked up here without hand-editing URLs.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sangam/internal/contract"
	"sangam/internal/models"
)

// APIError is any non-2xx response, carrying the server's error envelope.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api error: status=%d field=%s message=%s", e.Status, e.Field, e.Message)
	}
	return fmt.Sprintf("api error: status=%d message=%s", e.Status, e.Message)
}

// Client holds the session cookie between calls, so one Login makes every
// later call authenticated.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
			// Logout redirects to the home page; the caller wants the
			// redirect itself, not the page behind it.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

func (c *Client) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

func (c *Client) do(ctx context.Context, op contract.Operation, params map[string]string, query url.Values, body, out any) error {
	endpoint := c.baseURL + op.URL(params)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope models.ErrorResponse
		if json.Unmarshal(raw, &envelope) == nil {
			apiErr.Message = envelope.Message
			apiErr.Field = envelope.Field
		}
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) Login(ctx context.Context, identifier, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	err := c.do(ctx, contract.AuthLogin, nil, nil,
		models.LoginRequest{Identifier: identifier, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AuthUser(ctx context.Context) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.do(ctx, contract.AuthUser, nil, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, contract.AuthLogout, nil, nil, nil, nil)
}

func (c *Client) AdminsMe(ctx context.Context) (*models.AdminMeResponse, error) {
	var out models.AdminMeResponse
	if err := c.do(ctx, contract.AdminsMe, nil, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminsList(ctx context.Context) ([]models.Admin, error) {
	var out []models.Admin
	if err := c.do(ctx, contract.AdminsList, nil, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminsCreate(ctx context.Context, req models.CreateAdminRequest) (*models.Admin, error) {
	var out models.Admin
	if err := c.do(ctx, contract.AdminsCreate, nil, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminsUpdate(ctx context.Context, id int, req models.UpdateAdminRequest) (*models.Admin, error) {
	var out models.Admin
	err := c.do(ctx, contract.AdminsUpdate, map[string]string{"id": strconv.Itoa(id)}, nil, req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) HomeFeatured(ctx context.Context) (*models.HomeFeaturedResponse, error) {
	var out models.HomeFeaturedResponse
	if err := c.do(ctx, contract.HomeFeatured, nil, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProjectsList(ctx context.Context, featured *bool) ([]models.ProjectWithTranslations, error) {
	var query url.Values
	if featured != nil {
		query = url.Values{"featured": {strconv.FormatBool(*featured)}}
	}
	var out []models.ProjectWithTranslations
	if err := c.do(ctx, contract.ProjectsList, nil, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProjectsGet(ctx context.Context, id int) (*models.ProjectWithTranslations, error) {
	var out models.ProjectWithTranslations
	err := c.do(ctx, contract.ProjectsGet, map[string]string{"id": strconv.Itoa(id)}, nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProjectsCreate(ctx context.Context, req models.CreateProjectRequest) (*models.ProjectWithTranslations, error) {
	var out models.ProjectWithTranslations
	if err := c.do(ctx, contract.ProjectsCreate, nil, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProjectsUpdate(ctx context.Context, id int, req models.UpdateProjectRequest) (*models.ProjectWithTranslations, error) {
	var out models.ProjectWithTranslations
	err := c.do(ctx, contract.ProjectsUpdate, map[string]string{"id": strconv.Itoa(id)}, nil, req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProjectsUpsertTranslation(ctx context.Context, id int, lang string, req models.ProjectTranslationInput) (*models.ProjectWithTranslations, error) {
	var out models.ProjectWithTranslations
	err := c.do(ctx, contract.ProjectsUpsertTranslation,
		map[string]string{"id": strconv.Itoa(id), "lang": lang}, nil, req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EventsList(ctx context.Context) ([]models.EventWithTranslations, error) {
	var out []models.EventWithTranslations
	if err := c.do(ctx, contract.EventsList, nil, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) EventsGet(ctx context.Context, id int) (*models.EventWithTranslations, error) {
	var out models.EventWithTranslations
	err := c.do(ctx, contract.EventsGet, map[string]string{"id": strconv.Itoa(id)}, nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EventsCreate(ctx context.Context, req models.CreateEventRequest) (*models.EventWithTranslations, error) {
	var out models.EventWithTranslations
	if err := c.do(ctx, contract.EventsCreate, nil, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EventsUpdate(ctx context.Context, id int, req models.UpdateEventRequest) (*models.EventWithTranslations, error) {
	var out models.EventWithTranslations
	err := c.do(ctx, contract.EventsUpdate, map[string]string{"id": strconv.Itoa(id)}, nil, req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EventsUpsertTranslation(ctx context.Context, id int, lang string, req models.EventTranslationInput) (*models.EventWithTranslations, error) {
	var out models.EventWithTranslations
	err := c.do(ctx, contract.EventsUpsertTranslation,
		map[string]string{"id": strconv.Itoa(id), "lang": lang}, nil, req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RequestUploadURL(ctx context.Context, req models.RequestUploadURLRequest) (*models.UploadURLResponse, error) {
	var out models.UploadURLResponse
	if err := c.do(ctx, contract.UploadsRequestURL, nil, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Translate(ctx context.Context, req models.TranslateRequest) (*models.TranslateResponse, error) {
	var out models.TranslateResponse
	if err := c.do(ctx, contract.Translate, nil, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
