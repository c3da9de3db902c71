// Package client is a small HTTP client for the folio API. Read
// endpoints cache their responses for a short while; editing calls
// always go to the wire.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/joelraetz/folio"
	"github.com/joelraetz/folio/internal/editor"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	client  *http.Client
	cache   *cache.Cache
	baseURL string
}

func New(baseURL string) *Client {
	httpClient := http.Client{
		Timeout: defaultTimeout,
	}

	return &Client{
		client:  &httpClient,
		cache:   cache.New(30*time.Second, time.Minute),
		baseURL: baseURL,
	}
}

func (c *Client) request(ctx context.Context, method, path string, body any, response any) error {

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if response == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}

	return nil
}

type SitePayload struct {
	Data         folio.SiteData     `json:"data"`
	Theme        folio.ThemeConfig  `json:"theme"`
	Translations folio.Translations `json:"translations"`
}

// Site fetches the full localized model.
func (c *Client) Site(ctx context.Context) (SitePayload, error) {

	x, found := c.cache.Get("site")
	if found {
		return x.(SitePayload), nil
	}

	var payload SitePayload
	err := c.request(ctx, "GET", "/api/site", nil, &payload)
	if err != nil {
		return SitePayload{}, fmt.Errorf("failed to get site: %v", err)
	}

	c.cache.Set("site", payload, cache.DefaultExpiration)

	return payload, nil
}

// View fetches the model resolved to a single language.
func (c *Client) View(ctx context.Context, lang folio.Language) (folio.SiteView, error) {

	cacheKey := "view:" + string(lang)
	x, found := c.cache.Get(cacheKey)
	if found {
		return x.(folio.SiteView), nil
	}

	var view folio.SiteView
	err := c.request(ctx, "GET", "/api/site/view?lang="+string(lang), nil, &view)
	if err != nil {
		return folio.SiteView{}, fmt.Errorf("failed to get view: %v", err)
	}

	c.cache.Set(cacheKey, view, cache.DefaultExpiration)

	return view, nil
}

type SessionState struct {
	ID    string            `json:"id"`
	Data  folio.SiteData    `json:"data"`
	Theme folio.ThemeConfig `json:"theme"`
}

// OpenSession starts a new editing session on the server.
func (c *Client) OpenSession(ctx context.Context) (SessionState, error) {
	var state SessionState
	err := c.request(ctx, "POST", "/api/admin/sessions", nil, &state)
	if err != nil {
		return SessionState{}, fmt.Errorf("failed to open session: %v", err)
	}
	return state, nil
}

// Session fetches the staged state of an open session.
func (c *Client) Session(ctx context.Context, id string) (SessionState, error) {
	var state SessionState
	err := c.request(ctx, "GET", "/api/admin/sessions/"+id, nil, &state)
	if err != nil {
		return SessionState{}, fmt.Errorf("failed to get session: %v", err)
	}
	return state, nil
}

// SaveSession commits the staged state. Cached reads are flushed so
// the next Site or View reflects the commit.
func (c *Client) SaveSession(ctx context.Context, id string) error {
	err := c.request(ctx, "POST", "/api/admin/sessions/"+id+"/save", nil, nil)
	if err != nil {
		return fmt.Errorf("failed to save session: %v", err)
	}
	c.cache.Flush()
	return nil
}

// CancelSession discards the staged state.
func (c *Client) CancelSession(ctx context.Context, id string) error {
	err := c.request(ctx, "DELETE", "/api/admin/sessions/"+id, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to cancel session: %v", err)
	}
	return nil
}

// SetTheme replaces the staged theme.
func (c *Client) SetTheme(ctx context.Context, id string, theme folio.ThemeConfig) error {
	return c.request(ctx, "PUT", "/api/admin/sessions/"+id+"/theme", theme, nil)
}

// UpdateProfile applies a partial profile update.
func (c *Client) UpdateProfile(ctx context.Context, id string, patch editor.ProfilePatch) error {
	return c.request(ctx, "PATCH", "/api/admin/sessions/"+id+"/profile", patch, nil)
}

type localizedText struct {
	Field string `json:"field"`
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

// SetProfileText updates one localized profile field for one language.
func (c *Client) SetProfileText(ctx context.Context, id string, field editor.ProfileTextField, lang folio.Language, value string) error {
	body := localizedText{Field: string(field), Lang: string(lang), Value: value}
	return c.request(ctx, "PUT", "/api/admin/sessions/"+id+"/profile/text", body, nil)
}

// AddCase creates a placeholder case and returns it.
func (c *Client) AddCase(ctx context.Context, id string) (folio.BusinessCase, error) {
	var created folio.BusinessCase
	err := c.request(ctx, "POST", "/api/admin/sessions/"+id+"/cases", nil, &created)
	if err != nil {
		return folio.BusinessCase{}, fmt.Errorf("failed to add case: %v", err)
	}
	return created, nil
}

// UpdateCase applies a partial case update.
func (c *Client) UpdateCase(ctx context.Context, id, caseID string, patch editor.CasePatch) error {
	return c.request(ctx, "PATCH", "/api/admin/sessions/"+id+"/cases/"+caseID, patch, nil)
}

// RemoveCase deletes a case from the staged state.
func (c *Client) RemoveCase(ctx context.Context, id, caseID string) error {
	return c.request(ctx, "DELETE", "/api/admin/sessions/"+id+"/cases/"+caseID, nil, nil)
}

// SetCaseText updates one localized case field for one language.
func (c *Client) SetCaseText(ctx context.Context, id, caseID string, field editor.CaseTextField, lang folio.Language, value string) error {
	body := localizedText{Field: string(field), Lang: string(lang), Value: value}
	return c.request(ctx, "PUT", "/api/admin/sessions/"+id+"/cases/"+caseID+"/text", body, nil)
}

type uploadResponse struct {
	URLs []string `json:"urls"`
}

// UploadImages sends files to the case gallery as one multipart batch.
func (c *Client) UploadImages(ctx context.Context, id, caseID string, names []string, contents [][]byte) ([]string, error) {

	if len(names) != len(contents) {
		return nil, fmt.Errorf("names and contents length mismatch")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for i, name := range names {
		part, err := writer.CreateFormFile("files", name)
		if err != nil {
			return nil, fmt.Errorf("failed to create form file: %v", err)
		}
		_, err = part.Write(contents[i])
		if err != nil {
			return nil, fmt.Errorf("failed to write form file: %v", err)
		}
	}
	err := writer.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to finish form: %v", err)
	}

	url := c.baseURL + "/api/admin/sessions/" + id + "/cases/" + caseID + "/images"
	req, err := http.NewRequestWithContext(ctx, "POST", url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result uploadResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}

	return result.URLs, nil
}

// AddImageURL appends an already-hosted image to the case gallery.
func (c *Client) AddImageURL(ctx context.Context, id, caseID, url string) error {
	body := map[string]string{"url": url}
	return c.request(ctx, "POST", "/api/admin/sessions/"+id+"/cases/"+caseID+"/images", body, nil)
}
