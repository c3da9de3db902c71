package rest

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/joelraetz/folio"
	"github.com/joelraetz/folio/internal/config"
	"github.com/joelraetz/folio/internal/infra/blob"
	"github.com/joelraetz/folio/internal/service"
	"github.com/joelraetz/folio/internal/state"
	"github.com/joelraetz/folio/internal/usecase"
)

func setup(t *testing.T, store usecase.BlobStore, reader usecase.MediaReader) *echo.Echo {
	t.Helper()

	holder := state.NewHolder(folio.SeedData(), folio.DefaultTheme())
	content := usecase.NewContentUsecase(holder, nil)
	sessions := service.NewSessionService(holder, store, time.Hour)

	h := NewHandler(config.Config{}, content, sessions, reader, nil)

	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func do(e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)
	return res
}

func openSession(t *testing.T, e *echo.Echo) string {
	t.Helper()

	res := do(e, http.MethodPost, "/api/admin/sessions", nil)
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.Code)
	}

	var state struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &state); err != nil {
		t.Fatalf("failed to decode session: %v", err)
	}
	return state.ID
}

func TestHandleSite(t *testing.T) {
	e := setup(t, nil, nil)

	res := do(e, http.MethodGet, "/api/site", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	var payload usecase.SitePayload
	if err := json.Unmarshal(res.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if payload.Data.Profile.Name == "" {
		t.Fatalf("payload carries no profile")
	}
	if len(payload.Translations.Nav) == 0 {
		t.Fatalf("payload carries no translations")
	}
}

func TestHandleViewResolvesLanguage(t *testing.T) {
	e := setup(t, nil, nil)

	res := do(e, http.MethodGet, "/api/site/view?lang=FR", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	var view folio.SiteView
	if err := json.Unmarshal(res.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode view: %v", err)
	}
	if view.Lang != folio.LangFR {
		t.Fatalf("expected FR view, got %s", view.Lang)
	}

	res = do(e, http.MethodGet, "/api/site/view?lang=XX", nil)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad lang, got %d", res.Code)
	}
}

func TestSessionLifecycle(t *testing.T) {
	e := setup(t, nil, nil)
	id := openSession(t, e)

	// edit the profile in the session
	name := "Edited"
	res := do(e, http.MethodPatch, "/api/admin/sessions/"+id+"/profile", map[string]string{"name": name})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", res.Code, res.Body.String())
	}

	// live site unchanged before save
	res = do(e, http.MethodGet, "/api/site", nil)
	var payload usecase.SitePayload
	json.Unmarshal(res.Body.Bytes(), &payload)
	if payload.Data.Profile.Name == name {
		t.Fatalf("edit leaked into live state before save")
	}

	res = do(e, http.MethodPost, "/api/admin/sessions/"+id+"/save", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	res = do(e, http.MethodGet, "/api/site", nil)
	json.Unmarshal(res.Body.Bytes(), &payload)
	if payload.Data.Profile.Name != name {
		t.Fatalf("save did not publish the edit")
	}

	// session is gone after save
	res = do(e, http.MethodGet, "/api/admin/sessions/"+id, nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.Code)
	}
}

func TestCancelSession(t *testing.T) {
	e := setup(t, nil, nil)
	id := openSession(t, e)

	do(e, http.MethodPatch, "/api/admin/sessions/"+id+"/profile", map[string]string{"name": "Edited"})

	res := do(e, http.MethodDelete, "/api/admin/sessions/"+id, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	res = do(e, http.MethodGet, "/api/site", nil)
	var payload usecase.SitePayload
	json.Unmarshal(res.Body.Bytes(), &payload)
	if payload.Data.Profile.Name == "Edited" {
		t.Fatalf("cancelled edit leaked into live state")
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	e := setup(t, nil, nil)

	res := do(e, http.MethodGet, "/api/admin/sessions/nope", nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.Code)
	}
}

func TestCaseEditing(t *testing.T) {
	e := setup(t, nil, nil)
	id := openSession(t, e)

	res := do(e, http.MethodPost, "/api/admin/sessions/"+id+"/cases", nil)
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.Code)
	}
	var created folio.BusinessCase
	json.Unmarshal(res.Body.Bytes(), &created)
	if created.Title != "New Project" {
		t.Fatalf("unexpected placeholder: %+v", created)
	}

	res = do(e, http.MethodPut, "/api/admin/sessions/"+id+"/cases/"+created.ID+"/text", map[string]string{
		"field": "role", "lang": "FR", "value": "Réalisateur",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", res.Code, res.Body.String())
	}

	res = do(e, http.MethodGet, "/api/admin/sessions/"+id, nil)
	var sessState struct {
		Data folio.SiteData `json:"data"`
	}
	json.Unmarshal(res.Body.Bytes(), &sessState)
	c := sessState.Data.FindCase(created.ID)
	if c == nil || c.Role.FR != "Réalisateur" {
		t.Fatalf("localized edit not staged: %+v", c)
	}

	// unknown text field is rejected
	res = do(e, http.MethodPut, "/api/admin/sessions/"+id+"/cases/"+created.ID+"/text", map[string]string{
		"field": "title", "lang": "FR", "value": "x",
	})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.Code)
	}
}

func TestImageOperations(t *testing.T) {
	e := setup(t, nil, nil)
	id := openSession(t, e)

	// manual url entry works without a blob store
	res := do(e, http.MethodPost, "/api/admin/sessions/"+id+"/cases/c1/images", map[string]string{
		"url": "https://example.com/ext.jpg",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", res.Code, res.Body.String())
	}

	res = do(e, http.MethodPut, "/api/admin/sessions/"+id+"/cases/c1/images/primary", map[string]string{
		"url": "https://example.com/ext.jpg",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	res = do(e, http.MethodGet, "/api/admin/sessions/"+id, nil)
	var sessState struct {
		Data folio.SiteData `json:"data"`
	}
	json.Unmarshal(res.Body.Bytes(), &sessState)
	c := sessState.Data.FindCase("c1")
	if c.Image != "https://example.com/ext.jpg" {
		t.Fatalf("primary image not set: %s", c.Image)
	}
	if len(c.Details.Images) != 1 {
		t.Fatalf("gallery not extended: %+v", c.Details)
	}

	res = do(e, http.MethodPost, "/api/admin/sessions/"+id+"/cases/c1/images/move", map[string]any{
		"index": 0, "direction": "sideways",
	})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad direction, got %d", res.Code)
	}
}

func TestMultipartUpload(t *testing.T) {
	store := blob.NewMemoryStore("http://localhost:8000")
	e := setup(t, store, store)
	id := openSession(t, e)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("files", "photo.jpg")
	part.Write([]byte("jpeg bytes"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/sessions/"+id+"/cases/c1/images", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", res.Code, res.Body.String())
	}

	var result struct {
		URLs []string `json:"urls"`
	}
	json.Unmarshal(res.Body.Bytes(), &result)
	if len(result.URLs) != 1 {
		t.Fatalf("expected 1 url, got %v", result.URLs)
	}
	if !strings.HasPrefix(result.URLs[0], "http://localhost:8000/media/cases/c1/") {
		t.Fatalf("unexpected url: %s", result.URLs[0])
	}

	// the stored object is served back
	key := strings.TrimPrefix(result.URLs[0], "http://localhost:8000/media/")
	res2 := do(e, http.MethodGet, "/media/"+key, nil)
	if res2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res2.Code)
	}
	if res2.Body.String() != "jpeg bytes" {
		t.Fatalf("served bytes differ from upload")
	}
}

func TestUploadWithoutBlobStoreIs503(t *testing.T) {
	e := setup(t, nil, nil)
	id := openSession(t, e)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("files", "photo.jpg")
	part.Write([]byte("x"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/sessions/"+id+"/cases/c1/images", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)

	if res.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", res.Code)
	}
}

func TestMediaNotFound(t *testing.T) {
	store := blob.NewMemoryStore("http://localhost:8000")
	e := setup(t, store, store)

	res := do(e, http.MethodGet, "/media/cases/none/missing.jpg", nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.Code)
	}
}

func TestSetTheme(t *testing.T) {
	e := setup(t, nil, nil)
	id := openSession(t, e)

	res := do(e, http.MethodPut, "/api/admin/sessions/"+id+"/theme", folio.ThemeConfig{
		PrimaryColor:    "#ef4444",
		BackgroundColor: "#000000",
		FontPrimary:     folio.FontStyle("Comic Sans"),
		IsDarkMode:      true,
	})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	res = do(e, http.MethodGet, "/api/admin/sessions/"+id, nil)
	var sessState struct {
		Theme folio.ThemeConfig `json:"theme"`
	}
	json.Unmarshal(res.Body.Bytes(), &sessState)
	if sessState.Theme.PrimaryColor != "#ef4444" || !sessState.Theme.IsDarkMode {
		t.Fatalf("theme not staged: %+v", sessState.Theme)
	}
	if sessState.Theme.FontPrimary != folio.FontInter {
		t.Fatalf("unknown font must fall back, got %s", sessState.Theme.FontPrimary)
	}
}

func TestExperienceEditing(t *testing.T) {
	e := setup(t, nil, nil)
	id := openSession(t, e)

	res := do(e, http.MethodPost, "/api/admin/sessions/"+id+"/experience", nil)
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.Code)
	}
	var created folio.ExperienceItem
	json.Unmarshal(res.Body.Bytes(), &created)

	res = do(e, http.MethodDelete, "/api/admin/sessions/"+id+"/experience/"+created.ID, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	res = do(e, http.MethodGet, "/api/admin/sessions/"+id, nil)
	var sessState struct {
		Data folio.SiteData `json:"data"`
	}
	json.Unmarshal(res.Body.Bytes(), &sessState)
	if sessState.Data.FindExperience(created.ID) != nil {
		t.Fatalf("removed entry still staged")
	}
}

func TestSocialEditing(t *testing.T) {
	e := setup(t, nil, nil)
	id := openSession(t, e)

	res := do(e, http.MethodPost, "/api/admin/sessions/"+id+"/profile/socials", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	res = do(e, http.MethodPatch, "/api/admin/sessions/"+id+"/profile/socials/0", map[string]string{
		"field": "url", "value": "https://example.com",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.Code)
	}

	res = do(e, http.MethodPatch, "/api/admin/sessions/"+id+"/profile/socials/0", map[string]string{
		"field": "bogus", "value": "x",
	})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.Code)
	}

	res = do(e, http.MethodGet, "/api/admin/sessions/"+id, nil)
	var sessState struct {
		Data folio.SiteData `json:"data"`
	}
	json.Unmarshal(res.Body.Bytes(), &sessState)
	if sessState.Data.Profile.Socials[0].URL != "https://example.com" {
		t.Fatalf("social edit not staged: %+v", sessState.Data.Profile.Socials[0])
	}
}
