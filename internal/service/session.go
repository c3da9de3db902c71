package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/joelraetz/folio"
	"github.com/joelraetz/folio/internal/domain"
	"github.com/joelraetz/folio/internal/editor"
	"github.com/joelraetz/folio/internal/state"
	"github.com/joelraetz/folio/internal/usecase"
)

var tracer = otel.Tracer("session")

// Session is one editing session: a deep clone of the live state that
// all edits apply to until it is saved or discarded. A session is
// owned by a single logical editor; its mutex serializes the handler
// goroutines acting on its behalf.
type Session struct {
	ID string

	mu        sync.Mutex
	data      folio.SiteData
	theme     folio.ThemeConfig
	closed    bool
	uploading bool
}

// Edit applies a pure transform to the staged model. Returns
// ErrNotFound when the session was already saved or cancelled.
func (s *Session) Edit(fn func(folio.SiteData) folio.SiteData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.NotFoundError{Resource: "session"}
	}
	s.data = fn(s.data)
	return nil
}

// SetTheme replaces the staged theme.
func (s *Session) SetTheme(theme folio.ThemeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.NotFoundError{Resource: "session"}
	}
	theme.FontPrimary = folio.ParseFont(string(theme.FontPrimary))
	s.theme = theme
	return nil
}

// Snapshot returns a deep clone of the staged state.
func (s *Session) Snapshot() (folio.SiteData, folio.ThemeConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return folio.SiteData{}, folio.ThemeConfig{}, domain.NotFoundError{Resource: "session"}
	}
	return s.data.Clone(), s.theme, nil
}

// beginUpload claims the session's single upload slot.
func (s *Session) beginUpload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.NotFoundError{Resource: "session"}
	}
	if s.uploading {
		return domain.ErrUploadInFlight
	}
	s.uploading = true
	return nil
}

func (s *Session) endUpload() {
	s.mu.Lock()
	s.uploading = false
	s.mu.Unlock()
}

// SessionService creates and tracks editing sessions. Sessions expire
// after the configured TTL; an expired session behaves exactly like a
// cancelled one.
type SessionService struct {
	holder   *state.Holder
	blob     usecase.BlobStore
	sessions *cache.Cache
}

// NewSessionService wires the session store. blob may be nil; uploads
// then fail with ErrUnavailable while everything else keeps working.
func NewSessionService(holder *state.Holder, blob usecase.BlobStore, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &SessionService{
		holder:   holder,
		blob:     blob,
		sessions: cache.New(ttl, 10*time.Minute),
	}
}

// Open clones the live state into a new staging session.
func (s *SessionService) Open() *Session {
	data, theme := s.holder.Snapshot()
	sess := &Session{
		ID:    uuid.NewString(),
		data:  data,
		theme: theme,
	}
	s.sessions.SetDefault(sess.ID, sess)
	return sess
}

// Get looks up a live session by id.
func (s *SessionService) Get(id string) (*Session, error) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, domain.NotFoundError{Resource: "session"}
	}
	return v.(*Session), nil
}

// Save promotes the staged state to the live state in one atomic
// replace and closes the session. Returns the commit event for
// downstream fan-out.
func (s *SessionService) Save(ctx context.Context, id string) (folio.Event, error) {
	_, span := tracer.Start(ctx, "Session.Service.Save")
	defer span.End()

	sess, err := s.Get(id)
	if err != nil {
		span.RecordError(err)
		return folio.Event{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		err := domain.NotFoundError{Resource: "session"}
		span.RecordError(err)
		return folio.Event{}, err
	}

	s.holder.Replace(sess.data, sess.theme)
	sess.closed = true
	s.sessions.Delete(id)

	return folio.Event{
		Type:  folio.EventCommit,
		Data:  sess.data.Clone(),
		Theme: sess.theme,
		At:    time.Now().UTC(),
	}, nil
}

// Cancel discards the staged state. The live state is untouched.
func (s *SessionService) Cancel(id string) error {
	sess, err := s.Get(id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	sess.closed = true
	sess.mu.Unlock()
	s.sessions.Delete(id)
	return nil
}

// Upload pushes a batch of files to the blob store and appends the
// resulting URLs to the case's gallery. The batch is all-or-nothing:
// the first failing file aborts the loop and nothing is appended. One
// batch may be in flight per session; further calls are rejected with
// ErrUploadInFlight until it settles. If the session is cancelled
// while the batch is in flight the stored URLs are returned but the
// append is silently dropped with the rest of the staged state.
func (s *SessionService) Upload(ctx context.Context, sessionID, caseID string, files []usecase.UploadFile) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.Upload")
	defer span.End()

	if s.blob == nil {
		err := domain.UnavailableError{Capability: "image upload"}
		span.RecordError(err)
		return nil, err
	}

	sess, err := s.Get(sessionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := sess.beginUpload(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer sess.endUpload()

	urls := make([]string, 0, len(files))
	for _, f := range files {
		key := fmt.Sprintf("cases/%s/%s_%s", caseID, uuid.NewString()[:8], f.Name)
		url, err := s.blob.Put(ctx, key, f.ContentType, f.Data)
		if err != nil {
			wrapped := domain.UploadError{Key: key, Err: err}
			span.RecordError(errors.Wrap(wrapped, "SessionService.Upload: blob.Put failed"))
			return nil, wrapped
		}
		urls = append(urls, url)
	}

	err = sess.Edit(func(d folio.SiteData) folio.SiteData {
		return editor.AppendImages(d, caseID, urls)
	})
	if err != nil {
		// session was discarded while the batch was in flight; the
		// result is dropped with it
		return urls, nil
	}

	return urls, nil
}
