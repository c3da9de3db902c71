package blob

import (
	"context"
	"sync"

	"github.com/joelraetz/folio/internal/domain"
)

type memoryObject struct {
	contentType string
	data        []byte
}

// MemoryStore holds media in process memory. Used in tests and when
// running without postgres but with uploads still wanted.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
	baseURL string
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		objects: make(map[string]memoryObject),
		baseURL: baseURL,
	}
}

func (s *MemoryStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = memoryObject{contentType: contentType, data: buf}

	return s.baseURL + "/media/" + key, nil
}

func (s *MemoryStore) Open(ctx context.Context, key string) (string, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	object, ok := s.objects[key]
	if !ok {
		return "", nil, domain.NotFoundError{Resource: "media object"}
	}
	return object.contentType, object.data, nil
}
