package blob

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/joelraetz/folio/internal/domain"
	"github.com/joelraetz/folio/internal/infra/database/models"
)

// MediaStore keeps uploaded media in postgres and serves it back
// under baseURL + "/media/" + key.
type MediaStore struct {
	db      *gorm.DB
	baseURL string
}

func NewMediaStore(db *gorm.DB, baseURL string) *MediaStore {
	return &MediaStore{db: db, baseURL: baseURL}
}

func (s *MediaStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {

	object := models.MediaObject{
		Key:         key,
		ContentType: contentType,
		Bytes:       data,
		CDate:       time.Now(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"content_type", "bytes"}),
	}).Create(&object).Error
	if err != nil {
		return "", errors.Wrap(err, "MediaStore.Put: failed to store object")
	}

	return s.baseURL + "/media/" + key, nil
}

func (s *MediaStore) Open(ctx context.Context, key string) (string, []byte, error) {

	var object models.MediaObject
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&object).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, domain.NotFoundError{Resource: "media object"}
		}
		return "", nil, errors.Wrap(err, "MediaStore.Open: query failed")
	}

	return object.ContentType, object.Bytes, nil
}
