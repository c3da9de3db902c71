package usecase

import (
	"context"
	"encoding/json"

	"github.com/bradfitz/gomemcache/memcache"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/joelraetz/folio"
	"github.com/joelraetz/folio/internal/state"
)

const viewKeyPrefix = "folio:view:"

// SitePayload is the full presentation handoff: the untranslated
// model, the theme, and the fixed UI strings.
type SitePayload struct {
	Data         folio.SiteData     `json:"data"`
	Theme        folio.ThemeConfig  `json:"theme"`
	Translations folio.Translations `json:"translations"`
}

// ContentUsecase is the read side of the live state. When a memcache
// client is configured the per-language resolved views are cached
// until the next commit.
type ContentUsecase struct {
	holder *state.Holder
	views  *memcache.Client
}

func NewContentUsecase(holder *state.Holder, views *memcache.Client) *ContentUsecase {
	return &ContentUsecase{holder: holder, views: views}
}

// Site returns the full handoff payload.
func (uc *ContentUsecase) Site(ctx context.Context) SitePayload {
	data, theme := uc.holder.Snapshot()
	return SitePayload{
		Data:         data,
		Theme:        theme,
		Translations: folio.UITranslations,
	}
}

// View returns the model resolved for one language.
func (uc *ContentUsecase) View(ctx context.Context, lang folio.Language) folio.SiteView {
	span := trace.SpanFromContext(ctx)

	if uc.views != nil {
		if item, err := uc.views.Get(viewKeyPrefix + string(lang)); err == nil {
			var view folio.SiteView
			if err := json.Unmarshal(item.Value, &view); err == nil {
				span.SetAttributes(attribute.Bool("view.cache_hit", true))
				return view
			}
		}
	}

	span.SetAttributes(attribute.Bool("view.cache_hit", false))

	data, _ := uc.holder.Snapshot()
	view := data.Resolve(lang)

	if uc.views != nil {
		if value, err := json.Marshal(view); err == nil {
			// best effort; a cold cache only costs a re-resolve
			_ = uc.views.Set(&memcache.Item{Key: viewKeyPrefix + string(lang), Value: value})
		}
	}

	return view
}

// InvalidateViews drops every cached view. Called after a commit.
func (uc *ContentUsecase) InvalidateViews(ctx context.Context) {
	if uc.views == nil {
		return
	}
	for _, lang := range folio.Languages {
		_ = uc.views.Delete(viewKeyPrefix + string(lang))
	}
}
