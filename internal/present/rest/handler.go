package rest

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/joelraetz/folio"
	"github.com/joelraetz/folio/internal/config"
	"github.com/joelraetz/folio/internal/domain"
	"github.com/joelraetz/folio/internal/editor"
	"github.com/joelraetz/folio/internal/present/rest/presenter"
	"github.com/joelraetz/folio/internal/service"
	"github.com/joelraetz/folio/internal/usecase"
)

type Handler struct {
	config   config.Config
	content  *usecase.ContentUsecase
	sessions *service.SessionService
	media    usecase.MediaReader
	signal   *service.SignalService
}

func NewHandler(
	config config.Config,
	content *usecase.ContentUsecase,
	sessions *service.SessionService,
	media usecase.MediaReader,
	signal *service.SignalService,
) *Handler {
	return &Handler{
		config:   config,
		content:  content,
		sessions: sessions,
		media:    media,
		signal:   signal,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/site", h.handleSite)
	e.GET("/api/site/view", h.handleView)
	e.GET("/media/*", h.handleMedia)
	e.GET("/realtime", h.handleRealtime)

	admin := e.Group("/api/admin/sessions")
	admin.POST("", h.handleOpenSession)
	admin.GET("/:id", h.handleGetSession)
	admin.POST("/:id/save", h.handleSaveSession)
	admin.DELETE("/:id", h.handleCancelSession)

	admin.PUT("/:id/theme", h.handleSetTheme)

	admin.PATCH("/:id/profile", h.handleUpdateProfile)
	admin.PUT("/:id/profile/text", h.handleProfileText)
	admin.POST("/:id/profile/socials", h.handleAddSocial)
	admin.PATCH("/:id/profile/socials/:index", h.handleUpdateSocial)
	admin.DELETE("/:id/profile/socials/:index", h.handleRemoveSocial)
	admin.PUT("/:id/skills", h.handleSetSkills)

	admin.POST("/:id/cases", h.handleAddCase)
	admin.PATCH("/:id/cases/:caseId", h.handleUpdateCase)
	admin.DELETE("/:id/cases/:caseId", h.handleRemoveCase)
	admin.PUT("/:id/cases/:caseId/detail", h.handleCaseDetail)
	admin.PUT("/:id/cases/:caseId/text", h.handleCaseText)
	admin.POST("/:id/cases/:caseId/images", h.handleAddImages)
	admin.POST("/:id/cases/:caseId/images/move", h.handleMoveImage)
	admin.PUT("/:id/cases/:caseId/images/primary", h.handleSetPrimaryImage)
	admin.DELETE("/:id/cases/:caseId/images/:index", h.handleRemoveImage)

	admin.POST("/:id/experience", h.handleAddExperience)
	admin.PATCH("/:id/experience/:itemId", h.handleUpdateExperience)
	admin.DELETE("/:id/experience/:itemId", h.handleRemoveExperience)
	admin.PUT("/:id/experience/:itemId/text", h.handleExperienceText)
}

// respondError translates domain errors into HTTP responses.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrUploadInFlight):
		return presenter.Conflict(c, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		return presenter.Unavailable(c, err.Error())
	default:
		return presenter.InternalError(c, err)
	}
}

func (h *Handler) handleSite(c echo.Context) error {
	ctx := c.Request().Context()
	return presenter.OK(c, h.content.Site(ctx))
}

func (h *Handler) handleView(c echo.Context) error {
	ctx := c.Request().Context()

	langStr := c.QueryParam("lang")
	if langStr == "" {
		langStr = string(folio.LangDE)
	}
	lang, ok := folio.ParseLanguage(langStr)
	if !ok {
		return presenter.BadRequestMessage(c, "invalid lang parameter")
	}

	return presenter.OK(c, h.content.View(ctx, lang))
}

func (h *Handler) handleMedia(c echo.Context) error {
	ctx := c.Request().Context()

	if h.media == nil {
		return presenter.Unavailable(c, "media store unavailable")
	}

	key := c.Param("*")
	contentType, data, err := h.media.Open(ctx, key)
	if err != nil {
		return respondError(c, err)
	}

	return c.Blob(http.StatusOK, contentType, data)
}

type sessionResponse struct {
	ID    string            `json:"id"`
	Data  folio.SiteData    `json:"data"`
	Theme folio.ThemeConfig `json:"theme"`
}

func (h *Handler) handleOpenSession(c echo.Context) error {
	sess := h.sessions.Open()
	data, theme, err := sess.Snapshot()
	if err != nil {
		return respondError(c, err)
	}
	return presenter.Created(c, sessionResponse{ID: sess.ID, Data: data, Theme: theme})
}

func (h *Handler) handleGetSession(c echo.Context) error {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	data, theme, err := sess.Snapshot()
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, sessionResponse{ID: sess.ID, Data: data, Theme: theme})
}

func (h *Handler) handleSaveSession(c echo.Context) error {
	ctx := c.Request().Context()

	event, err := h.sessions.Save(ctx, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	h.content.InvalidateViews(ctx)

	if h.signal != nil {
		err := h.signal.Publish(ctx, event)
		if err != nil {
			slog.ErrorContext(
				ctx, "Failed to publish commit event",
				slog.String("error", err.Error()),
				slog.String("module", "rest"),
			)
		}
	}

	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleCancelSession(c echo.Context) error {
	err := h.sessions.Cancel(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleSetTheme(c echo.Context) error {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var theme folio.ThemeConfig
	err = c.Bind(&theme)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	err = sess.SetTheme(theme)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// edit runs one pure transform against the addressed session.
func (h *Handler) edit(c echo.Context, fn func(folio.SiteData) folio.SiteData) error {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	err = sess.Edit(fn)
	if err != nil {
		return respondError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

type localizedTextRequest struct {
	Field string `json:"field"`
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

func (h *Handler) handleUpdateProfile(c echo.Context) error {
	var patch editor.ProfilePatch
	err := c.Bind(&patch)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.UpdateProfile(d, patch)
	})
}

func (h *Handler) handleProfileText(c echo.Context) error {
	var req localizedTextRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	field := editor.ProfileTextField(req.Field)
	if field != editor.FieldTagline && field != editor.FieldBio {
		return presenter.BadRequestMessage(c, "unknown profile field")
	}
	lang, ok := folio.ParseLanguage(req.Lang)
	if !ok {
		return presenter.BadRequestMessage(c, "invalid lang parameter")
	}

	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.UpdateProfileLocalized(d, field, lang, req.Value)
	})
}

func (h *Handler) handleAddSocial(c echo.Context) error {
	return h.edit(c, editor.AddSocial)
}

type socialUpdateRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *Handler) handleUpdateSocial(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid index")
	}

	var req socialUpdateRequest
	err = c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	field := editor.SocialField(req.Field)
	if field != editor.SocialPlatform && field != editor.SocialURL && field != editor.SocialIcon {
		return presenter.BadRequestMessage(c, "unknown social field")
	}

	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.UpdateSocial(d, index, field, req.Value)
	})
}

func (h *Handler) handleRemoveSocial(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid index")
	}
	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.RemoveSocial(d, index)
	})
}

func (h *Handler) handleSetSkills(c echo.Context) error {
	var skills folio.Skills
	err := c.Bind(&skills)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.SetSkills(d, skills)
	})
}

func (h *Handler) handleAddCase(c echo.Context) error {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var created folio.BusinessCase
	err = sess.Edit(func(d folio.SiteData) folio.SiteData {
		next, bc := editor.AddCase(d)
		created = bc
		return next
	})
	if err != nil {
		return respondError(c, err)
	}

	return presenter.Created(c, created)
}

func (h *Handler) handleUpdateCase(c echo.Context) error {
	caseID := c.Param("caseId")

	var patch editor.CasePatch
	err := c.Bind(&patch)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.UpdateCase(d, caseID, patch)
	})
}

func (h *Handler) handleRemoveCase(c echo.Context) error {
	caseID := c.Param("caseId")
	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.RemoveCase(d, caseID)
	})
}

type detailUpdateRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *Handler) handleCaseDetail(c echo.Context) error {
	caseID := c.Param("caseId")

	var req detailUpdateRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	field := editor.DetailField(req.Field)
	switch field {
	case editor.DetailTestimonial, editor.DetailTestimonialAuthor,
		editor.DetailVideoURL, editor.DetailAudioURL, editor.DetailResultMetric:
	default:
		return presenter.BadRequestMessage(c, "unknown detail field")
	}

	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.UpdateCaseDetail(d, caseID, field, req.Value)
	})
}

func (h *Handler) handleCaseText(c echo.Context) error {
	caseID := c.Param("caseId")

	var req localizedTextRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	field := editor.CaseTextField(req.Field)
	if field != editor.FieldRole && field != editor.FieldDescription {
		return presenter.BadRequestMessage(c, "unknown text field")
	}
	lang, ok := folio.ParseLanguage(req.Lang)
	if !ok {
		return presenter.BadRequestMessage(c, "invalid lang parameter")
	}

	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.UpdateCaseLocalized(d, caseID, field, lang, req.Value)
	})
}

type addImageRequest struct {
	URL string `json:"url"`
}

type uploadResponse struct {
	URLs []string `json:"urls"`
}

// handleAddImages accepts either a multipart upload of one or more
// files or a JSON body carrying an already-hosted URL.
func (h *Handler) handleAddImages(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("id")
	caseID := c.Param("caseId")

	form, err := c.MultipartForm()
	if err == nil {
		files := []usecase.UploadFile{}
		for _, fh := range form.File["files"] {
			src, err := fh.Open()
			if err != nil {
				return presenter.BadRequest(c, err)
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				return presenter.BadRequest(c, err)
			}
			files = append(files, usecase.UploadFile{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}
		if len(files) == 0 {
			return presenter.BadRequestMessage(c, "no files provided")
		}

		urls, err := h.sessions.Upload(ctx, sessionID, caseID, files)
		if err != nil {
			return respondError(c, err)
		}
		return presenter.OK(c, uploadResponse{URLs: urls})
	}

	var req addImageRequest
	err = c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.URL == "" {
		return presenter.BadRequestMessage(c, "url is required")
	}

	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.AppendImages(d, caseID, []string{req.URL})
	})
}

type moveImageRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction"`
}

func (h *Handler) handleMoveImage(c echo.Context) error {
	caseID := c.Param("caseId")

	var req moveImageRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	dir := editor.Direction(req.Direction)
	if dir != editor.MoveLeft && dir != editor.MoveRight {
		return presenter.BadRequestMessage(c, "invalid direction")
	}

	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.MoveImage(d, caseID, req.Index, dir)
	})
}

type primaryImageRequest struct {
	URL string `json:"url"`
}

func (h *Handler) handleSetPrimaryImage(c echo.Context) error {
	caseID := c.Param("caseId")

	var req primaryImageRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.SetPrimaryImage(d, caseID, req.URL)
	})
}

func (h *Handler) handleRemoveImage(c echo.Context) error {
	caseID := c.Param("caseId")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return presenter.BadRequestMessage(c, "invalid index")
	}
	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.RemoveImage(d, caseID, index)
	})
}

func (h *Handler) handleAddExperience(c echo.Context) error {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var created folio.ExperienceItem
	err = sess.Edit(func(d folio.SiteData) folio.SiteData {
		next, item := editor.AddExperience(d)
		created = item
		return next
	})
	if err != nil {
		return respondError(c, err)
	}

	return presenter.Created(c, created)
}

func (h *Handler) handleUpdateExperience(c echo.Context) error {
	itemID := c.Param("itemId")

	var patch editor.ExperiencePatch
	err := c.Bind(&patch)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.UpdateExperience(d, itemID, patch)
	})
}

func (h *Handler) handleRemoveExperience(c echo.Context) error {
	itemID := c.Param("itemId")
	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.RemoveExperience(d, itemID)
	})
}

func (h *Handler) handleExperienceText(c echo.Context) error {
	itemID := c.Param("itemId")

	var req localizedTextRequest
	err := c.Bind(&req)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	field := editor.CaseTextField(req.Field)
	if field != editor.FieldRole && field != editor.FieldDescription {
		return presenter.BadRequestMessage(c, "unknown text field")
	}
	lang, ok := folio.ParseLanguage(req.Lang)
	if !ok {
		return presenter.BadRequestMessage(c, "invalid lang parameter")
	}

	return h.edit(c, func(d folio.SiteData) folio.SiteData {
		return editor.UpdateExperienceLocalized(d, itemID, field, lang, req.Value)
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type realtimeRequest struct {
	Type string `json:"type"`
}

// handleRealtime streams commit events to a connected renderer so it
// can refresh without polling.
func (h *Handler) handleRealtime(c echo.Context) error {
	if h.signal == nil {
		return presenter.Unavailable(c, "realtime unavailable")
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer func() {
		ws.Close()
	}()

	ctx := c.Request().Context()

	output := make(chan folio.Event)
	go h.signal.Subscribe(ctx, output)

	quit := make(chan struct{})

	go func() {
		for {
			var req realtimeRequest
			err := ws.ReadJSON(&req)
			if err != nil {

				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}

				quit <- struct{}{}
				break
			}

			switch req.Type {
			case "h": // heartbeat
				// do nothing
			default:
				slog.InfoContext(
					ctx, "Unknown request type",
					slog.String("type", req.Type),
					slog.String("module", "socket"),
				)
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event := <-output:
			err := ws.WriteJSON(event)
			if err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
