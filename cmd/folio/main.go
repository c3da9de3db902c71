package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/joelraetz/folio"
	"github.com/joelraetz/folio/internal/config"
	"github.com/joelraetz/folio/internal/infra/blob"
	"github.com/joelraetz/folio/internal/infra/database"
	"github.com/joelraetz/folio/internal/observability"
	"github.com/joelraetz/folio/internal/present/rest"
	"github.com/joelraetz/folio/internal/service"
	"github.com/joelraetz/folio/internal/state"
	"github.com/joelraetz/folio/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	ctx := context.Background()

	if conf.Server.EnableTrace {
		shutdown, err := observability.InitTracing(ctx, conf.Server.TraceEndpoint, "folio")
		if err != nil {
			panic("failed to init tracing: " + err.Error())
		}
		defer shutdown(ctx)
	}

	var mediaStore *blob.MediaStore
	if conf.Server.PostgresDsn != "" {
		db, err := database.NewPostgres(conf.Server.PostgresDsn)
		if err != nil {
			panic("failed to connect database")
		}
		err = database.MigratePostgres(db)
		if err != nil {
			panic("failed to migrate database")
		}
		mediaStore = blob.NewMediaStore(db, conf.Site.PublicURL)
	} else {
		slog.Info("postgres not configured, image upload disabled")
	}

	var signal *service.SignalService
	if conf.Server.RedisAddr != "" {
		rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)
		signal = service.NewSignalService(rdb)
	} else {
		slog.Info("redis not configured, realtime disabled")
	}

	holder := state.NewHolder(folio.SeedData(), folio.DefaultTheme())

	var content *usecase.ContentUsecase
	if conf.Server.MemcachedAddr != "" {
		mc := database.NewMemcached(conf.Server.MemcachedAddr)
		content = usecase.NewContentUsecase(holder, mc)
	} else {
		content = usecase.NewContentUsecase(holder, nil)
	}

	ttl := time.Duration(conf.Server.SessionTTLMinutes) * time.Minute
	var blobStore usecase.BlobStore
	var mediaReader usecase.MediaReader
	if mediaStore != nil {
		blobStore = mediaStore
		mediaReader = mediaStore
	}
	sessions := service.NewSessionService(holder, blobStore, ttl)

	handler := rest.NewHandler(conf, content, sessions, mediaReader, signal)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("folio"))
	}

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}
