package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/auracraft/storefront/config"
	"github.com/auracraft/storefront/internal/adapter"
	"github.com/auracraft/storefront/internal/adapter/catalogapi"
	"github.com/auracraft/storefront/internal/adapter/httphandler"
	"github.com/auracraft/storefront/internal/adapter/kafka"
	"github.com/auracraft/storefront/internal/core/port"
	"github.com/auracraft/storefront/internal/core/service"
	"github.com/auracraft/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type App struct {
	ctx            context.Context
	cfg            config.Config
	catalogAPI     *catalogapi.Client
	eventsSerde    schema.Serde
	eventsProducer port.ClientEventsProducer
	service        service.Service
	httpServer     httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"

	if !app.cfg.Broker.Enabled() {
		slog.Info("no seed brokers, client events are disabled", "op", op)
		return
	}

	urls := app.cfg.Broker.SchemaRegistryURLs
	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	subject := app.cfg.Broker.Topics.ClientEvents + "-value"
	eventsSerde, err := schema.NewSerdeClientEventV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schema.NewSchemaIdentifier(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.eventsSerde = eventsSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	catalogAPI, err := catalogapi.New(app.cfg.API.BaseURL, app.cfg.API.Timeout)
	if err != nil {
		app.fallDown(op, err)
	}
	app.catalogAPI = catalogAPI

	if app.eventsSerde == nil {
		app.eventsProducer = kafka.NopProducer{}
		return
	}

	var tlsConfig *tls.Config
	if files := app.cfg.Broker.TLS; files.Enabled() {
		tlsConfig, err = adapter.MakeTLSConfig(files.CA, files.Cert, files.Key)
		if err != nil {
			app.fallDown(op, err)
		}
	}

	eventsProducer, err := kafka.NewClientEventsProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.Topics.ClientEvents,
			tlsConfig,
		),
		kafka.ProducerEncoderOpt(app.eventsSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.eventsProducer = eventsProducer
}

func (app *App) initCoreService() {
	app.service = service.New(
		app.catalogAPI,
		app.catalogAPI,
		app.catalogAPI,
		app.catalogAPI,
		app.catalogAPI,
		app.eventsProducer,
	)
}

func (app *App) initInboundAdapters() {
	const op = "App.initInboundAdapters"

	sessions := httphandler.NewSessionStore(app.cfg.Session.Secure)

	mux := http.NewServeMux()
	if err := httphandler.RegisterPages(mux, app.service, sessions); err != nil {
		app.fallDown(op, err)
	}

	handler := httphandler.Chain(mux,
		httphandler.LogRequests,
		httphandler.WithSession(sessions),
	)
	app.httpServer = httphandler.NewHTTPServer(
		app.cfg.HTTPServerAddr, handler, app.cfg.RequestTimeout,
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.service.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
