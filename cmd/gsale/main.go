package main

import (
	"context"
	"log/slog"
	"os"

	"gsale/config"
	"gsale/internal/delivery"
	"gsale/internal/delivery/http"
	"gsale/internal/delivery/http/middleware"
	"gsale/internal/delivery/http/router/handler"
	"gsale/internal/domain/service"
	"gsale/internal/infra/auth"
	logs "gsale/internal/infra/log"
	"gsale/internal/infra/persistence/postgres"
	"gsale/internal/infra/pubsub"
	"gsale/internal/infra/qrcode"
	"gsale/internal/infra/storage"
	"gsale/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newFileStorage,
		),
		pubsub.Module,
	)
}

// newFileStorage opens the blob bucket and ties its lifetime to the app.
func newFileStorage(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.FileStorage, error) {
	fs, err := storage.NewBlobStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return fs.Close()
		},
	})

	return fs, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewSaleRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewProductService,
			impl.NewSaleService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProfileHandler,
			handler.NewProductHandler,
			handler.NewSaleHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
