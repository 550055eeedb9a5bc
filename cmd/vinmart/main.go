package main

import (
	"context"
	"log/slog"
	"os"

	"vinmart/config"
	"vinmart/internal/delivery"
	"vinmart/internal/delivery/http"
	httpmiddleware "vinmart/internal/delivery/http/middleware"
	"vinmart/internal/delivery/http/router/handler"
	deliverymiddleware "vinmart/internal/delivery/middleware"
	"vinmart/internal/infra/auth"
	logs "vinmart/internal/infra/log"
	"vinmart/internal/infra/mail"
	"vinmart/internal/infra/persistence/postgres"
	"vinmart/internal/infra/storage"
	"vinmart/internal/usecase/impl"

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewOTPGenerator,
			mail.NewSMTPMailer,
			storage.NewLocalStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCategoryService,
			impl.NewProductUnitService,
			impl.NewProductService,
			impl.NewProfileService,
			impl.NewAddressService,
			impl.NewCartService,
			impl.NewFavoriteService,
			impl.NewPaymentMethodService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCategoryHandler,
			handler.NewProductUnitHandler,
			handler.NewProductHandler,
			handler.NewProfileHandler,
			handler.NewAddressHandler,
			handler.NewCartHandler,
			handler.NewFavoriteHandler,
			handler.NewPaymentMethodHandler,
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
