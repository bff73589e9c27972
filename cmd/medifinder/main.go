package main

import (
	"context"
	"log/slog"
	"os"

	"medifinder/config"
	"medifinder/internal/delivery"
	"medifinder/internal/delivery/http"
	"medifinder/internal/delivery/http/middleware"
	"medifinder/internal/delivery/http/router/handler"
	"medifinder/internal/infra/auth"
	logs "medifinder/internal/infra/log"
	"medifinder/internal/infra/notification"
	"medifinder/internal/infra/persistence/badgerstore"
	"medifinder/internal/infra/persistence/memory"
	"medifinder/internal/infra/qrcode"
	"medifinder/internal/usecase"
	"medifinder/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Session      usecase.SessionUsecase
	Cart         usecase.CartUsecase
	Reminders    usecase.ReminderUsecase
	Telemedicine usecase.TelemedicineUsecase
	Deliveries   []delivery.Delivery `group:"deliveries"`
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
		badgerstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			badgerstore.NewSessionVault,
			badgerstore.NewCartRepository,
			badgerstore.NewReservationRepository,
			memory.NewPharmacyRepository,
			memory.NewMedicationRepository,
			memory.NewReminderRepository,
			memory.NewPharmacistRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewMockDirectory,
			notification.NewToastNotifier,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCartService,
			impl.NewReminderService,
			impl.NewCatalogService,
			impl.NewReservationService,
			impl.NewTelemedicineService,
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
			handler.NewSessionHandler,
			handler.NewCartHandler,
			handler.NewReminderHandler,
			handler.NewCatalogHandler,
			handler.NewReservationHandler,
			handler.NewTelemedicineHandler,
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

func startServer(ctx context.Context, params startServerParams) error {
	// Rebuild the stores from durable storage before serving traffic.
	if err := params.Session.Restore(ctx); err != nil {
		return err
	}
	if err := params.Cart.Restore(ctx); err != nil {
		return err
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Reminders.StopAll()
			params.Telemedicine.StopAll()

			return nil
		},
	})

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}

	return nil
}
