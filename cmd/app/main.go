package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/andersonbelino29/eventmate-pro-sub001/config"
	adminapp_reservation "github.com/andersonbelino29/eventmate-pro-sub001/internal/module/adminapp/reservation"
	customerapp_event "github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/event"
	customerapp_reservation "github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/reservation"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/stripe"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/tenant"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/jwt"
	internalMiddleware "github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/middleware"
	"github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/session"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/applogger"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/broker"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/middleware"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/postgresql"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/redis"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/server"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/validator"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

var c *config.Config

func init() {
	c = config.Get()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := applogger.GetLogrus()

	validate := validator.Get()

	hc := http.DefaultClient

	jsonWebToken, err := jwt.NewJSONWebToken(c.JWT.PrivateKey, c.JWT.PublicKey)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Fatal("invalid jwt key pair")
	}

	psqldb := postgresql.GetDatabase()
	if err := psqldb.Ping(); err != nil {
		logger.WithContext(ctx).WithError(err).Error()
	}

	rc := redis.GetClient()
	if err := rc.Ping(context.Background()).Err(); err != nil {
		logger.WithContext(ctx).WithError(err).Error()
	}

	publisher, err := broker.NewRabbitMQPublisher(logger, c.AMQP.URL, c.AMQP.Exchange, c.AMQP.Queue)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Fatal("could not connect to the message broker")
	}

	sessionStore := session.NewRedisSessionStore(logger, rc)

	customerSessionMiddleware := internalMiddleware.NewCustomerSessionMiddleware(jsonWebToken, sessionStore)
	adminSessionMiddleware := internalMiddleware.NewAdminSessionMiddleware(jsonWebToken, sessionStore)

	router := mux.NewRouter()
	router.Use(
		middleware.HTTPResponseTraceInjection,
		middleware.NewHTTPRequestLogger(logger, c.Application.Debug, http.StatusInternalServerError).Middleware,
	)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	tenantRepo := tenant.NewTenantRepository(logger, psqldb)
	tenantResolver := tenant.NewResolverMiddleware(tenantRepo)

	// customer's app
	customerappEventRepo := customerapp_event.NewEventRepository(logger, psqldb)
	customerappTableRepo := customerapp_event.NewTableRepository(logger, psqldb)
	customerappDraftRepo := customerapp_reservation.NewDraftRepository(logger, rc, c.Reservation.DraftTTL)
	customerappReservationRepo := customerapp_reservation.NewReservationRepository(logger, psqldb)
	stripeRepo := stripe.NewStripeRepository(c.Stripe.BaseURL, c.Stripe.SecretKey, logger, hc)

	customerappEventUseCase := customerapp_event.NewEventUseCase(customerapp_event.EventUseCaseProperty{
		Logger:          logger,
		Timeout:         c.Application.Timeout,
		EventRepository: customerappEventRepo,
		TableRepository: customerappTableRepo,
	})
	customerapp_event.InitHTTPHandler(router, tenantResolver, customerappEventUseCase)

	customerappReservationUseCase := customerapp_reservation.NewReservationUseCase(customerapp_reservation.ReservationUseCaseProperty{
		Logger:                logger,
		Timeout:               c.Application.Timeout,
		BaseURL:               c.Application.BaseURL,
		Currency:              "brl",
		EventRepository:       customerappEventRepo,
		TableRepository:       customerappTableRepo,
		DraftRepository:       customerappDraftRepo,
		ReservationRepository: customerappReservationRepo,
		StripeRepository:      stripeRepo,
		Publisher:             publisher,
	})
	customerapp_reservation.InitHTTPHandler(router, tenantResolver, customerSessionMiddleware, validate, customerappReservationUseCase)

	// admin's app
	adminappReservationRepo := adminapp_reservation.NewReservationRepository(logger, psqldb)
	adminappReservationUseCase := adminapp_reservation.NewReservationUseCase(adminapp_reservation.ReservationUseCaseProperty{
		Logger:                logger,
		Timeout:               c.Application.Timeout,
		ReservationRepository: adminappReservationRepo,
	})
	adminapp_reservation.InitHTTPHandler(router, tenantResolver, adminSessionMiddleware, validate, adminappReservationUseCase)

	handler := middleware.SetChain(
		router,
		cors.New(cors.Options{
			AllowedOrigins:   c.CORS.AllowedOrigins,
			AllowedMethods:   c.CORS.AllowedMethods,
			AllowedHeaders:   c.CORS.AllowedHeaders,
			ExposedHeaders:   c.CORS.ExposedHeaders,
			MaxAge:           c.CORS.MaxAge,
			AllowCredentials: c.CORS.AllowCredentials,
		}).Handler,
	)

	srv := &server.Server{
		Server: http.Server{
			Addr:    fmt.Sprintf(":%d", c.Application.Port),
			Handler: handler,
		},
		Logger: logger,
	}

	go func() {
		srv.ListenAndServe()
	}()

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	<-sigterm

	srv.Shutdown(ctx)
	publisher.Close()
	psqldb.Close()
	rc.Close()
}
