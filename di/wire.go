//go:build wireinject
// +build wireinject

package di

import (
	"lodgehub/config"
	"lodgehub/infras/jwt"
	"lodgehub/infras/kafka"
	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/infras/redis"
	"lodgehub/infras/s3"
	"lodgehub/internal/worker"
	"lodgehub/permissions"
	"lodgehub/shared/cache"
	"lodgehub/transport/http"
	"lodgehub/transport/http/middleware"
	"lodgehub/transport/http/router"

	"github.com/google/wire"

	authService "lodgehub/internal/domains/auth/service"
	availabilityService "lodgehub/internal/domains/availability/service"
	billingRepository "lodgehub/internal/domains/billing/repository"
	billingService "lodgehub/internal/domains/billing/service"
	bookingRepository "lodgehub/internal/domains/booking/repository"
	bookingService "lodgehub/internal/domains/booking/service"
	calendarService "lodgehub/internal/domains/calendar/service"
	cancelRepository "lodgehub/internal/domains/cancel/repository"
	cancelService "lodgehub/internal/domains/cancel/service"
	chargeRepository "lodgehub/internal/domains/charge/repository"
	chargeService "lodgehub/internal/domains/charge/service"
	defaultValueRepository "lodgehub/internal/domains/defaultvalue/repository"
	defaultValueService "lodgehub/internal/domains/defaultvalue/service"
	historyService "lodgehub/internal/domains/history/service"
	ledgerRepository "lodgehub/internal/domains/ledger/repository"
	ledgerService "lodgehub/internal/domains/ledger/service"
	lodgeRepository "lodgehub/internal/domains/lodge/repository"
	outboxRepository "lodgehub/internal/domains/outbox/repository"
	outboxService "lodgehub/internal/domains/outbox/service"
	peakHourRepository "lodgehub/internal/domains/peakhour/repository"
	peakHourService "lodgehub/internal/domains/peakhour/service"
	pricingService "lodgehub/internal/domains/pricing/service"
	roomRepository "lodgehub/internal/domains/room/repository"
	roomService "lodgehub/internal/domains/room/service"
	userRepository "lodgehub/internal/domains/user/repository"
	userService "lodgehub/internal/domains/user/service"

	authHandler "lodgehub/internal/handlers/auth"
	billingHandler "lodgehub/internal/handlers/billing"
	bookingHandler "lodgehub/internal/handlers/booking"
	calendarHandler "lodgehub/internal/handlers/calendar"
	cancelHandler "lodgehub/internal/handlers/cancel"
	chargeHandler "lodgehub/internal/handlers/charge"
	defaultValueHandler "lodgehub/internal/handlers/defaultvalue"
	historyHandler "lodgehub/internal/handlers/history"
	ledgerHandler "lodgehub/internal/handlers/ledger"
	peakHourHandler "lodgehub/internal/handlers/peakhour"
	roomHandler "lodgehub/internal/handlers/room"
	userHandler "lodgehub/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var storages = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	s3.New,
)

var infrastructures = wire.NewSet(
	storages,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var lodgeDomain = wire.NewSet(
	lodgeRepository.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var catalogDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	peakHourRepository.New,
	peakHourService.New,
	defaultValueRepository.New,
	defaultValueService.New,
	pricingService.New,
)

var ledgerDomain = wire.NewSet(
	ledgerRepository.NewIncome,
	ledgerRepository.NewExpense,
	ledgerService.New,
)

var outboxDomain = wire.NewSet(
	outboxRepository.New,
	outboxService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	availabilityService.New,
	bookingService.New,
)

var settlementDomain = wire.NewSet(
	billingRepository.New,
	billingService.New,
	cancelRepository.New,
	cancelRepository.NewPartial,
	cancelService.New,
	chargeRepository.New,
	chargeService.New,
)

var reportingDomain = wire.NewSet(
	historyService.New,
	calendarService.New,
)

var domains = wire.NewSet(
	lodgeDomain,
	authDomain,
	catalogDomain,
	ledgerDomain,
	outboxDomain,
	bookingDomain,
	settlementDomain,
	reportingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	peakHourHandler.New,
	defaultValueHandler.New,
	bookingHandler.New,
	historyHandler.New,
	calendarHandler.New,
	billingHandler.New,
	cancelHandler.New,
	chargeHandler.New,
	ledgerHandler.New,
	router.New,
)

var workers = wire.NewSet(
	worker.NewOutboxRelay,
	worker.NewIDProofCleaner,
	worker.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *worker.Workers {
	wire.Build(
		config.Get,
		storages,
		kafka.New,
		sharedHelpers,
		lodgeDomain,
		roomRepository.New,
		roomService.New,
		ledgerDomain,
		outboxDomain,
		bookingDomain,
		workers,
	)

	return &worker.Workers{}
}
