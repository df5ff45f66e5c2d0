//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	"frontdesk/internal/console"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	backupService "frontdesk/internal/domains/backup/service"
	billRepository "frontdesk/internal/domains/bill/repository"
	billService "frontdesk/internal/domains/bill/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	customerRepository "frontdesk/internal/domains/customer/repository"
	customerService "frontdesk/internal/domains/customer/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	sequenceRepository "frontdesk/internal/domains/sequence/repository"
	sequenceService "frontdesk/internal/domains/sequence/service"
	staffRepository "frontdesk/internal/domains/staff/repository"
	staffService "frontdesk/internal/domains/staff/service"

	billHandler "frontdesk/internal/handlers/bill"
	bookingHandler "frontdesk/internal/handlers/booking"
	customerHandler "frontdesk/internal/handlers/customer"
	roomHandler "frontdesk/internal/handlers/room"
	staffHandler "frontdesk/internal/handlers/staff"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	flatfile.New,
	wire.Bind(new(flatfile.Locker), new(flatfile.Store)),
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var sequenceDomain = wire.NewSet(
	sequenceRepository.New,
	sequenceService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var billDomain = wire.NewSet(
	billRepository.New,
	billService.New,
)

var domains = wire.NewSet(
	sequenceDomain,
	roomDomain,
	bookingDomain,
	customerDomain,
	staffDomain,
	billDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	customerHandler.New,
	staffHandler.New,
	billHandler.New,
	router.New,
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

func InitializeConsole() *console.Console {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		wire.Struct(new(console.Services), "*"),
		console.NewStdio,
	)

	return &console.Console{}
}

func InitializeMaintenance() *helper.Maintenance {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		sequenceDomain,
		roomRepository.New,
		bookingDomain,
		customerRepository.New,
		staffRepository.New,
		billRepository.New,
		s3.New,
		backupService.New,
		helper.New,
	)

	return &helper.Maintenance{}
}
