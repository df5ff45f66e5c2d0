//go:build !wireinject
// +build !wireinject

// The injectors below follow the provider sets in wire.go. Running wire in this
// directory regenerates them; keep both files in step until then.

package di

import (
	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	"frontdesk/internal/console"
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
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"
)

func InitializeService() *http.HTTP {
	cfg := config.Get()
	ot := otel.New(cfg)
	store := flatfile.New(cfg, ot)
	rooms := roomRepository.New(cfg, store, ot)
	bookings := bookingRepository.New(cfg, store, ot)
	cacheStore := cache.New(cfg, ot)
	roomSvc := roomService.New(rooms, bookings, store, cfg, cacheStore, ot)
	sequences := sequenceRepository.New(cfg, store, ot)
	allocator := sequenceService.New(sequences, cfg, ot)
	client := kafka.New(cfg)
	bookingSvc := bookingService.New(bookings, rooms, allocator, store, cfg, cacheStore, client, ot)
	roomRoutes := roomHandler.New(roomSvc, bookingSvc, ot)
	bookingRoutes := bookingHandler.New(bookingSvc, ot)
	customers := customerRepository.New(cfg, store, ot)
	customerSvc := customerService.New(customers, allocator, store, cfg, cacheStore, ot)
	customerRoutes := customerHandler.New(customerSvc, ot)
	staffMembers := staffRepository.New(cfg, store, ot)
	staffSvc := staffService.New(staffMembers, store, cfg, cacheStore, ot)
	staffRoutes := staffHandler.New(staffSvc, ot)
	bills := billRepository.New(cfg, store, ot)
	billSvc := billService.New(bills, customers, rooms, allocator, store, cfg, cacheStore, ot)
	billRoutes := billHandler.New(billSvc, ot)
	domainHandlers := router.DomainHandlers{
		Room:     roomRoutes,
		Booking:  bookingRoutes,
		Customer: customerRoutes,
		Staff:    staffRoutes,
		Bill:     billRoutes,
	}
	routes := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(ot, cfg, cacheStore)
	server := http.New(cfg, routes, appMiddleware, ot)
	return server
}

func InitializeConsole() *console.Console {
	cfg := config.Get()
	ot := otel.New(cfg)
	store := flatfile.New(cfg, ot)
	rooms := roomRepository.New(cfg, store, ot)
	bookings := bookingRepository.New(cfg, store, ot)
	cacheStore := cache.New(cfg, ot)
	roomSvc := roomService.New(rooms, bookings, store, cfg, cacheStore, ot)
	sequences := sequenceRepository.New(cfg, store, ot)
	allocator := sequenceService.New(sequences, cfg, ot)
	client := kafka.New(cfg)
	bookingSvc := bookingService.New(bookings, rooms, allocator, store, cfg, cacheStore, client, ot)
	customers := customerRepository.New(cfg, store, ot)
	customerSvc := customerService.New(customers, allocator, store, cfg, cacheStore, ot)
	staffMembers := staffRepository.New(cfg, store, ot)
	staffSvc := staffService.New(staffMembers, store, cfg, cacheStore, ot)
	bills := billRepository.New(cfg, store, ot)
	billSvc := billService.New(bills, customers, rooms, allocator, store, cfg, cacheStore, ot)
	services := console.Services{
		Room:     roomSvc,
		Booking:  bookingSvc,
		Customer: customerSvc,
		Staff:    staffSvc,
		Bill:     billSvc,
	}
	desk := console.NewStdio(services, ot)
	return desk
}

func InitializeMaintenance() *helper.Maintenance {
	cfg := config.Get()
	ot := otel.New(cfg)
	store := flatfile.New(cfg, ot)
	rooms := roomRepository.New(cfg, store, ot)
	bookings := bookingRepository.New(cfg, store, ot)
	customers := customerRepository.New(cfg, store, ot)
	staffMembers := staffRepository.New(cfg, store, ot)
	bills := billRepository.New(cfg, store, ot)
	sequences := sequenceRepository.New(cfg, store, ot)
	allocator := sequenceService.New(sequences, cfg, ot)
	cacheStore := cache.New(cfg, ot)
	client := kafka.New(cfg)
	bookingSvc := bookingService.New(bookings, rooms, allocator, store, cfg, cacheStore, client, ot)
	bucket := s3.New(cfg, ot)
	backups := backupService.New(store, bucket, cfg, ot)
	maintenance := helper.New(cfg, store, rooms, bookings, customers, staffMembers, bills, sequences, bookingSvc, backups, client)
	return maintenance
}
