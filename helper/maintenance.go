package helper

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/kafka"
	backupService "frontdesk/internal/domains/backup/service"
	billModel "frontdesk/internal/domains/bill/model"
	billRepo "frontdesk/internal/domains/bill/repository"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	customerModel "frontdesk/internal/domains/customer/model"
	customerRepo "frontdesk/internal/domains/customer/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	sequenceModel "frontdesk/internal/domains/sequence/model"
	sequenceRepo "frontdesk/internal/domains/sequence/repository"
	staffModel "frontdesk/internal/domains/staff/model"
	staffRepo "frontdesk/internal/domains/staff/repository"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	ActionInit      = "init"
	ActionReconcile = "reconcile"
	ActionBackup    = "backup"
	ActionTail      = "tail"
)

type Maintenance struct {
	cfg      *config.Config
	store    flatfile.Store
	tables   []func(ctx context.Context) error
	bookings bookingService.Booking
	backup   backupService.Backup
	events   kafka.Client
}

func New(
	cfg *config.Config,
	store flatfile.Store,
	rooms roomRepo.Room,
	bookings bookingRepo.Booking,
	customers customerRepo.Customer,
	staff staffRepo.Staff,
	bills billRepo.Bill,
	sequences sequenceRepo.Sequence,
	bookingSvc bookingService.Booking,
	backup backupService.Backup,
	events kafka.Client,
) *Maintenance {
	return &Maintenance{
		cfg:   cfg,
		store: store,
		tables: []func(ctx context.Context) error{
			ensureTable[roomModel.Room](rooms),
			ensureTable[bookingModel.Booking](bookings),
			ensureTable[customerModel.Customer](customers),
			ensureTable[staffModel.Staff](staff),
			ensureTable[billModel.Bill](bills),
			ensureTable[sequenceModel.Sequence](sequences),
		},
		bookings: bookingSvc,
		backup:   backup,
		events:   events,
	}
}

// Runner performs one maintenance action. tail blocks until ctx is cancelled.
func (m *Maintenance) Runner(ctx context.Context, action string) error {
	switch action {
	case ActionInit:
		return m.init(ctx)
	case ActionReconcile:
		report, err := m.bookings.Reconcile(ctx)
		if err != nil {
			return fmt.Errorf("error reconciling rooms: %w", err)
		}

		log.Info().
			Strs("freed", report.Freed).
			Strs("reoccupied", report.Reoccupied).
			Int("orphaned", len(report.Orphaned)).
			Int("double_booked", len(report.Duplicates)).
			Msg("Rooms reconciled")

		return nil
	case ActionBackup:
		res, err := m.backup.Run(ctx)
		if err != nil {
			return fmt.Errorf("error backing up tables: %w", err)
		}

		for _, file := range res.Files {
			log.Info().Str("table", file.Table).Str("url", file.URL).Int("bytes", file.Size).Msg("Table backed up")
		}

		return nil
	case ActionTail:
		m.events.Consume(ctx, m.cfg.Kafka.ConsumerGroup, m.cfg.Kafka.Topic, logEvent)

		return nil
	default:
		return fmt.Errorf("unknown action %q, use %s, %s, %s or %s", action, ActionInit, ActionReconcile, ActionBackup, ActionTail)
	}
}

type table[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, models []T) error
}

// ensureTable writes the header of a table that is absent or has no rows.
// Tables holding rows are left byte for byte as they are.
func ensureTable[T any](repo table[T]) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		rows, err := repo.Load(ctx)
		if err != nil || len(rows) > 0 {
			return err
		}

		return repo.Save(ctx, rows)
	}
}

// init creates every missing table with its header row.
func (m *Maintenance) init(ctx context.Context) error {
	unlock, err := m.store.Lock(ctx)
	if err != nil {
		return fmt.Errorf("error locking tables: %w", err)
	}
	defer unlock()

	for _, load := range m.tables {
		if err := load(ctx); err != nil {
			return fmt.Errorf("error initialising tables: %w", err)
		}
	}

	log.Info().Str("dir", m.cfg.Storage.Dir).Msg("Tables initialised successfully")

	return nil
}

func logEvent(message kafkaGo.Message) {
	key, event, err := kafka.DecodeKafkaMessage[dto.BookingEvent](message)
	if err != nil {
		log.Warn().Err(err).Str("topic", message.Topic).Int64("offset", message.Offset).Msg("Skipping undecodable booking event")

		return
	}

	entry := log.Info().Str("key", key).Str("type", event.Type).Str("at", event.OccurredAt)

	if event.Booking != nil {
		entry = entry.Str("booking_id", event.Booking.ID).Str("room_id", event.Booking.RoomID)
	}

	if event.Report != nil {
		entry = entry.Strs("freed", event.Report.Freed).Strs("reoccupied", event.Report.Reoccupied)
	}

	entry.Msg("Booking event")
}
