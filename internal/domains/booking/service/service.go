package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomRepo "frontdesk/internal/domains/room/repository"
	sequence "frontdesk/internal/domains/sequence/service"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"slices"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = constant.CachePrefixBooking + "get"
	cacheGetAllBooking = constant.CachePrefixBooking + "gets"
)

// Booking keeps room status and the booking table consistent. CreateBooking saves
// the booking row before flagging the room; CancelBooking frees the room before
// dropping the row. Reconcile repairs whatever an interruption between the two
// saves leaves behind.
type Booking interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CancelBooking(ctx context.Context, id string) (dto.CancelBookingResponse, error)
	ListAvailableRooms(ctx context.Context) ([]roomDto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Reconcile(ctx context.Context) (dto.ReconcileReport, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	allocator sequence.Allocator
	locker    flatfile.Locker
	cfg       *config.Config
	cache     cache.Cache
	kafka     kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	allocator sequence.Allocator,
	locker flatfile.Locker,
	cfg *config.Config,
	cache cache.Cache,
	kafka kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		allocator: allocator,
		locker:    locker,
		cfg:       cfg,
		cache:     cache,
		kafka:     kafka,
		otel:      otel,
	}
}

func (s *serviceImpl) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if err = req.ValidateStay(); err != nil {
		return res, err
	}

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to lock tables: %w", err)
	}
	defer unlock()

	rooms, err := s.roomRepo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load rooms")

		return res, fmt.Errorf("failed to load rooms: %w", err)
	}

	position := slices.IndexFunc(rooms, func(room roomModel.Room) bool {
		return room.ID == req.RoomID
	})
	if position < 0 {
		return res, failure.RoomNotFound(req.RoomID)
	}

	if !rooms[position].IsAvailable() {
		return res, failure.RoomNotAvailable(req.RoomID)
	}

	bookings, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	if slices.ContainsFunc(bookings, func(booking model.Booking) bool { return booking.RoomID == req.RoomID }) {
		log.Warn().Str("room_id", req.RoomID).Msg("room is flagged available but already has a booking")

		return res, failure.RoomNotAvailable(req.RoomID)
	}

	bookingID, err := s.allocator.NextID(ctx, constant.IDPrefixBooking, bookingIDs(bookings))
	if err != nil {
		log.Error().Err(err).Msg("failed to allocate booking id")

		return res, fmt.Errorf("failed to allocate booking id: %w", err)
	}

	booking := req.ToModel(bookingID)

	if err = s.repo.Save(ctx, append(slices.Clone(bookings), booking)); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to save booking")

		return res, fmt.Errorf("failed to save booking: %w", err)
	}

	updated := slices.Clone(rooms)
	updated[position].Status = constant.RoomStatusBooked

	if err = s.roomRepo.Save(ctx, updated); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Str("room_id", req.RoomID).Msg("failed to flag room as booked")

		if restoreErr := s.repo.Save(ctx, bookings); restoreErr != nil {
			log.Error().Err(restoreErr).Str("booking_id", bookingID).Msg("failed to withdraw booking, run reconcile")
		}

		return res, fmt.Errorf("failed to save room status: %w", err)
	}

	log.Info().Str("booking_id", bookingID).Str("room_id", req.RoomID).Msg("booking created")

	res.FromModel(booking)

	s.invalidate(ctx)
	s.publish(ctx, dto.BookingEvent{Type: constant.EventBookingCreated, Booking: &res}, req.RoomID)

	return res, nil
}

func (s *serviceImpl) CancelBooking(ctx context.Context, id string) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id = strings.TrimSpace(id)
	if id == constant.Empty {
		return res, failure.InvalidInput("booking id is required")
	}

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to lock tables: %w", err)
	}
	defer unlock()

	bookings, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	position := slices.IndexFunc(bookings, func(booking model.Booking) bool {
		return booking.ID == id
	})
	if position < 0 {
		return res, failure.BookingNotFound(id)
	}

	booking := bookings[position]
	remaining := slices.Delete(slices.Clone(bookings), position, position+1)

	rooms, err := s.roomRepo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load rooms")

		return res, fmt.Errorf("failed to load rooms: %w", err)
	}

	roomFreed := false
	roomPosition := slices.IndexFunc(rooms, func(room roomModel.Room) bool {
		return room.ID == booking.RoomID
	})

	stillHeld := slices.ContainsFunc(remaining, func(other model.Booking) bool { return other.RoomID == booking.RoomID })

	switch {
	case roomPosition < 0:
		log.Warn().Str("booking_id", id).Str("room_id", booking.RoomID).Msg("cancelling booking for a room that no longer exists")
	case stillHeld:
		log.Warn().Str("booking_id", id).Str("room_id", booking.RoomID).Msg("room stays booked by another booking")
	case !rooms[roomPosition].IsAvailable():
		updated := slices.Clone(rooms)
		updated[roomPosition].Status = constant.RoomStatusAvailable

		if err = s.roomRepo.Save(ctx, updated); err != nil {
			log.Error().Err(err).Str("room_id", booking.RoomID).Msg("failed to free room")

			return res, fmt.Errorf("failed to save room status: %w", err)
		}

		roomFreed = true
	}

	if err = s.repo.Save(ctx, remaining); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to remove booking")

		if roomFreed {
			if restoreErr := s.roomRepo.Save(ctx, rooms); restoreErr != nil {
				log.Error().Err(restoreErr).Str("room_id", booking.RoomID).Msg("failed to re-flag room, run reconcile")
			}
		}

		return res, fmt.Errorf("failed to remove booking: %w", err)
	}

	log.Info().Str("booking_id", id).Str("room_id", booking.RoomID).Msg("booking cancelled")

	res = dto.CancelBookingResponse{BookingID: booking.ID, RoomID: booking.RoomID}

	var cancelled dto.BookingResponse
	cancelled.FromModel(booking)

	s.invalidate(ctx)
	s.publish(ctx, dto.BookingEvent{Type: constant.EventBookingCancelled, Booking: &cancelled}, booking.RoomID)

	return res, nil
}

// ListAvailableRooms reads the room table directly; availability is never cached.
func (s *serviceImpl) ListAvailableRooms(ctx context.Context) (res []roomDto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: roomModel.FieldStatus, Value: constant.RoomStatusAvailable, Operator: gDto.FilterOperatorEqFold},
		},
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}

	res = make([]roomDto.RoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.BookingNotFound(id)
	}

	res.FromModel(booking)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

// Reconcile makes room status follow the booking table. Bookings pointing at a missing
// room and rooms held by more than one booking are reported, never rewritten.
func (s *serviceImpl) Reconcile(ctx context.Context) (res dto.ReconcileReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reconcile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to lock tables: %w", err)
	}
	defer unlock()

	rooms, err := s.roomRepo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load rooms")

		return res, fmt.Errorf("failed to load rooms: %w", err)
	}

	bookings, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings")

		return res, fmt.Errorf("failed to load bookings: %w", err)
	}

	holders := make(map[string][]string, len(bookings))
	for _, booking := range bookings {
		holders[booking.RoomID] = append(holders[booking.RoomID], booking.ID)
	}

	res = dto.ReconcileReport{
		Freed:      []string{},
		Reoccupied: []string{},
		Orphaned:   []dto.BookingResponse{},
		Duplicates: map[string][]string{},
	}

	known := make(map[string]bool, len(rooms))
	updated := slices.Clone(rooms)

	for i, room := range updated {
		known[room.ID] = true
		held := len(holders[room.ID]) > 0

		switch {
		case held && !room.IsBooked():
			updated[i].Status = constant.RoomStatusBooked
			res.Reoccupied = append(res.Reoccupied, room.ID)
		case !held && !room.IsAvailable():
			updated[i].Status = constant.RoomStatusAvailable
			res.Freed = append(res.Freed, room.ID)
		}

		if len(holders[room.ID]) > 1 {
			res.Duplicates[room.ID] = holders[room.ID]
		}
	}

	for _, booking := range bookings {
		if known[booking.RoomID] {
			continue
		}

		var orphan dto.BookingResponse
		orphan.FromModel(booking)
		res.Orphaned = append(res.Orphaned, orphan)
	}

	sort.Strings(res.Freed)
	sort.Strings(res.Reoccupied)

	for roomID, ids := range res.Duplicates {
		log.Warn().Str("room_id", roomID).Strs("booking_ids", ids).Msg("room is held by more than one booking")
	}

	for _, orphan := range res.Orphaned {
		log.Warn().Str("booking_id", orphan.ID).Str("room_id", orphan.RoomID).Msg("booking references a missing room")
	}

	if !res.Changed() {
		return res, nil
	}

	if err = s.roomRepo.Save(ctx, updated); err != nil {
		log.Error().Err(err).Msg("failed to save reconciled rooms")

		return res, fmt.Errorf("failed to save reconciled rooms: %w", err)
	}

	log.Info().Strs("freed", res.Freed).Strs("reoccupied", res.Reoccupied).Msg("room status reconciled")

	s.invalidate(ctx)
	s.publish(ctx, dto.BookingEvent{Type: constant.EventRoomsReconciled, Report: &res}, constant.EventRoomsReconciled)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixBooking)
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixRoom)
}

// publish reports a change that is already saved, so a broker failure is only logged.
func (s *serviceImpl) publish(ctx context.Context, event dto.BookingEvent, key string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()

	event.OccurredAt = timezone.Format(timezone.Now(), constant.DateFormat)

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic, kafka.Message{Key: key, Value: event}); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("event", event.Type).Msg("failed to publish booking event")
	}
}

func bookingIDs(bookings []model.Booking) []string {
	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	return ids
}
