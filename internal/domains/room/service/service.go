package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = constant.CachePrefixRoom + "get"
	cacheGetAllRoom = constant.CachePrefixRoom + "gets"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
	SearchAvailableByType(ctx context.Context, roomType string) ([]dto.RoomResponse, error)
}

type serviceImpl struct {
	repo        repository.Room
	bookingRepo bookingRepo.Booking
	locker      flatfile.Locker
	cfg         *config.Config
	cache       cache.Cache
	otel        otel.Otel
}

func New(repo repository.Room, bookingRepo bookingRepo.Booking, locker flatfile.Locker, cfg *config.Config, cache cache.Cache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		locker:      locker,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	room := req.ToModel()

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to lock tables: %w", err)
	}
	defer unlock()

	rooms, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load rooms")

		return res, fmt.Errorf("failed to load rooms: %w", err)
	}

	for _, existing := range rooms {
		if existing.ID == room.ID {
			return res, failure.Conflict(fmt.Sprintf("room %s already exists", room.ID))
		}
	}

	if err = s.repo.Save(ctx, append(rooms, room)); err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to add room")

		return res, fmt.Errorf("failed to add room: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixRoom)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save rooms to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.RoomNotFound(id)
	}

	res.FromModel(room)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save room to cache")
	}

	return res, nil
}

// Update edits type and price. Blank fields keep their stored value.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to lock tables: %w", err)
	}
	defer unlock()

	filter := shared.FilterByID(id, model.FieldID)

	updated, err := s.repo.Update(ctx, req.ToFields(), filter)
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	if updated == 0 {
		return res, failure.RoomNotFound(id)
	}

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get room: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixRoom)

	res.FromModel(room)

	return res, nil
}

// Delete refuses to remove a room that a booking still references.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock tables: %w", err)
	}
	defer unlock()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.RoomNotFound(id)
	}

	referenced, err := s.bookingRepo.Exist(ctx, shared.FilterByID(id, bookingModel.FieldRoomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room bookings")

		return fmt.Errorf("failed to check room bookings: %w", err)
	}

	if referenced {
		return failure.Conflict(fmt.Sprintf("room %s has an active booking", id))
	}

	if _, err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixRoom)

	return nil
}

// SearchAvailableByType matches the type case-insensitively.
func (s *serviceImpl) SearchAvailableByType(ctx context.Context, roomType string) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchAvailableByType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType = strings.TrimSpace(roomType)
	if roomType == constant.Empty {
		return nil, failure.InvalidInput("room type is required")
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldType, Value: roomType, Operator: gDto.FilterOperatorEqFold},
			gDto.Filter{Field: model.FieldStatus, Value: constant.RoomStatusAvailable, Operator: gDto.FilterOperatorEqFold},
		},
	}

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search rooms")

		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}

	res = make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	return res, nil
}
