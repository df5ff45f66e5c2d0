package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Staff=MockStaffService

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/staff/model"
	"frontdesk/internal/domains/staff/model/dto"
	"frontdesk/internal/domains/staff/repository"
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
	cacheGetAllStaff = constant.CachePrefixStaff + "gets"

	staffIDFormat = "%s%03d"
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (dto.StaffResponse, error)
	Delete(ctx context.Context, id string) error
	SearchByRole(ctx context.Context, role string) ([]dto.StaffResponse, error)
}

type serviceImpl struct {
	repo   repository.Staff
	locker flatfile.Locker
	cfg    *config.Config
	cache  cache.Cache
	otel   otel.Otel
}

func New(repo repository.Staff, locker flatfile.Locker, cfg *config.Config, cache cache.Cache, otel otel.Otel) Staff {
	return &serviceImpl{
		repo:   repo,
		locker: locker,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// Create numbers staff from the row count, S001 for the first, skipping ids already taken.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to lock tables: %w", err)
	}
	defer unlock()

	staff, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load staff")

		return res, fmt.Errorf("failed to load staff: %w", err)
	}

	taken := make(map[string]struct{}, len(staff))
	for _, member := range staff {
		taken[member.ID] = struct{}{}
	}

	number := len(staff) + 1
	staffID := fmt.Sprintf(staffIDFormat, constant.IDPrefixStaff, number)

	for _, ok := taken[staffID]; ok; _, ok = taken[staffID] {
		number++
		staffID = fmt.Sprintf(staffIDFormat, constant.IDPrefixStaff, number)
	}

	member := req.ToModel(staffID)

	if err = s.repo.Save(ctx, append(staff, member)); err != nil {
		log.Error().Err(err).Str("staff_id", staffID).Msg("failed to add staff")

		return res, fmt.Errorf("failed to add staff: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixStaff)

	res.FromModel(member)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStaff, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for staff")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save staff to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (res dto.StaffResponse, err error) {
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
		log.Error().Err(err).Str("staff_id", id).Msg("failed to update staff")

		return res, fmt.Errorf("failed to update staff: %w", err)
	}

	if updated == 0 {
		return res, failure.NotFound(fmt.Sprintf("staff %s not found", id))
	}

	member, err := s.repo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixStaff)

	res.FromModel(member)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock tables: %w", err)
	}
	defer unlock()

	deleted, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Str("staff_id", id).Msg("failed to remove staff")

		return fmt.Errorf("failed to remove staff: %w", err)
	}

	if deleted == 0 {
		return failure.NotFound(fmt.Sprintf("staff %s not found", id))
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixStaff)

	return nil
}

func (s *serviceImpl) SearchByRole(ctx context.Context, role string) (res []dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchByRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	role = strings.TrimSpace(role)
	if role == constant.Empty {
		return nil, failure.InvalidInput("role is required")
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldRole, Value: role, Operator: gDto.FilterOperatorEqFold},
		},
	}

	staff, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search staff")

		return nil, fmt.Errorf("failed to search staff: %w", err)
	}

	res = make([]dto.StaffResponse, len(staff))
	for i, member := range staff {
		res[i].FromModel(member)
	}

	return res, nil
}
