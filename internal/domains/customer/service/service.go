package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Customer=MockCustomerService

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/model/dto"
	"frontdesk/internal/domains/customer/repository"
	sequenceService "frontdesk/internal/domains/sequence/service"
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
	cacheGetCustomer    = constant.CachePrefixCustomer + "get"
	cacheGetAllCustomer = constant.CachePrefixCustomer + "gets"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CustomerResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomersResponse, error)
	Get(ctx context.Context, id string) (dto.CustomerResponse, error)
	Search(ctx context.Context, key string) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) (dto.CustomerResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Customer
	allocator sequenceService.Allocator
	locker    flatfile.Locker
	cfg       *config.Config
	cache     cache.Cache
	otel      otel.Otel
}

func New(repo repository.Customer, allocator sequenceService.Allocator, locker flatfile.Locker, cfg *config.Config, cache cache.Cache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:      repo,
		allocator: allocator,
		locker:    locker,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CustomerResponse, err error) {
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

	customers, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load customers")

		return res, fmt.Errorf("failed to load customers: %w", err)
	}

	ids := make([]string, len(customers))
	for i, customer := range customers {
		ids[i] = customer.ID
	}

	customerID, err := s.allocator.NextID(ctx, constant.IDPrefixCustomer, ids)
	if err != nil {
		return res, fmt.Errorf("failed to allocate customer id: %w", err)
	}

	customer := req.ToModel(customerID)

	if err = s.repo.Save(ctx, append(customers, customer)); err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("failed to add customer")

		return res, fmt.Errorf("failed to add customer: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixCustomer)

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCustomer, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for customers")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save customers to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetCustomer, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("customer %s not found", id))
	}

	res.FromModel(customer)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save customer to cache")
	}

	return res, nil
}

// Search matches key against every column, ignoring case.
func (s *serviceImpl) Search(ctx context.Context, key string) (res []dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key = strings.TrimSpace(key)
	if key == constant.Empty {
		return nil, failure.InvalidInput("search key is required")
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: constant.Asterix, Value: key, Operator: gDto.FilterOperatorEqFold},
		},
	}

	customers, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search customers")

		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	res = make([]dto.CustomerResponse, len(customers))
	for i, customer := range customers {
		res[i].FromModel(customer)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id string) (res dto.CustomerResponse, err error) {
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
		log.Error().Err(err).Str("customer_id", id).Msg("failed to update customer")

		return res, fmt.Errorf("failed to update customer: %w", err)
	}

	if updated == 0 {
		return res, failure.NotFound(fmt.Sprintf("customer %s not found", id))
	}

	customer, err := s.repo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixCustomer)

	res.FromModel(customer)

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
		log.Error().Err(err).Str("customer_id", id).Msg("failed to delete customer")

		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if deleted == 0 {
		return failure.NotFound(fmt.Sprintf("customer %s not found", id))
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixCustomer)

	return nil
}
