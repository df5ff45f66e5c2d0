package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Bill=MockBillService

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/bill/model"
	"frontdesk/internal/domains/bill/model/dto"
	"frontdesk/internal/domains/bill/repository"
	customerRepo "frontdesk/internal/domains/customer/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	sequenceService "frontdesk/internal/domains/sequence/service"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const cacheGetAllBill = constant.CachePrefixBill + "gets"

type Bill interface {
	Generate(ctx context.Context, req dto.GenerateBillRequest) (dto.BillResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBillsResponse, error)
}

type serviceImpl struct {
	repo         repository.Bill
	customerRepo customerRepo.Customer
	roomRepo     roomRepo.Room
	allocator    sequenceService.Allocator
	locker       flatfile.Locker
	cfg          *config.Config
	cache        cache.Cache
	otel         otel.Otel
}

func New(
	repo repository.Bill,
	customerRepo customerRepo.Customer,
	roomRepo roomRepo.Room,
	allocator sequenceService.Allocator,
	locker flatfile.Locker,
	cfg *config.Config,
	cache cache.Cache,
	otel otel.Otel,
) Bill {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		roomRepo:     roomRepo,
		allocator:    allocator,
		locker:       locker,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Generate bills the first customer with any column equal to key, ignoring case.
// Days of stay that are not a whole number bill as zero.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateBillRequest) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
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

	key := strings.TrimSpace(req.Key)

	customer, err := s.customerRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: constant.Asterix, Value: key, Operator: gDto.FilterOperatorEqFold},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to find customer")

		return res, fmt.Errorf("failed to find customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("customer %s not found", key))
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(customer.RoomID, roomModel.FieldID))
	if err != nil {
		log.Error().Err(err).Msg("failed to find room")

		return res, fmt.Errorf("failed to find room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("room not found for customer %s", customer.ID))
	}

	price, err := decimal.NewFromString(strings.TrimSpace(room.Price))
	if err != nil {
		return res, failure.InvalidInput(fmt.Sprintf("room %s has an unreadable price %q", room.ID, room.Price))
	}

	days := shared.AtoiOrZero(customer.DaysOfStay)

	bills, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bills")

		return res, fmt.Errorf("failed to load bills: %w", err)
	}

	ids := make([]string, len(bills))
	for i, bill := range bills {
		ids[i] = bill.ID
	}

	billID, err := s.allocator.NextID(ctx, constant.IDPrefixBill, ids)
	if err != nil {
		return res, fmt.Errorf("failed to allocate bill id: %w", err)
	}

	bill := model.Bill{
		ID:          billID,
		CustomerID:  customer.ID,
		Name:        customer.Name,
		RoomID:      room.ID,
		DaysOfStay:  strconv.Itoa(days),
		PricePerDay: price.StringFixed(2),
		TotalAmount: price.Mul(decimal.NewFromInt(int64(days))).StringFixed(2),
		BillDate:    timezone.Today(),
	}

	if err = s.repo.Save(ctx, append(bills, bill)); err != nil {
		log.Error().Err(err).Str("bill_id", billID).Msg("failed to save bill")

		return res, fmt.Errorf("failed to save bill: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixBill)

	res.FromModel(bill)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBillsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBill, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count bills: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bills")

		return res, fmt.Errorf("failed to get bills: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save bills to cache")
	}

	return res, nil
}
