package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/sequence/model"
	"frontdesk/internal/domains/sequence/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Allocator hands out ids that are not in existing. Callers hold the store lock.
type Allocator interface {
	NextID(ctx context.Context, prefix string, existing []string) (string, error)
}

// New picks the allocator named by STORAGE_ID_STRATEGY.
func New(repo repository.Sequence, cfg *config.Config, otel otel.Otel) Allocator {
	if cfg.Storage.IDStrategy == constant.IDStrategyUUID {
		return &uuidAllocator{otel: otel}
	}

	return &sequenceAllocator{repo: repo, otel: otel}
}

type sequenceAllocator struct {
	repo repository.Sequence
	otel otel.Otel
}

// NextID formats the persisted counter for prefix as e.g. B0001 and skips numbers
// already taken, so tables written by hand or by older versions stay collision free.
func (s *sequenceAllocator) NextID(ctx context.Context, prefix string, existing []string) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NextID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sequences, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to load sequences")

		return constant.Empty, fmt.Errorf("failed to load sequences: %w", err)
	}

	position := slices.IndexFunc(sequences, func(seq model.Sequence) bool {
		return seq.Prefix == prefix
	})

	if position < 0 {
		sequences = append(sequences, model.Sequence{Prefix: prefix})
		position = len(sequences) - 1
	}

	next := max(shared.AtoiOrZero(sequences[position].Next), 1)

	id = formatID(prefix, next)
	for slices.Contains(existing, id) {
		next++
		id = formatID(prefix, next)
	}

	sequences[position].Next = strconv.Itoa(next + 1)

	if err = s.repo.Save(ctx, sequences); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to save sequences")

		return constant.Empty, fmt.Errorf("failed to save sequences: %w", err)
	}

	return id, nil
}

func formatID(prefix string, number int) string {
	return fmt.Sprintf("%s%04d", prefix, number)
}

type uuidAllocator struct {
	otel otel.Otel
}

func (u *uuidAllocator) NextID(ctx context.Context, prefix string, existing []string) (string, error) {
	_, scope := u.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NextID")
	defer scope.End()

	for {
		id := prefix + uuid.NewString()
		if !slices.Contains(existing, id) {
			return id, nil
		}
	}
}
