package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openfinedu/carfin/internal/application/dto"
	"github.com/openfinedu/carfin/internal/domain/event"
	"github.com/openfinedu/carfin/internal/domain/port"
	"github.com/openfinedu/carfin/internal/domain/service"
)

// CalculateQuoteUseCase validates a loan request and computes its repayment
// figures, consulting the quote cache first. The engine is deterministic, so
// cached results are always exact.
type CalculateQuoteUseCase struct {
	engine    *service.Engine
	cache     port.QuoteCache
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewCalculateQuoteUseCase wires dependencies.
func NewCalculateQuoteUseCase(
	engine *service.Engine,
	cache port.QuoteCache,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CalculateQuoteUseCase {
	return &CalculateQuoteUseCase{
		engine:    engine,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute computes a quote.
func (uc *CalculateQuoteUseCase) Execute(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error) {
	key := req.CacheKey()

	// 1. Cache lookup.
	if cached, ok := uc.cache.Get(ctx, key); ok {
		resp := dto.FromResult(cached)
		uc.publish(ctx, req, resp, true)
		return resp, nil
	}

	// 2. Validate and calculate.
	domainReq, err := req.ToDomain()
	if err != nil {
		return dto.QuoteResponse{}, err
	}
	result, err := uc.engine.Calculate(domainReq)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("calculate quote: %w", err)
	}

	// 3. Cache the result, best effort.
	if err := uc.cache.Set(ctx, key, result); err != nil {
		uc.logger.WarnContext(ctx, "failed to cache quote", "error", err)
	}

	resp := dto.FromResult(result)
	uc.publish(ctx, req, resp, false)
	return resp, nil
}

func (uc *CalculateQuoteUseCase) publish(ctx context.Context, req dto.QuoteRequest, resp dto.QuoteResponse, cacheHit bool) {
	evt := event.NewQuoteCalculated(
		req.CacheKey(), req.FinanceType,
		resp.AmountFinanced, resp.MonthlyPayment, req.TermMonths, cacheHit,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish quote event", "error", err)
	}
}
