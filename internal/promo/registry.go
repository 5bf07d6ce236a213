package promo

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/metrics"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
)

// Registry maps uppercase promo codes to discount percentages. Reads never
// fail on a missing or corrupt table; Add and Remove report storage failures
// through their Outcome.
type Registry struct {
	repo    Repository
	logger  *zap.Logger
	metrics *metrics.Metrics
	locks   *store.KeyedMutex
}

// NewRegistry builds a registry over repo. Updates lock the promo table's
// document key in locks; nil gets a private set.
func NewRegistry(repo Repository, locks *store.KeyedMutex, logger *zap.Logger, m *metrics.Metrics) *Registry {
	if locks == nil {
		locks = store.NewKeyedMutex()
	}
	return &Registry{repo: repo, logger: logger, metrics: m, locks: locks}
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GetAll returns the whole table. Storage failures are logged and read as an
// empty table.
func (r *Registry) GetAll(ctx context.Context) map[string]Percentage {
	codes, err := r.repo.Load(ctx)
	if err != nil {
		r.logger.Error("load promo codes", zap.Error(err))
		return map[string]Percentage{}
	}
	return codes
}

func (r *Registry) Validate(ctx context.Context, code string) Validation {
	key := normalize(code)
	if key == "" {
		return Validation{Valid: false, Discount: 0, Message: msgNoCode}
	}

	pct, ok := r.GetAll(ctx)[key]
	r.metrics.PromoValidated(ok)
	if !ok {
		return Validation{Valid: false, Discount: 0, Message: msgInvalidCode}
	}
	return Validation{Valid: true, Discount: pct, Message: appliedMessage(pct)}
}

func (r *Registry) Add(ctx context.Context, code string, pct Percentage) Outcome {
	key := normalize(code)
	if key == "" {
		return Outcome{Success: false, Message: msgNoCode}
	}

	unlock := r.locks.Lock(store.PromosKey)
	defer unlock()

	codes, err := r.repo.Load(ctx)
	if err != nil {
		return r.failed("adding", err)
	}
	if codes == nil {
		codes = make(map[string]Percentage, 1)
	}
	codes[key] = pct
	if err := r.repo.Save(ctx, codes); err != nil {
		return r.failed("adding", err)
	}

	r.logger.Info("promo code added", zap.String("code", key), zap.Float64("discount", float64(pct)))
	return Outcome{Success: true, Message: msgAdded}
}

func (r *Registry) Remove(ctx context.Context, code string) Outcome {
	key := normalize(code)

	unlock := r.locks.Lock(store.PromosKey)
	defer unlock()

	codes, err := r.repo.Load(ctx)
	if err != nil {
		return r.failed("removing", err)
	}
	if _, ok := codes[key]; !ok {
		return Outcome{Success: false, Message: msgNotFound}
	}

	delete(codes, key)
	if err := r.repo.Save(ctx, codes); err != nil {
		return r.failed("removing", err)
	}

	r.logger.Info("promo code removed", zap.String("code", key))
	return Outcome{Success: true, Message: msgRemoved}
}

func (r *Registry) failed(op string, err error) Outcome {
	r.logger.Error("promo code update failed", zap.String("op", op), zap.Error(err))
	return Outcome{Success: false, Message: fmt.Sprintf("Error %s promo code: %v", op, err)}
}
