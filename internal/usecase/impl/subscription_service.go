package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"famhealth/config"
	deliverycontext "famhealth/internal/delivery/context"
	"famhealth/internal/domain/entity"
	"famhealth/internal/domain/repository"
	"famhealth/internal/domain/service"
	"famhealth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const subscriptionCacheKeyPrefix = "subscription"

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	cache            service.SubscriptionStatusCache
	cacheTTL         time.Duration
	filters          [][]entity.SubscriptionStatus // Every status filter an enforcement point reads.
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Cache            service.SubscriptionStatusCache
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		cache:            params.Cache,
		cacheTTL:         params.Config.Subscription.CacheTTL,
		filters: [][]entity.SubscriptionStatus{
			entity.SubscriptionStatusesFromStrings(params.Config.Subscription.GateStatuses),
			entity.SubscriptionStatusesFromStrings(params.Config.Subscription.HookStatuses),
		},
		logger: params.Logger,
	}
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// IsSubscribed answers from the cache when possible and fills it on a miss
func (s *subscriptionService) IsSubscribed(ctx context.Context, accountID string, statuses []entity.SubscriptionStatus) (bool, error) {
	key := subscriptionCacheKey(accountID, statuses)

	subscribed, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		return subscribed, nil
	case !errors.Is(err, service.ErrCacheMiss):
		s.log(ctx).Warn("Subscription cache read failed, falling back to store",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)
	}

	return s.RefreshStatus(ctx, accountID, statuses)
}

// RefreshStatus reads the store and overwrites the cached flag of the requested filter
// and of every configured filter, so a refresh at sign-in is seen by the gate too.
func (s *subscriptionService) RefreshStatus(ctx context.Context, accountID string, statuses []entity.SubscriptionStatus) (bool, error) {
	filters := append([][]entity.SubscriptionStatus{statuses}, s.filters...)

	snapshots, err := s.subscriptionRepo.FindSnapshotsByAccount(ctx, accountID, unionStatuses(filters))
	if err != nil {
		return false, errors.Wrap(err, "failed to find subscription snapshots")
	}

	present := make(map[entity.SubscriptionStatus]bool, len(snapshots))
	for _, snapshot := range snapshots {
		present[snapshot.Status] = true
	}

	written := make(map[string]bool, len(filters))
	for _, filter := range filters {
		key := subscriptionCacheKey(accountID, filter)
		if written[key] {
			continue
		}
		written[key] = true

		if err := s.cache.Set(ctx, key, anyStatusPresent(present, filter), s.cacheTTL); err != nil {
			s.log(ctx).Warn("Subscription cache write failed",
				slog.String("account_id", accountID),
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}

	return anyStatusPresent(present, statuses), nil
}

func anyStatusPresent(present map[entity.SubscriptionStatus]bool, statuses []entity.SubscriptionStatus) bool {
	for _, status := range statuses {
		if present[status] {
			return true
		}
	}

	return false
}

// unionStatuses returns the sorted distinct statuses of all filters.
func unionStatuses(filters [][]entity.SubscriptionStatus) []entity.SubscriptionStatus {
	var union []entity.SubscriptionStatus
	for _, filter := range filters {
		for _, status := range filter {
			if !slices.Contains(union, status) {
				union = append(union, status)
			}
		}
	}
	slices.Sort(union)

	return union
}

// subscriptionCacheKey is independent of the order statuses were configured in.
func subscriptionCacheKey(accountID string, statuses []entity.SubscriptionStatus) string {
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, string(status))
	}
	slices.Sort(names)

	return subscriptionCacheKeyPrefix + ":" + accountID + ":" + strings.Join(names, ",")
}
