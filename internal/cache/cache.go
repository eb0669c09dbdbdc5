// Package cache memoises projection results so a rendered view can be
// re-rendered for another view or display mode without recomputation.
package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/rpgo/savings-projector/internal/domain"
)

// ResultCache stores projection results by key. A miss is reported as (nil, false).
type ResultCache interface {
	Get(ctx context.Context, key string) (*domain.ProjectionResult, bool)
	Set(ctx context.Context, key string, result *domain.ProjectionResult) error
}

// Key derives a stable cache key from inputs. Numerically equal decimals
// ("1000" and "1000.00") produce the same key.
func Key(in domain.ProjectionInputs) string {
	canonical := fmt.Sprintf("%s|%s|%s|%d|%s|%s",
		in.Principal.String(),
		in.MonthlyContribution.String(),
		in.AnnualRate.String(),
		in.Years,
		in.Compounding.String(),
		in.RateRange.String(),
	)
	return strconv.FormatUint(xxhash.Sum64String(canonical), 16)
}
