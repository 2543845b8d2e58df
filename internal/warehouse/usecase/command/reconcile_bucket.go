package command

import (
	"context"
	"fmt"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
	"github.com/gamebay/retail-ops/pkg/logger"
)

// ReconcileBucketCommand asks for one bucket's live unit records to be
// aligned with a target count.
type ReconcileBucketCommand struct {
	Key         domain.BucketKey
	TargetCount int
	UnitPrice   float64
}

// ReconcileResult reports what a reconciliation pass did.
type ReconcileResult struct {
	Key     domain.BucketKey `json:"bucket"`
	Created int              `json:"created"`
	Deleted int              `json:"deleted"`
	Count   int              `json:"count"`
}

// ReconcileBucketHandler creates or deletes unit records until a bucket's
// live count matches the target.
//
// The pass is not atomic: each insert and delete is an independent write, and
// a failure partway leaves the bucket between its old and target counts. The
// recovery contract is to call the handler again with the same target; a
// repeated pass only ever works on the remaining delta, so reconciliation is
// idempotent repair rather than rollback.
//
// When the bucket is over target, victims are deleted in query order with no
// regard to identity completeness: a unit that already carries a serial
// number can be removed before an anonymous one.
type ReconcileBucketHandler struct {
	units domain.UnitRepository
	locks *bucketLocks
}

// NewReconcileBucketHandler creates a new reconcile bucket handler
func NewReconcileBucketHandler(units domain.UnitRepository) *ReconcileBucketHandler {
	return &ReconcileBucketHandler{
		units: units,
		locks: newBucketLocks(),
	}
}

// Handle executes one reconciliation pass for the bucket.
func (h *ReconcileBucketHandler) Handle(ctx context.Context, cmd ReconcileBucketCommand) (*ReconcileResult, error) {
	if !cmd.Key.Valid() {
		return nil, fmt.Errorf("%w: invalid bucket key (%s)", domain.ErrValidation, cmd.Key)
	}
	if cmd.TargetCount < 0 {
		return nil, fmt.Errorf("%w: target count %d is negative (%s)", domain.ErrValidation, cmd.TargetCount, cmd.Key)
	}

	release := h.locks.acquire(cmd.Key)
	defer release()

	live, err := findByBucket(ctx, h.units, cmd.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to load bucket (%s): %w", cmd.Key, err)
	}

	result := &ReconcileResult{Key: cmd.Key, Count: len(live)}

	switch {
	case cmd.TargetCount > len(live):
		for i := len(live); i < cmd.TargetCount; i++ {
			unit := &domain.WarehouseUnit{
				ProductID:   cmd.Key.ProductID,
				WarehouseID: cmd.Key.WarehouseID,
				Condition:   cmd.Key.Condition,
				Location:    cmd.Key.Location,
				Price:       cmd.UnitPrice,
			}
			if err := createUnit(ctx, h.units, unit); err != nil {
				return nil, fmt.Errorf("reconcile stopped after creating %d of %d units (%s): %w",
					result.Created, cmd.TargetCount-len(live), cmd.Key, err)
			}
			result.Created++
			result.Count++
		}

	case cmd.TargetCount < len(live):
		for _, victim := range live[:len(live)-cmd.TargetCount] {
			if err := deleteUnit(ctx, h.units, victim.ID); err != nil {
				return nil, fmt.Errorf("reconcile stopped after deleting %d of %d units (%s): %w",
					result.Deleted, len(live)-cmd.TargetCount, cmd.Key, err)
			}
			result.Deleted++
			result.Count--
		}
	}

	if result.Created > 0 || result.Deleted > 0 {
		logger.Debug(ctx).
			Uint("product_id", cmd.Key.ProductID).
			Str("condition", string(cmd.Key.Condition)).
			Str("location", string(cmd.Key.Location)).
			Int("created", result.Created).
			Int("deleted", result.Deleted).
			Int("count", result.Count).
			Msg("Bucket reconciled")
	}

	return result, nil
}
