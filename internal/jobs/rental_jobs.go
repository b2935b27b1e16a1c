package jobs

import (
	"context"
	"time"

	"library-of-things-backend/internal/logger"
)

// ScanOverdueRentals reports rentals that are still Out for Rent past
// their end date. It only logs: the Out for Rent -> Overdue transition
// belongs to the owner, so the scan surfaces candidates without
// advancing them itself.
func (jr *JobRunner) ScanOverdueRentals() {
	jr.runWithRecovery("ScanOverdueRentals", func() {
		ctx := context.Background()

		query := `
			SELECT r.id, r.item_id, r.borrower_id, r.end_date
			FROM rentals r
			WHERE r.status = 'Out for Rent'
			  AND r.end_date < $1
			ORDER BY r.end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to scan for overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id, itemID, borrowerID int32
				endDate                time.Time
			)
			if err := rows.Scan(&id, &itemID, &borrowerID, &endDate); err != nil {
				logger.Error("Failed to scan overdue rental row", "error", err)
				continue
			}
			count++
			logger.Warn("Rental past its end date",
				"rental_id", id,
				"item_id", itemID,
				"borrower_id", borrowerID,
				"end_date", endDate.Format("2006-01-02"))
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Overdue scan finished", "candidates", count)
	})
}
