package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
	"carrental-backend/internal/utils"
)

// CompleteElapsedRentals moves ACTIVE rentals whose end date has passed to
// COMPLETED. The status guard keeps it from touching rentals a concurrent
// cancel already terminated.
func (jr *JobRunner) CompleteElapsedRentals() {
	jr.runWithRecovery("CompleteElapsedRentals", func() {
		ctx := context.Background()

		query := `
			UPDATE rentals
			SET status = 'COMPLETED',
			    updated_on = NOW()
			WHERE status = 'ACTIVE'
			  AND end_date < $1
			RETURNING id, owner_id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to complete elapsed rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, ownerID int32
			var endDate time.Time
			if err := rows.Scan(&id, &ownerID, &endDate); err != nil {
				logger.Error("Failed to scan completed rental", "error", err)
				continue
			}
			logger.Debug("Completed rental",
				"rental_id", id,
				"owner_id", ownerID,
				"end_date", utils.FormatDate(endDate))
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating completed rentals", "error", err)
			return
		}

		logger.Info("Marked elapsed rentals as completed", "count", count)
	})
}

// SendPickupReminders emails every owner whose ACTIVE rental starts tomorrow.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

		query := `
			SELECT r.id, r.car_id, r.start_date, u.email, u.first_name
			FROM rentals r
			JOIN users u ON u.id = r.owner_id
			WHERE r.status = 'ACTIVE'
			  AND r.start_date = $1
		`

		rows, err := jr.db.QueryContext(ctx, query, tomorrow)
		if err != nil {
			logger.Error("Failed to query upcoming rentals", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var rentalID, carID int32
			var startDate time.Time
			var email, firstName string
			if err := rows.Scan(&rentalID, &carID, &startDate, &email, &firstName); err != nil {
				logger.Error("Failed to scan upcoming rental", "error", err)
				continue
			}

			carName := "your car"
			if car, err := jr.cat.GetCar(ctx, carID); err == nil {
				carName = car.Make + " " + car.Model
			}

			if err := jr.emailSvc.SendPickupReminder(ctx, email, firstName, carName, utils.FormatDate(startDate)); err != nil {
				logger.Error("Failed to send pickup reminder", "rental_id", rentalID, "error", err)
				continue
			}
			sent++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating upcoming rentals", "error", err)
			return
		}

		logger.Info("Sent pickup reminders", "count", sent)
	})
}
