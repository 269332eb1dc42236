package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) attendance.HolidayRepository {
	return &holidayRepository{db: db}
}

// GetBetween implements attendance.HolidayRepository.
func (r *holidayRepository) GetBetween(ctx context.Context, branchID string, start, end time.Time) ([]attendance.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(date, 'YYYY-MM-DD'), name, type
		FROM holidays
		WHERE branch_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, branchID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []attendance.Holiday
	for rows.Next() {
		var h attendance.Holiday
		if err := rows.Scan(&h.Date, &h.Name, &h.Type); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}
	return holidays, nil
}
