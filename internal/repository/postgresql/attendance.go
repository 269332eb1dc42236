package postgresql

import (
	"context"
	"fmt"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// SaveProcessed implements attendance.AttendanceRepository. One row per
// (employee, date); upserting row by row merges into existing month buckets
// instead of replacing them.
func (r *attendanceRepository) SaveProcessed(ctx context.Context, branchID string, processed attendance.ProcessedAttendance) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO attendance_days (branch_id, employee_id, month_year, date, record)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (employee_id, date)
			DO UPDATE SET month_year = EXCLUDED.month_year,
			              record     = EXCLUDED.record,
			              updated_at = NOW()
		`

		for monthYear, byEmployee := range processed {
			for employeeID, byDate := range byEmployee {
				for date, rec := range byDate {
					if _, err := q.Exec(txCtx, query, branchID, employeeID, monthYear, date, rec); err != nil {
						return fmt.Errorf("failed to upsert attendance for %s on %s: %w", employeeID, date, err)
					}
				}
			}
		}
		return nil
	})
}

// GetByEmployeeMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeMonth(ctx context.Context, employeeID, monthYear string) (map[string]attendance.DayAttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, record
		FROM attendance_days
		WHERE employee_id = $1 AND month_year = $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, monthYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	defer rows.Close()

	records := make(map[string]attendance.DayAttendanceRecord)
	for rows.Next() {
		var (
			date string
			rec  attendance.DayAttendanceRecord
		)
		if err := rows.Scan(&date, &rec); err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		records[date] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance days: %w", err)
	}
	return records, nil
}
