package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/wayfare/internal/db"
	"github.com/alexanderramin/wayfare/internal/domain"
)

// SQLiteItineraryRepo implements ItineraryRepo over SQLite. It works against
// db.DBTX, so the same code runs standalone or transaction-scoped.
type SQLiteItineraryRepo struct {
	db db.DBTX
}

func NewSQLiteItineraryRepo(dbtx db.DBTX) *SQLiteItineraryRepo {
	return &SQLiteItineraryRepo{db: dbtx}
}

const dateLayout = "2006-01-02"

func (r *SQLiteItineraryRepo) Save(ctx context.Context, it *domain.TravelItinerary) error {
	// Replace wholesale: the cascade clears days and items of any prior
	// version before the new rows go in.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM itineraries WHERE id = ?`, it.ID); err != nil {
		return fmt.Errorf("clearing prior itinerary: %w", err)
	}

	prefs, err := marshalJSON(it.Request.Preferences)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	warnings, err := marshalNullableJSON(it.Warnings)
	if err != nil {
		return fmt.Errorf("encoding warnings: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO itineraries
		(id, name, destination, destination_lat, destination_lon, start_date, end_date,
		 group_size, budget, currency, preferences, warnings, total_cost, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID,
		it.Name,
		it.Destination.Name,
		it.Destination.Coord.Lat,
		it.Destination.Coord.Lon,
		it.Request.StartDate.Format(dateLayout),
		it.Request.EndDate.Format(dateLayout),
		it.Request.GroupSize,
		it.Request.Budget,
		it.Request.Currency,
		prefs,
		warnings,
		it.TotalCost,
		it.CreatedAt.UTC().Format(time.RFC3339),
		it.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting itinerary: %w", err)
	}

	for di, day := range it.Days {
		_, err = r.db.ExecContext(ctx, `INSERT INTO itinerary_days
			(itinerary_id, day_index, date, cost, over_budget) VALUES (?, ?, ?, ?, ?)`,
			it.ID, di, day.Date.Format(dateLayout), day.Cost, boolToInt(day.OverBudget),
		)
		if err != nil {
			return fmt.Errorf("inserting day %d: %w", di, err)
		}
		for pi, item := range day.Items {
			_, err = r.db.ExecContext(ctx, `INSERT INTO itinerary_items
				(itinerary_id, day_index, position, candidate_id, name, category, start_min, end_min, cost)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				it.ID, di, pi, item.CandidateID, item.Name, string(item.Category),
				item.Window.StartMin, item.Window.EndMin, item.Cost,
			)
			if err != nil {
				return fmt.Errorf("inserting item %d of day %d: %w", pi, di, err)
			}
		}
	}
	return nil
}

func (r *SQLiteItineraryRepo) GetByID(ctx context.Context, id string) (*domain.TravelItinerary, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, destination, destination_lat, destination_lon,
		start_date, end_date, group_size, budget, currency, preferences, warnings, total_cost,
		created_at, updated_at FROM itineraries WHERE id = ?`, id)

	it, err := r.scanItinerary(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}

	if err := r.loadDays(ctx, it); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (r *SQLiteItineraryRepo) List(ctx context.Context) ([]ItinerarySummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT i.id, i.name, i.destination, i.start_date, i.end_date,
		(SELECT COUNT(*) FROM itinerary_days d WHERE d.itinerary_id = i.id), i.total_cost, i.updated_at
		FROM itineraries i ORDER BY i.updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing itineraries: %w", err)
	}
	defer rows.Close()

	var out []ItinerarySummary
	for rows.Next() {
		var s ItinerarySummary
		var start, end, updated string
		if err := rows.Scan(&s.ID, &s.Name, &s.Destination, &start, &end, &s.Days, &s.TotalCost, &updated); err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}
		s.StartDate = parseTime(start, dateLayout)
		s.EndDate = parseTime(end, dateLayout)
		s.UpdatedAt = parseTime(updated, time.RFC3339)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating summaries: %w", err)
	}
	return out, nil
}

func (r *SQLiteItineraryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM itineraries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting itinerary: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

func (r *SQLiteItineraryRepo) scanItinerary(row *sql.Row) (*domain.TravelItinerary, error) {
	var it domain.TravelItinerary
	var start, end, created, updated, prefs string
	var currency, warnings sql.NullString

	err := row.Scan(&it.ID, &it.Name, &it.Destination.Name,
		&it.Destination.Coord.Lat, &it.Destination.Coord.Lon,
		&start, &end, &it.Request.GroupSize, &it.Request.Budget,
		&currency, &prefs, &warnings, &it.TotalCost, &created, &updated)
	if err != nil {
		return nil, err
	}

	it.Request.Destination = it.Destination.Name
	if it.Destination.Coord.Lat != 0 || it.Destination.Coord.Lon != 0 {
		coord := it.Destination.Coord
		it.Request.Coord = &coord
	}
	it.Request.StartDate = parseTime(start, dateLayout)
	it.Request.EndDate = parseTime(end, dateLayout)
	it.Request.Currency = currency.String
	if err := unmarshalJSON(prefs, &it.Request.Preferences); err != nil {
		return nil, fmt.Errorf("decoding preferences: %w", err)
	}
	if warnings.Valid && warnings.String != "" {
		if err := unmarshalJSON(warnings.String, &it.Warnings); err != nil {
			return nil, fmt.Errorf("decoding warnings: %w", err)
		}
	}
	it.CreatedAt = parseTime(created, time.RFC3339)
	it.UpdatedAt = parseTime(updated, time.RFC3339)
	return &it, nil
}

func (r *SQLiteItineraryRepo) loadDays(ctx context.Context, it *domain.TravelItinerary) error {
	rows, err := r.db.QueryContext(ctx, `SELECT day_index, date, cost, over_budget
		FROM itinerary_days WHERE itinerary_id = ? ORDER BY day_index`, it.ID)
	if err != nil {
		return fmt.Errorf("loading days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var idx, over int
		var date string
		var day domain.ItineraryDay
		if err := rows.Scan(&idx, &date, &day.Cost, &over); err != nil {
			return fmt.Errorf("scanning day: %w", err)
		}
		day.Date = parseTime(date, dateLayout)
		day.OverBudget = intToBool(over)
		it.Days = append(it.Days, day)
	}
	return rows.Err()
}

func (r *SQLiteItineraryRepo) loadItems(ctx context.Context, it *domain.TravelItinerary) error {
	rows, err := r.db.QueryContext(ctx, `SELECT day_index, candidate_id, name, category, start_min, end_min, cost
		FROM itinerary_items WHERE itinerary_id = ? ORDER BY day_index, position`, it.ID)
	if err != nil {
		return fmt.Errorf("loading items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var idx int
		var category string
		var item domain.PlacedItem
		if err := rows.Scan(&idx, &item.CandidateID, &item.Name, &category,
			&item.Window.StartMin, &item.Window.EndMin, &item.Cost); err != nil {
			return fmt.Errorf("scanning item: %w", err)
		}
		item.Category = domain.ItemCategory(category)
		if idx < 0 || idx >= len(it.Days) {
			return fmt.Errorf("item references missing day %d", idx)
		}
		it.Days[idx].Items = append(it.Days[idx].Items, item)
	}
	return rows.Err()
}
