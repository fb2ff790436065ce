package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shareit/internal/domain"
	"shareit/internal/models"
)

const bookingColumns = `b.id, b.start_date, b.end_date, b.status, b.item_id, i.name, b.booker_id, i.owner_id`

func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
              VALUES (?, ?, ?, ?, ?)`
	result, err := db.ExecContext(ctx, query,
		formatTime(booking.Start),
		formatTime(booking.End),
		booking.ItemID,
		booking.BookerID,
		booking.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	booking.ID = id
	return nil
}

func (db *DB) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings b JOIN items i ON i.id = b.item_id
              WHERE b.id = ?`
	booking, err := db.scanBookingRow(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: booking with id %d", domain.ErrNotFound, id)
	}
	return booking, err
}

func (db *DB) UpdateBookingStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE bookings SET status = ? WHERE id = ?`
	result, err := db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: booking with id %d", domain.ErrNotFound, id)
	}
	return nil
}

// GetBookerBookings возвращает бронирования пользователя-заказчика под окном
// фильтра, свежие по дате начала первыми.
func (db *DB) GetBookerBookings(ctx context.Context, bookerID int64, filter models.BookingFilter) ([]*models.Booking, error) {
	return db.queryBookingsFiltered(ctx, `b.booker_id = ?`, bookerID, filter)
}

// GetOwnerBookings возвращает бронирования по всем вещам владельца.
func (db *DB) GetOwnerBookings(ctx context.Context, ownerID int64, filter models.BookingFilter) ([]*models.Booking, error) {
	return db.queryBookingsFiltered(ctx, `i.owner_id = ?`, ownerID, filter)
}

func (db *DB) queryBookingsFiltered(ctx context.Context, who string, id int64, filter models.BookingFilter) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings b JOIN items i ON i.id = b.item_id
              WHERE ` + who
	args := []any{id}

	if filter.Status != "" {
		query += ` AND b.status = ?`
		args = append(args, filter.Status)
	}
	if filter.StartBefore != nil {
		query += ` AND b.start_date < ?`
		args = append(args, formatTime(*filter.StartBefore))
	}
	if filter.StartAfter != nil {
		query += ` AND b.start_date > ?`
		args = append(args, formatTime(*filter.StartAfter))
	}
	if filter.EndBefore != nil {
		query += ` AND b.end_date < ?`
		args = append(args, formatTime(*filter.EndBefore))
	}
	if filter.EndAfter != nil {
		query += ` AND b.end_date > ?`
		args = append(args, formatTime(*filter.EndAfter))
	}

	query += ` ORDER BY b.start_date DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	return db.queryBookings(ctx, query, args...)
}

// GetLastBooking возвращает последнее завершившееся бронирование вещи.
// Область видимости ограничена владельцем, статус намеренно не фильтруется.
func (db *DB) GetLastBooking(ctx context.Context, itemID, ownerID int64, now time.Time) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings b JOIN items i ON i.id = b.item_id
              WHERE b.item_id = ? AND i.owner_id = ? AND b.end_date < ?
              ORDER BY b.end_date DESC LIMIT 1`
	booking, err := db.scanBookingRow(db.QueryRowContext(ctx, query, itemID, ownerID, formatTime(now)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: last booking for item %d", domain.ErrNotFound, itemID)
	}
	return booking, err
}

// GetNextBooking возвращает ближайшее будущее бронирование вещи.
func (db *DB) GetNextBooking(ctx context.Context, itemID, ownerID int64, now time.Time) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings b JOIN items i ON i.id = b.item_id
              WHERE b.item_id = ? AND i.owner_id = ? AND b.start_date > ?
              ORDER BY b.start_date LIMIT 1`
	booking, err := db.scanBookingRow(db.QueryRowContext(ctx, query, itemID, ownerID, formatTime(now)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: next booking for item %d", domain.ErrNotFound, itemID)
	}
	return booking, err
}

// FindPastBookingByBooker ищет любое завершившееся бронирование пользователя,
// без привязки к конкретной вещи. Этим окном гейтится создание комментария.
func (db *DB) FindPastBookingByBooker(ctx context.Context, bookerID int64, now time.Time) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings b JOIN items i ON i.id = b.item_id
              WHERE b.booker_id = ? AND b.end_date < ?
              ORDER BY b.end_date DESC LIMIT 1`
	booking, err := db.scanBookingRow(db.QueryRowContext(ctx, query, bookerID, formatTime(now)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: past booking for booker %d", domain.ErrNotFound, bookerID)
	}
	return booking, err
}

func (db *DB) GetAllBookings(ctx context.Context) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings b JOIN items i ON i.id = b.item_id
              ORDER BY b.start_date DESC`
	return db.queryBookings(ctx, query)
}

func (db *DB) scanBookingRow(row *sql.Row) (*models.Booking, error) {
	b := &models.Booking{}
	var start, end string
	err := row.Scan(&b.ID, &start, &end, &b.Status, &b.ItemID, &b.ItemName, &b.BookerID, &b.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if b.Start, err = parseTime(start); err != nil {
		return nil, err
	}
	if b.End, err = parseTime(end); err != nil {
		return nil, err
	}
	return b, nil
}

func (db *DB) queryBookings(ctx context.Context, query string, args ...any) ([]*models.Booking, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b := &models.Booking{}
		var start, end string
		err := rows.Scan(&b.ID, &start, &end, &b.Status, &b.ItemID, &b.ItemName, &b.BookerID, &b.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		if b.Start, err = parseTime(start); err != nil {
			return nil, err
		}
		if b.End, err = parseTime(end); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
