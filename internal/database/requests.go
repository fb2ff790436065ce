package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/domain"
	"shareit/internal/models"
)

func (db *DB) CreateRequest(ctx context.Context, request *models.ItemRequest) error {
	query := `INSERT INTO requests (description, requester_id, created) VALUES (?, ?, ?)`
	result, err := db.ExecContext(ctx, query,
		request.Description,
		request.RequesterID,
		formatTime(request.Created),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	request.ID = id
	return nil
}

func (db *DB) GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error) {
	var r models.ItemRequest
	var created string
	query := `SELECT id, description, requester_id, created FROM requests WHERE id = ?`
	err := db.QueryRowContext(ctx, query, id).Scan(&r.ID, &r.Description, &r.RequesterID, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: request with id %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	if r.Created, err = parseTime(created); err != nil {
		return nil, err
	}
	return &r, nil
}

func (db *DB) GetRequestsByRequester(ctx context.Context, requesterID int64) ([]*models.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created
              FROM requests WHERE requester_id = ? ORDER BY created`
	return db.queryRequests(ctx, query, requesterID)
}

// GetOtherRequests возвращает чужие запросы, свежие первыми.
func (db *DB) GetOtherRequests(ctx context.Context, userID int64, limit, offset int) ([]*models.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created
              FROM requests WHERE requester_id != ?
              ORDER BY created DESC LIMIT ? OFFSET ?`
	return db.queryRequests(ctx, query, userID, limit, offset)
}

func (db *DB) queryRequests(ctx context.Context, query string, args ...any) ([]*models.ItemRequest, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.ItemRequest
	for rows.Next() {
		r := &models.ItemRequest{}
		var created string
		if err := rows.Scan(&r.ID, &r.Description, &r.RequesterID, &created); err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		if r.Created, err = parseTime(created); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}
