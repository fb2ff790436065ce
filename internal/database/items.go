package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/domain"
	"shareit/internal/models"
)

func (db *DB) CreateItem(ctx context.Context, item *models.Item) error {
	query := `INSERT INTO items (name, description, available, owner_id, request_id)
              VALUES (?, ?, ?, ?, ?)`
	result, err := db.ExecContext(ctx, query,
		item.Name,
		item.Description,
		item.Available,
		item.OwnerID,
		item.RequestID,
	)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	item.ID = id
	return nil
}

func (db *DB) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id FROM items WHERE id = ?`
	return db.scanItemRow(db.QueryRowContext(ctx, query, id), id)
}

// GetItemByOwner возвращает вещь, только если она принадлежит ownerID.
// Чужая или отсутствующая вещь неразличимы для вызывающего.
func (db *DB) GetItemByOwner(ctx context.Context, itemID, ownerID int64) (*models.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id
              FROM items WHERE id = ? AND owner_id = ?`
	return db.scanItemRow(db.QueryRowContext(ctx, query, itemID, ownerID), itemID)
}

func (db *DB) scanItemRow(row *sql.Row, id int64) (*models.Item, error) {
	var item models.Item
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Available, &item.OwnerID, &item.RequestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: item with id %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

func (db *DB) UpdateItem(ctx context.Context, item *models.Item) error {
	query := `UPDATE items SET name = ?, description = ?, available = ? WHERE id = ?`
	result, err := db.ExecContext(ctx, query, item.Name, item.Description, item.Available, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: item with id %d", domain.ErrNotFound, item.ID)
	}
	return nil
}

func (db *DB) GetItemsByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*models.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id
              FROM items WHERE owner_id = ? ORDER BY id LIMIT ? OFFSET ?`
	return db.queryItems(ctx, query, ownerID, limit, offset)
}

func (db *DB) SearchItems(ctx context.Context, text string, limit, offset int) ([]*models.Item, error) {
	// Регистронезависимый поиск по имени и описанию, только доступные вещи
	query := `SELECT id, name, description, available, owner_id, request_id
              FROM items
              WHERE available = 1
                AND (upper(name) LIKE upper(?) OR upper(description) LIKE upper(?))
              ORDER BY id LIMIT ? OFFSET ?`
	pattern := "%" + text + "%"
	return db.queryItems(ctx, query, pattern, pattern, limit, offset)
}

func (db *DB) GetItemsByRequest(ctx context.Context, requestID int64) ([]*models.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id
              FROM items WHERE request_id = ? ORDER BY id`
	return db.queryItems(ctx, query, requestID)
}

func (db *DB) queryItems(ctx context.Context, query string, args ...any) ([]*models.Item, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item := &models.Item{}
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Available, &item.OwnerID, &item.RequestID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
