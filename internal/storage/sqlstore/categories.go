package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/fintrack/internal/models"
)

const categoryColumns = "id, name, type, owner_user_id, created_at"

func scanCategory(row interface{ Scan(...any) error }) (*models.Category, error) {
	c := &models.Category{}
	var owner sql.NullString
	var typ string
	if err := row.Scan(&c.ID, &c.Name, &typ, &owner, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Type = models.TransactionType(typ)
	c.OwnerUserID = owner.String
	return c, nil
}

// CreateCategory persists a new category. An empty OwnerUserID stores a global category.
func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if category.CreatedAt == 0 {
		category.CreatedAt = time.Now().Unix()
	}

	_, err := s.exec(ctx,
		"INSERT INTO categories ("+categoryColumns+") VALUES (?, ?, ?, ?, ?)",
		category.ID, category.Name, string(category.Type), nullable(category.OwnerUserID), category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// GetCategory retrieves a category by ID regardless of its visibility.
func (q *queries) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	c, err := scanCategory(q.queryRow(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("category", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

// ListVisibleCategories retrieves global categories and those owned by userID.
func (s *Store) ListVisibleCategories(ctx context.Context, userID string) ([]*models.Category, error) {
	rows, err := s.query(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE owner_user_id IS NULL OR owner_user_id = ? ORDER BY name, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}
