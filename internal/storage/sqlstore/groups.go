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

// CreateGroup persists a new group and its members in one transaction.
// Members keep the order given; duplicates are dropped.
func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}
	group.Members = dedupe(group.Members)

	return s.inTx(ctx, func(tx *sql.Tx) error {
		q := queries{db: tx, dialect: &s.dialect}

		_, err := q.exec(ctx,
			"INSERT INTO user_groups (id, name, description, creator_user_id, created_at) VALUES (?, ?, ?, ?, ?)",
			group.ID, group.Name, group.Description, group.CreatorUserID, group.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}

		for i, userID := range group.Members {
			_, err = q.exec(ctx,
				"INSERT INTO group_members (group_id, user_id, position) VALUES (?, ?, ?)",
				group.ID, userID, i,
			)
			if err != nil {
				return fmt.Errorf("failed to insert group member: %w", err)
			}
		}
		return nil
	})
}

// AddGroupMembers appends users to a group. Users already in the group are skipped.
func (s *Store) AddGroupMembers(ctx context.Context, groupID string, userIDs []string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		q := queries{db: tx, dialect: &s.dialect}

		var exists int
		err := q.queryRow(ctx, "SELECT 1 FROM user_groups WHERE id = ?", groupID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("group", groupID)
		}
		if err != nil {
			return fmt.Errorf("failed to check group existence: %w", err)
		}

		var next int
		if err := q.queryRow(ctx,
			"SELECT COALESCE(MAX(position) + 1, 0) FROM group_members WHERE group_id = ?", groupID,
		).Scan(&next); err != nil {
			return fmt.Errorf("failed to read member position: %w", err)
		}

		for _, userID := range dedupe(userIDs) {
			res, err := q.exec(ctx,
				"INSERT INTO group_members (group_id, user_id, position) VALUES (?, ?, ?) ON CONFLICT (group_id, user_id) DO NOTHING",
				groupID, userID, next,
			)
			if err != nil {
				return fmt.Errorf("failed to add group member: %w", err)
			}
			if n, _ := res.RowsAffected(); n > 0 {
				next++
			}
		}
		return nil
	})
}

// GetGroup retrieves a group by ID, including its members.
func (q *queries) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	group := &models.Group{}
	err := q.queryRow(ctx,
		"SELECT id, name, description, creator_user_id, created_at FROM user_groups WHERE id = ?", id,
	).Scan(&group.ID, &group.Name, &group.Description, &group.CreatorUserID, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("group", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := q.groupMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	group.Members = members
	return group, nil
}

func (q *queries) groupMembers(ctx context.Context, groupID string) ([]string, error) {
	rows, err := q.query(ctx,
		"SELECT user_id FROM group_members WHERE group_id = ? ORDER BY position, user_id", groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}
	return members, nil
}

// ListGroupsByMember retrieves all groups the user is a member of, newest first.
func (s *Store) ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error) {
	rows, err := s.query(ctx, `
		SELECT g.id, g.name, g.description, g.creator_user_id, g.created_at
		FROM user_groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.user_id = ?
		ORDER BY g.created_at DESC, g.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.Description, &group.CreatorUserID, &group.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	// Members are loaded after the outer rows are closed: SQLite runs on a
	// single connection.
	for _, group := range groups {
		members, err := s.groupMembers(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		group.Members = members
	}
	return groups, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
