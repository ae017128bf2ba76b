package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/amirmtaati/paylash/internal/models"
)

const userColumns = `u.id, COALESCE(u.first_name, ''), COALESCE(u.username, ''), COALESCE(a.alias, ''), u.created_at`

const userFrom = `FROM users u LEFT JOIN user_aliases a ON a.user_id = u.id AND a.active = 1`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	if err := row.Scan(&user.ID, &user.FirstName, &user.Username, &user.Alias, &user.CreatedAt); err != nil {
		return nil, err
	}
	return user, nil
}

// UpsertUser inserts the user or refreshes its names if it already exists.
func (s *SQLiteStore) UpsertUser(ctx context.Context, user *models.User) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, first_name, username, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			first_name = excluded.first_name,
			username = excluded.username`,
		user.ID, nullable(user.FirstName), nullable(user.Username), user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	// Report the stored registration time, not the one we proposed.
	if err := s.db.QueryRowContext(ctx, "SELECT created_at FROM users WHERE id = ?", user.ID).Scan(&user.CreatedAt); err != nil {
		return fmt.Errorf("failed to read back user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" "+userFrom+" WHERE u.id = ?", userID)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByAlias retrieves the user whose active alias matches.
func (s *SQLiteStore) GetUserByAlias(ctx context.Context, alias string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT u.id, COALESCE(u.first_name, ''), COALESCE(u.username, ''), a.alias, u.created_at
		FROM user_aliases a JOIN users u ON u.id = a.user_id
		WHERE a.alias = ? AND a.active = 1`, alias)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: alias %q", models.ErrUserNotFound, alias)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by alias: %w", err)
	}
	return user, nil
}

// GetUsersByIDs retrieves multiple users by their IDs.
// Returns a map of user ID to User object.
// Users that don't exist are omitted from the result.
func (s *SQLiteStore) GetUsersByIDs(ctx context.Context, userIDs []string) (map[string]*models.User, error) {
	users := make(map[string]*models.User, len(userIDs))
	if len(userIDs) == 0 {
		return users, nil
	}

	args := make([]any, len(userIDs))
	for i, id := range userIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+userColumns+" "+userFrom+" WHERE u.id IN ("+placeholders(len(userIDs))+")",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users[user.ID] = user
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// SetAlias claims alias for userID and makes it the user's active alias.
func (s *SQLiteStore) SetAlias(ctx context.Context, userID, alias string) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id = ?", userID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", models.ErrUserNotFound, userID)
	}
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	var holder string
	err = tx.QueryRowContext(ctx, "SELECT user_id FROM user_aliases WHERE alias = ?", alias).Scan(&holder)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("failed to look up alias: %w", err)
	case holder != userID:
		return fmt.Errorf("%w: %q", models.ErrAliasTaken, alias)
	}

	if _, err := tx.ExecContext(ctx, "UPDATE user_aliases SET active = 0 WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to deactivate aliases: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_aliases (alias, user_id, active, claimed_at) VALUES (?, ?, 1, ?)
		ON CONFLICT (alias) DO UPDATE SET active = 1`,
		alias, userID, time.Now().Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			err = errors.Join(models.ErrAliasTaken, err)
		}
		return fmt.Errorf("failed to claim alias: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ReleaseAlias frees an alias held by userID so anyone can claim it.
func (s *SQLiteStore) ReleaseAlias(ctx context.Context, userID, alias string) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM user_aliases WHERE alias = ? AND user_id = ?", alias, userID)
	if err != nil {
		return fmt.Errorf("failed to release alias: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to release alias: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", models.ErrAliasNotHeld, alias)
	}
	return nil
}
