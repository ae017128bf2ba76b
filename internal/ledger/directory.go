package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/amirmtaati/paylash/internal/command"
	"github.com/amirmtaati/paylash/internal/models"
)

var aliasPattern = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

// NormalizeAlias trims s, lower-cases it and drops one leading '@'.
func NormalizeAlias(s string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "@")
}

// ValidateAlias normalizes alias and checks its format.
func ValidateAlias(alias string) (string, error) {
	normalized := NormalizeAlias(alias)
	if !aliasPattern.MatchString(normalized) {
		return "", fmt.Errorf("%w: got %q", models.ErrInvalidAlias, alias)
	}
	return normalized, nil
}

// RegisterUser creates the user or refreshes the names of an existing one.
func (l *Ledger) RegisterUser(ctx context.Context, user *models.User) error {
	if strings.TrimSpace(user.ID) == "" {
		return models.ErrEmptyUserID
	}
	if err := l.store.UpsertUser(ctx, user); err != nil {
		return err
	}
	slog.Debug("User registered", "user_id", user.ID)
	return nil
}

// GetUser returns a user by id.
func (l *Ledger) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return l.store.GetUser(ctx, userID)
}

// ResolveUser finds a user by id or by alias.
//
// Numeric identifiers are tried as ids first, anything else as an alias
// first. Either way the other interpretation is tried if the first misses.
func (l *Ledger) ResolveUser(ctx context.Context, identifier string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: empty identifier", models.ErrUserNotFound)
	}

	byID := func() (*models.User, error) { return l.store.GetUser(ctx, identifier) }
	byAlias := func() (*models.User, error) { return l.store.GetUserByAlias(ctx, NormalizeAlias(identifier)) }

	first, second := byAlias, byID
	if isNumeric(identifier) {
		first, second = byID, byAlias
	}

	user, err := first()
	if errors.Is(err, models.ErrUserNotFound) {
		user, err = second()
	}
	if errors.Is(err, models.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: %q", models.ErrUserNotFound, identifier)
	}
	return user, err
}

// SetAlias claims alias for userID and makes it the active one.
func (l *Ledger) SetAlias(ctx context.Context, userID, alias string) (string, error) {
	normalized, err := ValidateAlias(alias)
	if err != nil {
		return "", err
	}
	if err := l.store.SetAlias(ctx, userID, normalized); err != nil {
		return "", err
	}
	slog.Info("Alias set", "user_id", userID, "alias", normalized)
	return normalized, nil
}

// ReleaseAlias gives up an alias userID holds.
func (l *Ledger) ReleaseAlias(ctx context.Context, userID, alias string) error {
	if err := l.store.ReleaseAlias(ctx, userID, NormalizeAlias(alias)); err != nil {
		return err
	}
	slog.Info("Alias released", "user_id", userID, "alias", NormalizeAlias(alias))
	return nil
}

// DisplayNames maps each id to the user's display name, or to a placeholder
// for ids without a profile.
func (l *Ledger) DisplayNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	users, err := l.store.GetUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(userIDs))
	for _, id := range userIDs {
		if u, ok := users[id]; ok {
			names[id] = u.DisplayName()
		} else {
			names[id] = models.PlaceholderName(id)
		}
	}
	return names, nil
}

// CreateGroup creates a group with creatorID as its first member.
func (l *Ledger) CreateGroup(ctx context.Context, name, creatorID string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrEmptyGroupName
	}
	if _, err := l.store.GetUser(ctx, creatorID); err != nil {
		return nil, err
	}

	group := &models.Group{Name: name, CreatedBy: creatorID}
	if err := l.store.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	slog.Info("Group created", "group_id", group.ID, "name", group.Name, "created_by", creatorID)
	return group, nil
}

// GetGroup returns a group with its members.
func (l *Ledger) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return l.store.GetGroup(ctx, groupID)
}

// ListGroups returns the groups userID belongs to.
func (l *Ledger) ListGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	return l.store.ListGroupsForUser(ctx, userID)
}

// AddMember adds the user named by identifier (id or alias) to the group.
func (l *Ledger) AddMember(ctx context.Context, groupID, identifier string) (*models.User, error) {
	if _, err := l.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	user, err := l.ResolveUser(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if err := l.store.AddGroupMember(ctx, groupID, user.ID); err != nil {
		return nil, err
	}
	slog.Info("Group member added", "group_id", groupID, "user_id", user.ID)
	return user, nil
}

// AddExpenseFromText records an /addexpense payload as an equal split paid by
// actingUserID among all members of the named group.
//
// The group is matched by name, case-insensitively, among actingUserID's
// groups; the oldest match wins.
func (l *Ledger) AddExpenseFromText(ctx context.Context, actingUserID, text string) (*models.Expense, error) {
	parsed, err := command.ParseAddExpense(text)
	if err != nil {
		return nil, err
	}

	groups, err := l.store.ListGroupsForUser(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	var group *models.Group
	for _, g := range groups {
		if strings.EqualFold(g.Name, parsed.GroupName) {
			group = g
			break
		}
	}
	if group == nil {
		return nil, fmt.Errorf("%w: no group named %q", models.ErrGroupNotFound, parsed.GroupName)
	}

	return l.CreateExpenseWithSplit(ctx, CreateExpenseRequest{
		Description:    parsed.Description,
		Amount:         parsed.Amount,
		PayerID:        actingUserID,
		GroupID:        group.ID,
		ParticipantIDs: group.Members,
		SplitKind:      models.SplitEqual,
	})
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
