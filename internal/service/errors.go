// Package service implements the paylash.v1 Connect services on top of the ledger.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/amirmtaati/paylash/internal/command"
	"github.com/amirmtaati/paylash/internal/middleware"
	"github.com/amirmtaati/paylash/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var errAuthRequired = errors.New("authentication required")

var invalidArgument = []error{
	models.ErrInvalidAmount,
	models.ErrNoParticipants,
	models.ErrUnsupportedSplitKind,
	models.ErrMissingCustomShare,
	models.ErrShareMismatch,
	models.ErrDuplicateParticipant,
	models.ErrInvalidSettlement,
	models.ErrInvalidAlias,
	models.ErrEmptyUserID,
	models.ErrEmptyGroupName,
	command.ErrInvalidPayload,
}

var notFound = []error{
	models.ErrExpenseNotFound,
	models.ErrUserNotFound,
	models.ErrGroupNotFound,
}

var alreadyExists = []error{
	models.ErrAlreadyMember,
	models.ErrAliasTaken,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// toConnectError maps domain sentinels to Connect codes. Anything unknown
// is an internal error and is logged with the operation name.
func toConnectError(op string, err error) error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return connectErr
	case isAny(err, invalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case isAny(err, alreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case isAny(err, notFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrNotMember), errors.Is(err, models.ErrAliasNotHeld):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		slog.Error(op+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, fmt.Errorf("%s failed", op))
	}
}

// validateRequest runs the struct tags of msg.
func validateRequest(msg any) error {
	if err := validate.Struct(msg); err != nil {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return nil
}

// actingUser returns the user the request acts for.
func actingUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errAuthRequired)
	}
	return userID, nil
}
