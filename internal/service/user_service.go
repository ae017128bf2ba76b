package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/amirmtaati/paylash/internal/ledger"
	"github.com/amirmtaati/paylash/internal/models"
	"github.com/amirmtaati/paylash/pkg/api"
	"github.com/amirmtaati/paylash/pkg/api/apiconnect"
)

var _ apiconnect.UserServiceHandler = (*UserService)(nil)

// UserService implements the Connect UserService.
type UserService struct {
	ledger *ledger.Ledger
}

// NewUserService creates a new UserService backed by l.
func NewUserService(l *ledger.Ledger) *UserService {
	return &UserService{ledger: l}
}

// RegisterUser creates or refreshes the acting user's profile.
func (s *UserService) RegisterUser(ctx context.Context, req *connect.Request[api.RegisterUserRequest]) (*connect.Response[api.RegisterUserResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	user := &models.User{ID: userID, FirstName: req.Msg.FirstName, Username: req.Msg.Username}
	if err := s.ledger.RegisterUser(ctx, user); err != nil {
		return nil, toConnectError("RegisterUser", err)
	}

	// Re-read to pick up the active alias.
	stored, err := s.ledger.GetUser(ctx, userID)
	if err != nil {
		return nil, toConnectError("RegisterUser", err)
	}

	slog.Info("User registered", "user_id", userID)
	return connect.NewResponse(&api.RegisterUserResponse{User: toAPIUser(stored)}), nil
}

// GetUser resolves a user by id or alias.
func (s *UserService) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	if _, err := actingUser(ctx); err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	user, err := s.ledger.ResolveUser(ctx, req.Msg.Identifier)
	if err != nil {
		return nil, toConnectError("GetUser", err)
	}
	return connect.NewResponse(&api.GetUserResponse{User: toAPIUser(user)}), nil
}

// SetAlias claims an alias for the acting user.
func (s *UserService) SetAlias(ctx context.Context, req *connect.Request[api.SetAliasRequest]) (*connect.Response[api.SetAliasResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	alias, err := s.ledger.SetAlias(ctx, userID, req.Msg.Alias)
	if err != nil {
		return nil, toConnectError("SetAlias", err)
	}
	return connect.NewResponse(&api.SetAliasResponse{Alias: alias}), nil
}

// ReleaseAlias frees an alias the acting user holds.
func (s *UserService) ReleaseAlias(ctx context.Context, req *connect.Request[api.ReleaseAliasRequest]) (*connect.Response[api.ReleaseAliasResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.ledger.ReleaseAlias(ctx, userID, req.Msg.Alias); err != nil {
		return nil, toConnectError("ReleaseAlias", err)
	}
	return connect.NewResponse(&api.ReleaseAliasResponse{}), nil
}
