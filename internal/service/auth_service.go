package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/amirmtaati/paylash/internal/auth"
	"github.com/amirmtaati/paylash/pkg/api"
	"github.com/amirmtaati/paylash/pkg/api/apiconnect"
)

var _ apiconnect.AuthServiceHandler = (*AuthService)(nil)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// IssueToken authenticates the front end and returns a token that acts as
// the requested chat user.
func (s *AuthService) IssueToken(ctx context.Context, req *connect.Request[api.IssueTokenRequest]) (*connect.Response[api.IssueTokenResponse], error) {
	s.logger.Info("IssueToken request", "user_id", req.Msg.UserID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.authenticator.Authenticate(ctx, req.Msg.Secret); err != nil {
		s.logger.Warn("Front end authentication failed", "user_id", req.Msg.UserID, "peer", req.Peer().Addr)
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	token, expiresAt, err := s.jwtManager.Generate(req.Msg.UserID)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", req.Msg.UserID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Token issued", "user_id", req.Msg.UserID, "expires_at", expiresAt)
	return connect.NewResponse(&api.IssueTokenResponse{Token: token, ExpiresAt: expiresAt}), nil
}
