package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	"github.com/amirmtaati/paylash/internal/ledger"
	"github.com/amirmtaati/paylash/internal/models"
	"github.com/amirmtaati/paylash/pkg/api"
	"github.com/amirmtaati/paylash/pkg/api/apiconnect"
)

var _ apiconnect.GroupServiceHandler = (*GroupService)(nil)

// GroupService implements the Connect GroupService.
type GroupService struct {
	ledger *ledger.Ledger
}

// NewGroupService creates a new GroupService backed by l.
func NewGroupService(l *ledger.Ledger) *GroupService {
	return &GroupService{ledger: l}
}

// memberGroup loads groupID and checks that userID belongs to it.
func memberGroup(ctx context.Context, l *ledger.Ledger, groupID, userID string) (*models.Group, error) {
	group, err := l.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(userID) {
		return nil, fmt.Errorf("%w: %s", models.ErrNotMember, groupID)
	}
	return group, nil
}

// CreateGroup creates a new group with the acting user as first member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	group, err := s.ledger.CreateGroup(ctx, req.Msg.Name, userID)
	if err != nil {
		return nil, toConnectError("CreateGroup", err)
	}

	slog.Info("Created group", "group_id", group.ID, "name", group.Name)
	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(group)}), nil
}

// AddMember adds a user, named by id or alias, to a group the acting user belongs to.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if _, err := memberGroup(ctx, s.ledger, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError("AddMember", err)
	}

	member, err := s.ledger.AddMember(ctx, req.Msg.GroupID, req.Msg.Identifier)
	if err != nil {
		return nil, toConnectError("AddMember", err)
	}

	group, err := s.ledger.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError("AddMember", err)
	}

	return connect.NewResponse(&api.AddMemberResponse{Group: toAPIGroup(group), Member: toAPIUser(member)}), nil
}

// GetGroup retrieves a group the acting user belongs to.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	group, err := memberGroup(ctx, s.ledger, req.Msg.GroupID, userID)
	if err != nil {
		return nil, toConnectError("GetGroup", err)
	}
	return connect.NewResponse(&api.GetGroupResponse{Group: toAPIGroup(group)}), nil
}

// ListMyGroups retrieves every group of the acting user.
func (s *GroupService) ListMyGroups(ctx context.Context, req *connect.Request[api.ListMyGroupsRequest]) (*connect.Response[api.ListMyGroupsResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.ledger.ListGroups(ctx, userID)
	if err != nil {
		return nil, toConnectError("ListMyGroups", err)
	}

	return connect.NewResponse(&api.ListMyGroupsResponse{
		Groups: lo.Map(groups, func(g *models.Group, _ int) *api.Group { return toAPIGroup(g) }),
	}), nil
}
