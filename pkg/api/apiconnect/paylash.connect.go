// Package apiconnect wires the paylash.v1 services to Connect handlers and
// clients using api.JSONCodec.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/amirmtaati/paylash/pkg/api"
)

// Fully-qualified service names.
const (
	AuthServiceName   = "paylash.v1.AuthService"
	UserServiceName   = "paylash.v1.UserService"
	GroupServiceName  = "paylash.v1.GroupService"
	LedgerServiceName = "paylash.v1.LedgerService"
)

// Procedure paths, as they appear in the request URL.
const (
	AuthServiceIssueTokenProcedure = "/paylash.v1.AuthService/IssueToken"

	UserServiceRegisterUserProcedure = "/paylash.v1.UserService/RegisterUser"
	UserServiceGetUserProcedure      = "/paylash.v1.UserService/GetUser"
	UserServiceSetAliasProcedure     = "/paylash.v1.UserService/SetAlias"
	UserServiceReleaseAliasProcedure = "/paylash.v1.UserService/ReleaseAlias"

	GroupServiceCreateGroupProcedure  = "/paylash.v1.GroupService/CreateGroup"
	GroupServiceAddMemberProcedure    = "/paylash.v1.GroupService/AddMember"
	GroupServiceGetGroupProcedure     = "/paylash.v1.GroupService/GetGroup"
	GroupServiceListMyGroupsProcedure = "/paylash.v1.GroupService/ListMyGroups"

	LedgerServiceCreateExpenseProcedure      = "/paylash.v1.LedgerService/CreateExpense"
	LedgerServiceGetExpenseProcedure         = "/paylash.v1.LedgerService/GetExpense"
	LedgerServiceListExpensesProcedure       = "/paylash.v1.LedgerService/ListExpenses"
	LedgerServiceDeleteExpenseProcedure      = "/paylash.v1.LedgerService/DeleteExpense"
	LedgerServiceGetBalancesProcedure        = "/paylash.v1.LedgerService/GetBalances"
	LedgerServiceGetGroupBalancesProcedure   = "/paylash.v1.LedgerService/GetGroupBalances"
	LedgerServiceRecordSettlementProcedure   = "/paylash.v1.LedgerService/RecordSettlement"
	LedgerServiceAddExpenseFromTextProcedure = "/paylash.v1.LedgerService/AddExpenseFromText"
)

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
}

// route serves the procedure handlers registered under one service prefix.
func route(service string, handlers map[string]http.Handler) (string, http.Handler) {
	return "/" + service + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

func unimplemented(procedure string) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(strings.TrimPrefix(procedure, "/")+" is not implemented"))
}

// AuthService

// AuthServiceHandler is implemented by the server side of paylash.v1.AuthService.
type AuthServiceHandler interface {
	IssueToken(context.Context, *connect.Request[api.IssueTokenRequest]) (*connect.Response[api.IssueTokenResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route(AuthServiceName, map[string]http.Handler{
		AuthServiceIssueTokenProcedure: connect.NewUnaryHandler(AuthServiceIssueTokenProcedure, svc.IssueToken, opts...),
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) IssueToken(context.Context, *connect.Request[api.IssueTokenRequest]) (*connect.Response[api.IssueTokenResponse], error) {
	return nil, unimplemented(AuthServiceIssueTokenProcedure)
}

// AuthServiceClient is a client for paylash.v1.AuthService.
type AuthServiceClient interface {
	IssueToken(context.Context, *connect.Request[api.IssueTokenRequest]) (*connect.Response[api.IssueTokenResponse], error)
}

type authServiceClient struct {
	issueToken *connect.Client[api.IssueTokenRequest, api.IssueTokenResponse]
}

// NewAuthServiceClient constructs a client for paylash.v1.AuthService at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		issueToken: connect.NewClient[api.IssueTokenRequest, api.IssueTokenResponse](httpClient, baseURL+AuthServiceIssueTokenProcedure, opts...),
	}
}

func (c *authServiceClient) IssueToken(ctx context.Context, req *connect.Request[api.IssueTokenRequest]) (*connect.Response[api.IssueTokenResponse], error) {
	return c.issueToken.CallUnary(ctx, req)
}

// UserService

// UserServiceHandler is implemented by the server side of paylash.v1.UserService.
type UserServiceHandler interface {
	RegisterUser(context.Context, *connect.Request[api.RegisterUserRequest]) (*connect.Response[api.RegisterUserResponse], error)
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error)
	SetAlias(context.Context, *connect.Request[api.SetAliasRequest]) (*connect.Response[api.SetAliasResponse], error)
	ReleaseAlias(context.Context, *connect.Request[api.ReleaseAliasRequest]) (*connect.Response[api.ReleaseAliasResponse], error)
}

// NewUserServiceHandler builds an HTTP handler from the service implementation.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route(UserServiceName, map[string]http.Handler{
		UserServiceRegisterUserProcedure: connect.NewUnaryHandler(UserServiceRegisterUserProcedure, svc.RegisterUser, opts...),
		UserServiceGetUserProcedure:      connect.NewUnaryHandler(UserServiceGetUserProcedure, svc.GetUser, opts...),
		UserServiceSetAliasProcedure:     connect.NewUnaryHandler(UserServiceSetAliasProcedure, svc.SetAlias, opts...),
		UserServiceReleaseAliasProcedure: connect.NewUnaryHandler(UserServiceReleaseAliasProcedure, svc.ReleaseAlias, opts...),
	})
}

// UnimplementedUserServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedUserServiceHandler struct{}

func (UnimplementedUserServiceHandler) RegisterUser(context.Context, *connect.Request[api.RegisterUserRequest]) (*connect.Response[api.RegisterUserResponse], error) {
	return nil, unimplemented(UserServiceRegisterUserProcedure)
}

func (UnimplementedUserServiceHandler) GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	return nil, unimplemented(UserServiceGetUserProcedure)
}

func (UnimplementedUserServiceHandler) SetAlias(context.Context, *connect.Request[api.SetAliasRequest]) (*connect.Response[api.SetAliasResponse], error) {
	return nil, unimplemented(UserServiceSetAliasProcedure)
}

func (UnimplementedUserServiceHandler) ReleaseAlias(context.Context, *connect.Request[api.ReleaseAliasRequest]) (*connect.Response[api.ReleaseAliasResponse], error) {
	return nil, unimplemented(UserServiceReleaseAliasProcedure)
}

// UserServiceClient is a client for paylash.v1.UserService.
type UserServiceClient interface {
	RegisterUser(context.Context, *connect.Request[api.RegisterUserRequest]) (*connect.Response[api.RegisterUserResponse], error)
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error)
	SetAlias(context.Context, *connect.Request[api.SetAliasRequest]) (*connect.Response[api.SetAliasResponse], error)
	ReleaseAlias(context.Context, *connect.Request[api.ReleaseAliasRequest]) (*connect.Response[api.ReleaseAliasResponse], error)
}

type userServiceClient struct {
	registerUser *connect.Client[api.RegisterUserRequest, api.RegisterUserResponse]
	getUser      *connect.Client[api.GetUserRequest, api.GetUserResponse]
	setAlias     *connect.Client[api.SetAliasRequest, api.SetAliasResponse]
	releaseAlias *connect.Client[api.ReleaseAliasRequest, api.ReleaseAliasResponse]
}

// NewUserServiceClient constructs a client for paylash.v1.UserService at baseURL.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &userServiceClient{
		registerUser: connect.NewClient[api.RegisterUserRequest, api.RegisterUserResponse](httpClient, baseURL+UserServiceRegisterUserProcedure, opts...),
		getUser:      connect.NewClient[api.GetUserRequest, api.GetUserResponse](httpClient, baseURL+UserServiceGetUserProcedure, opts...),
		setAlias:     connect.NewClient[api.SetAliasRequest, api.SetAliasResponse](httpClient, baseURL+UserServiceSetAliasProcedure, opts...),
		releaseAlias: connect.NewClient[api.ReleaseAliasRequest, api.ReleaseAliasResponse](httpClient, baseURL+UserServiceReleaseAliasProcedure, opts...),
	}
}

func (c *userServiceClient) RegisterUser(ctx context.Context, req *connect.Request[api.RegisterUserRequest]) (*connect.Response[api.RegisterUserResponse], error) {
	return c.registerUser.CallUnary(ctx, req)
}

func (c *userServiceClient) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	return c.getUser.CallUnary(ctx, req)
}

func (c *userServiceClient) SetAlias(ctx context.Context, req *connect.Request[api.SetAliasRequest]) (*connect.Response[api.SetAliasResponse], error) {
	return c.setAlias.CallUnary(ctx, req)
}

func (c *userServiceClient) ReleaseAlias(ctx context.Context, req *connect.Request[api.ReleaseAliasRequest]) (*connect.Response[api.ReleaseAliasResponse], error) {
	return c.releaseAlias.CallUnary(ctx, req)
}

// GroupService

// GroupServiceHandler is implemented by the server side of paylash.v1.GroupService.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error)
	ListMyGroups(context.Context, *connect.Request[api.ListMyGroupsRequest]) (*connect.Response[api.ListMyGroupsResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler from the service implementation.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route(GroupServiceName, map[string]http.Handler{
		GroupServiceCreateGroupProcedure:  connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...),
		GroupServiceAddMemberProcedure:    connect.NewUnaryHandler(GroupServiceAddMemberProcedure, svc.AddMember, opts...),
		GroupServiceGetGroupProcedure:     connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...),
		GroupServiceListMyGroupsProcedure: connect.NewUnaryHandler(GroupServiceListMyGroupsProcedure, svc.ListMyGroups, opts...),
	})
}

// UnimplementedGroupServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedGroupServiceHandler struct{}

func (UnimplementedGroupServiceHandler) CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	return nil, unimplemented(GroupServiceCreateGroupProcedure)
}

func (UnimplementedGroupServiceHandler) AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return nil, unimplemented(GroupServiceAddMemberProcedure)
}

func (UnimplementedGroupServiceHandler) GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	return nil, unimplemented(GroupServiceGetGroupProcedure)
}

func (UnimplementedGroupServiceHandler) ListMyGroups(context.Context, *connect.Request[api.ListMyGroupsRequest]) (*connect.Response[api.ListMyGroupsResponse], error) {
	return nil, unimplemented(GroupServiceListMyGroupsProcedure)
}

// GroupServiceClient is a client for paylash.v1.GroupService.
type GroupServiceClient interface {
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error)
	ListMyGroups(context.Context, *connect.Request[api.ListMyGroupsRequest]) (*connect.Response[api.ListMyGroupsResponse], error)
}

type groupServiceClient struct {
	createGroup  *connect.Client[api.CreateGroupRequest, api.CreateGroupResponse]
	addMember    *connect.Client[api.AddMemberRequest, api.AddMemberResponse]
	getGroup     *connect.Client[api.GetGroupRequest, api.GetGroupResponse]
	listMyGroups *connect.Client[api.ListMyGroupsRequest, api.ListMyGroupsResponse]
}

// NewGroupServiceClient constructs a client for paylash.v1.GroupService at baseURL.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &groupServiceClient{
		createGroup:  connect.NewClient[api.CreateGroupRequest, api.CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		addMember:    connect.NewClient[api.AddMemberRequest, api.AddMemberResponse](httpClient, baseURL+GroupServiceAddMemberProcedure, opts...),
		getGroup:     connect.NewClient[api.GetGroupRequest, api.GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		listMyGroups: connect.NewClient[api.ListMyGroupsRequest, api.ListMyGroupsResponse](httpClient, baseURL+GroupServiceListMyGroupsProcedure, opts...),
	}
}

func (c *groupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *groupServiceClient) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListMyGroups(ctx context.Context, req *connect.Request[api.ListMyGroupsRequest]) (*connect.Response[api.ListMyGroupsResponse], error) {
	return c.listMyGroups.CallUnary(ctx, req)
}

// LedgerService

// LedgerServiceHandler is implemented by the server side of paylash.v1.LedgerService.
type LedgerServiceHandler interface {
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	GetGroupBalances(context.Context, *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error)
	RecordSettlement(context.Context, *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error)
	AddExpenseFromText(context.Context, *connect.Request[api.AddExpenseFromTextRequest]) (*connect.Response[api.AddExpenseFromTextResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route(LedgerServiceName, map[string]http.Handler{
		LedgerServiceCreateExpenseProcedure:      connect.NewUnaryHandler(LedgerServiceCreateExpenseProcedure, svc.CreateExpense, opts...),
		LedgerServiceGetExpenseProcedure:         connect.NewUnaryHandler(LedgerServiceGetExpenseProcedure, svc.GetExpense, opts...),
		LedgerServiceListExpensesProcedure:       connect.NewUnaryHandler(LedgerServiceListExpensesProcedure, svc.ListExpenses, opts...),
		LedgerServiceDeleteExpenseProcedure:      connect.NewUnaryHandler(LedgerServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...),
		LedgerServiceGetBalancesProcedure:        connect.NewUnaryHandler(LedgerServiceGetBalancesProcedure, svc.GetBalances, opts...),
		LedgerServiceGetGroupBalancesProcedure:   connect.NewUnaryHandler(LedgerServiceGetGroupBalancesProcedure, svc.GetGroupBalances, opts...),
		LedgerServiceRecordSettlementProcedure:   connect.NewUnaryHandler(LedgerServiceRecordSettlementProcedure, svc.RecordSettlement, opts...),
		LedgerServiceAddExpenseFromTextProcedure: connect.NewUnaryHandler(LedgerServiceAddExpenseFromTextProcedure, svc.AddExpenseFromText, opts...),
	})
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	return nil, unimplemented(LedgerServiceCreateExpenseProcedure)
}

func (UnimplementedLedgerServiceHandler) GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	return nil, unimplemented(LedgerServiceGetExpenseProcedure)
}

func (UnimplementedLedgerServiceHandler) ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return nil, unimplemented(LedgerServiceListExpensesProcedure)
}

func (UnimplementedLedgerServiceHandler) DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return nil, unimplemented(LedgerServiceDeleteExpenseProcedure)
}

func (UnimplementedLedgerServiceHandler) GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return nil, unimplemented(LedgerServiceGetBalancesProcedure)
}

func (UnimplementedLedgerServiceHandler) GetGroupBalances(context.Context, *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	return nil, unimplemented(LedgerServiceGetGroupBalancesProcedure)
}

func (UnimplementedLedgerServiceHandler) RecordSettlement(context.Context, *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	return nil, unimplemented(LedgerServiceRecordSettlementProcedure)
}

func (UnimplementedLedgerServiceHandler) AddExpenseFromText(context.Context, *connect.Request[api.AddExpenseFromTextRequest]) (*connect.Response[api.AddExpenseFromTextResponse], error) {
	return nil, unimplemented(LedgerServiceAddExpenseFromTextProcedure)
}

// LedgerServiceClient is a client for paylash.v1.LedgerService.
type LedgerServiceClient interface {
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	GetGroupBalances(context.Context, *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error)
	RecordSettlement(context.Context, *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error)
	AddExpenseFromText(context.Context, *connect.Request[api.AddExpenseFromTextRequest]) (*connect.Response[api.AddExpenseFromTextResponse], error)
}

type ledgerServiceClient struct {
	createExpense      *connect.Client[api.CreateExpenseRequest, api.CreateExpenseResponse]
	getExpense         *connect.Client[api.GetExpenseRequest, api.GetExpenseResponse]
	listExpenses       *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	deleteExpense      *connect.Client[api.DeleteExpenseRequest, api.DeleteExpenseResponse]
	getBalances        *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
	getGroupBalances   *connect.Client[api.GetGroupBalancesRequest, api.GetGroupBalancesResponse]
	recordSettlement   *connect.Client[api.RecordSettlementRequest, api.RecordSettlementResponse]
	addExpenseFromText *connect.Client[api.AddExpenseFromTextRequest, api.AddExpenseFromTextResponse]
}

// NewLedgerServiceClient constructs a client for paylash.v1.LedgerService at baseURL.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &ledgerServiceClient{
		createExpense:      connect.NewClient[api.CreateExpenseRequest, api.CreateExpenseResponse](httpClient, baseURL+LedgerServiceCreateExpenseProcedure, opts...),
		getExpense:         connect.NewClient[api.GetExpenseRequest, api.GetExpenseResponse](httpClient, baseURL+LedgerServiceGetExpenseProcedure, opts...),
		listExpenses:       connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](httpClient, baseURL+LedgerServiceListExpensesProcedure, opts...),
		deleteExpense:      connect.NewClient[api.DeleteExpenseRequest, api.DeleteExpenseResponse](httpClient, baseURL+LedgerServiceDeleteExpenseProcedure, opts...),
		getBalances:        connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](httpClient, baseURL+LedgerServiceGetBalancesProcedure, opts...),
		getGroupBalances:   connect.NewClient[api.GetGroupBalancesRequest, api.GetGroupBalancesResponse](httpClient, baseURL+LedgerServiceGetGroupBalancesProcedure, opts...),
		recordSettlement:   connect.NewClient[api.RecordSettlementRequest, api.RecordSettlementResponse](httpClient, baseURL+LedgerServiceRecordSettlementProcedure, opts...),
		addExpenseFromText: connect.NewClient[api.AddExpenseFromTextRequest, api.AddExpenseFromTextResponse](httpClient, baseURL+LedgerServiceAddExpenseFromTextProcedure, opts...),
	}
}

func (c *ledgerServiceClient) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetGroupBalances(ctx context.Context, req *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	return c.getGroupBalances.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RecordSettlement(ctx context.Context, req *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	return c.recordSettlement.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddExpenseFromText(ctx context.Context, req *connect.Request[api.AddExpenseFromTextRequest]) (*connect.Response[api.AddExpenseFromTextResponse], error) {
	return c.addExpenseFromText.CallUnary(ctx, req)
}
