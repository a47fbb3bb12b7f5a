// Package chat is the wire contract of the chat broker.
package chat

import (
	"chat-rpc/api"
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Procedure names under which the broker publishes itself in the binder.
const (
	ProcRegisterUser    = "register_user"
	ProcCreateRoom      = "create_room"
	ProcJoinRoom        = "join_room"
	ProcSendMessage     = "send_message"
	ProcLeaveRoom       = "leave_room"
	ProcReceiveMessages = "receive_messages"
	ProcListRooms       = "list_rooms"
	ProcListUsers       = "list_users"
)

// Procedures lists every broker procedure, in registration order.
var Procedures = []string{
	ProcRegisterUser,
	ProcCreateRoom,
	ProcJoinRoom,
	ProcSendMessage,
	ProcLeaveRoom,
	ProcReceiveMessages,
	ProcListRooms,
	ProcListUsers,
}

const (
	ChatService_RegisterUser_FullMethodName    = "/chatrpc.chat.ChatService/RegisterUser"
	ChatService_CreateRoom_FullMethodName      = "/chatrpc.chat.ChatService/CreateRoom"
	ChatService_JoinRoom_FullMethodName        = "/chatrpc.chat.ChatService/JoinRoom"
	ChatService_SendMessage_FullMethodName     = "/chatrpc.chat.ChatService/SendMessage"
	ChatService_LeaveRoom_FullMethodName       = "/chatrpc.chat.ChatService/LeaveRoom"
	ChatService_ReceiveMessages_FullMethodName = "/chatrpc.chat.ChatService/ReceiveMessages"
	ChatService_ListRooms_FullMethodName       = "/chatrpc.chat.ChatService/ListRooms"
	ChatService_ListUsers_FullMethodName       = "/chatrpc.chat.ChatService/ListUsers"
)

type Message struct {
	Seq         uint64 `json:"seq"`
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Origin      string `json:"origin"`
	Destination string `json:"destination,omitempty"`
	Content     string `json:"content"`
	Timestamp   string `json:"timestamp"`
	CreatedAt   string `json:"created_at"` // RFC 3339, nanoseconds
}

type RegisterUserRequest struct {
	Username string `json:"username"`
}

type RegisterUserResponse struct {
	Message string `json:"message"`
}

type CreateRoomRequest struct {
	Room string `json:"room"`
}

type CreateRoomResponse struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
}

type JoinRoomRequest struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

// JoinRoomResponse carries the newest messages addressed to the joining
// user, rendered for display and structured.
type JoinRoomResponse struct {
	Messages []string   `json:"messages"`
	History  []*Message `json:"history"`
}

type SendMessageRequest struct {
	Username    string `json:"username"`
	Room        string `json:"room"`
	Content     string `json:"content"`
	Destination string `json:"destination,omitempty"`
}

type SendMessageResponse struct {
	Message string `json:"message"`
}

type LeaveRoomRequest struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

type LeaveRoomResponse struct {
	Message string `json:"message"`
}

type ReceiveMessagesRequest struct {
	Username string `json:"username"`
	Room     string `json:"room"`
	AfterSeq uint64 `json:"after_seq,omitempty"`
}

type ReceiveMessagesResponse struct {
	Messages []*Message `json:"messages"`
}

type ListRoomsRequest struct{}

// ListRoomsResponse has Available=false when no room exists at all.
type ListRoomsResponse struct {
	Rooms     []string `json:"rooms"`
	Available bool     `json:"available"`
}

type ListUsersRequest struct {
	Room string `json:"room"`
}

type ListUsersResponse struct {
	Users []string `json:"users"`
}

type ChatServiceServer interface {
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	CreateRoom(context.Context, *CreateRoomRequest) (*CreateRoomResponse, error)
	JoinRoom(context.Context, *JoinRoomRequest) (*JoinRoomResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	LeaveRoom(context.Context, *LeaveRoomRequest) (*LeaveRoomResponse, error)
	ReceiveMessages(context.Context, *ReceiveMessagesRequest) (*ReceiveMessagesResponse, error)
	ListRooms(context.Context, *ListRoomsRequest) (*ListRoomsResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
}

type UnimplementedChatServiceServer struct{}

func (UnimplementedChatServiceServer) RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error) {
	return nil, unimplemented("RegisterUser")
}

func (UnimplementedChatServiceServer) CreateRoom(context.Context, *CreateRoomRequest) (*CreateRoomResponse, error) {
	return nil, unimplemented("CreateRoom")
}

func (UnimplementedChatServiceServer) JoinRoom(context.Context, *JoinRoomRequest) (*JoinRoomResponse, error) {
	return nil, unimplemented("JoinRoom")
}

func (UnimplementedChatServiceServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, unimplemented("SendMessage")
}

func (UnimplementedChatServiceServer) LeaveRoom(context.Context, *LeaveRoomRequest) (*LeaveRoomResponse, error) {
	return nil, unimplemented("LeaveRoom")
}

func (UnimplementedChatServiceServer) ReceiveMessages(context.Context, *ReceiveMessagesRequest) (*ReceiveMessagesResponse, error) {
	return nil, unimplemented("ReceiveMessages")
}

func (UnimplementedChatServiceServer) ListRooms(context.Context, *ListRoomsRequest) (*ListRoomsResponse, error) {
	return nil, unimplemented("ListRooms")
}

func (UnimplementedChatServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, unimplemented("ListUsers")
}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

var ChatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chatrpc.chat.ChatService",
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterUser", Handler: api.Unary(ChatService_RegisterUser_FullMethodName, ChatServiceServer.RegisterUser)},
		{MethodName: "CreateRoom", Handler: api.Unary(ChatService_CreateRoom_FullMethodName, ChatServiceServer.CreateRoom)},
		{MethodName: "JoinRoom", Handler: api.Unary(ChatService_JoinRoom_FullMethodName, ChatServiceServer.JoinRoom)},
		{MethodName: "SendMessage", Handler: api.Unary(ChatService_SendMessage_FullMethodName, ChatServiceServer.SendMessage)},
		{MethodName: "LeaveRoom", Handler: api.Unary(ChatService_LeaveRoom_FullMethodName, ChatServiceServer.LeaveRoom)},
		{MethodName: "ReceiveMessages", Handler: api.Unary(ChatService_ReceiveMessages_FullMethodName, ChatServiceServer.ReceiveMessages)},
		{MethodName: "ListRooms", Handler: api.Unary(ChatService_ListRooms_FullMethodName, ChatServiceServer.ListRooms)},
		{MethodName: "ListUsers", Handler: api.Unary(ChatService_ListUsers_FullMethodName, ChatServiceServer.ListUsers)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chat",
}

func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&ChatService_ServiceDesc, srv)
}

type ChatServiceClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error)
	CreateRoom(ctx context.Context, in *CreateRoomRequest, opts ...grpc.CallOption) (*CreateRoomResponse, error)
	JoinRoom(ctx context.Context, in *JoinRoomRequest, opts ...grpc.CallOption) (*JoinRoomResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	LeaveRoom(ctx context.Context, in *LeaveRoomRequest, opts ...grpc.CallOption) (*LeaveRoomResponse, error)
	ReceiveMessages(ctx context.Context, in *ReceiveMessagesRequest, opts ...grpc.CallOption) (*ReceiveMessagesResponse, error)
	ListRooms(ctx context.Context, in *ListRoomsRequest, opts ...grpc.CallOption) (*ListRoomsResponse, error)
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
}

type chatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatServiceClient(cc grpc.ClientConnInterface) ChatServiceClient {
	return &chatServiceClient{cc: cc}
}

func (c *chatServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	return api.Invoke[RegisterUserResponse](ctx, c.cc, ChatService_RegisterUser_FullMethodName, in, opts...)
}

func (c *chatServiceClient) CreateRoom(ctx context.Context, in *CreateRoomRequest, opts ...grpc.CallOption) (*CreateRoomResponse, error) {
	return api.Invoke[CreateRoomResponse](ctx, c.cc, ChatService_CreateRoom_FullMethodName, in, opts...)
}

func (c *chatServiceClient) JoinRoom(ctx context.Context, in *JoinRoomRequest, opts ...grpc.CallOption) (*JoinRoomResponse, error) {
	return api.Invoke[JoinRoomResponse](ctx, c.cc, ChatService_JoinRoom_FullMethodName, in, opts...)
}

func (c *chatServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	return api.Invoke[SendMessageResponse](ctx, c.cc, ChatService_SendMessage_FullMethodName, in, opts...)
}

func (c *chatServiceClient) LeaveRoom(ctx context.Context, in *LeaveRoomRequest, opts ...grpc.CallOption) (*LeaveRoomResponse, error) {
	return api.Invoke[LeaveRoomResponse](ctx, c.cc, ChatService_LeaveRoom_FullMethodName, in, opts...)
}

func (c *chatServiceClient) ReceiveMessages(ctx context.Context, in *ReceiveMessagesRequest, opts ...grpc.CallOption) (*ReceiveMessagesResponse, error) {
	return api.Invoke[ReceiveMessagesResponse](ctx, c.cc, ChatService_ReceiveMessages_FullMethodName, in, opts...)
}

func (c *chatServiceClient) ListRooms(ctx context.Context, in *ListRoomsRequest, opts ...grpc.CallOption) (*ListRoomsResponse, error) {
	return api.Invoke[ListRoomsResponse](ctx, c.cc, ChatService_ListRooms_FullMethodName, in, opts...)
}

func (c *chatServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return api.Invoke[ListUsersResponse](ctx, c.cc, ChatService_ListUsers_FullMethodName, in, opts...)
}
