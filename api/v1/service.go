package apiv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func errUnimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "coach.v1.CoachingService"

// CoachingServer is the server API for the coaching service.
type CoachingServer interface {
	StartSession(ctx context.Context, req *StartSessionRequest) (*StartSessionResponse, error)
	AppendTurn(ctx context.Context, req *AppendTurnRequest) (*AppendTurnResponse, error)
	ScoreSession(ctx context.Context, req *ScoreSessionRequest) (*SessionReportsResponse, error)
	GetSessionReports(ctx context.Context, req *GetSessionReportsRequest) (*SessionReportsResponse, error)

	mustEmbedUnimplementedCoachingServer()
}

// UnimplementedCoachingServer must be embedded for forward compatibility.
type UnimplementedCoachingServer struct{}

func (UnimplementedCoachingServer) StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error) {
	return nil, errUnimplemented("StartSession")
}

func (UnimplementedCoachingServer) AppendTurn(context.Context, *AppendTurnRequest) (*AppendTurnResponse, error) {
	return nil, errUnimplemented("AppendTurn")
}

func (UnimplementedCoachingServer) ScoreSession(context.Context, *ScoreSessionRequest) (*SessionReportsResponse, error) {
	return nil, errUnimplemented("ScoreSession")
}

func (UnimplementedCoachingServer) GetSessionReports(context.Context, *GetSessionReportsRequest) (*SessionReportsResponse, error) {
	return nil, errUnimplemented("GetSessionReports")
}

func (UnimplementedCoachingServer) mustEmbedUnimplementedCoachingServer() {}

// RegisterCoachingServer registers the coaching service implementation.
func RegisterCoachingServer(s grpc.ServiceRegistrar, srv CoachingServer) {
	s.RegisterService(&CoachingService_ServiceDesc, srv)
}

func methodHandler[Req any, Resp any](
	method string,
	call func(srv CoachingServer, ctx context.Context, req *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CoachingServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CoachingServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CoachingService_ServiceDesc is the grpc.ServiceDesc for the coaching
// service.
var CoachingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CoachingServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartSession",
			Handler: methodHandler("StartSession",
				func(srv CoachingServer, ctx context.Context, req *StartSessionRequest) (*StartSessionResponse, error) {
					return srv.StartSession(ctx, req)
				}),
		},
		{
			MethodName: "AppendTurn",
			Handler: methodHandler("AppendTurn",
				func(srv CoachingServer, ctx context.Context, req *AppendTurnRequest) (*AppendTurnResponse, error) {
					return srv.AppendTurn(ctx, req)
				}),
		},
		{
			MethodName: "ScoreSession",
			Handler: methodHandler("ScoreSession",
				func(srv CoachingServer, ctx context.Context, req *ScoreSessionRequest) (*SessionReportsResponse, error) {
					return srv.ScoreSession(ctx, req)
				}),
		},
		{
			MethodName: "GetSessionReports",
			Handler: methodHandler("GetSessionReports",
				func(srv CoachingServer, ctx context.Context, req *GetSessionReportsRequest) (*SessionReportsResponse, error) {
					return srv.GetSessionReports(ctx, req)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/v1/coaching.go",
}

// CoachingClient is the client API for the coaching service.
type CoachingClient interface {
	StartSession(ctx context.Context, req *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error)
	AppendTurn(ctx context.Context, req *AppendTurnRequest, opts ...grpc.CallOption) (*AppendTurnResponse, error)
	ScoreSession(ctx context.Context, req *ScoreSessionRequest, opts ...grpc.CallOption) (*SessionReportsResponse, error)
	GetSessionReports(ctx context.Context, req *GetSessionReportsRequest, opts ...grpc.CallOption) (*SessionReportsResponse, error)
}

type coachingClient struct {
	cc grpc.ClientConnInterface
}

// NewCoachingClient creates a client that speaks the json content-subtype.
func NewCoachingClient(cc grpc.ClientConnInterface) CoachingClient {
	return &coachingClient{cc: cc}
}

func invoke[Resp any](c *coachingClient, ctx context.Context, method string, req any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coachingClient) StartSession(ctx context.Context, req *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error) {
	return invoke[StartSessionResponse](c, ctx, "StartSession", req, opts)
}

func (c *coachingClient) AppendTurn(ctx context.Context, req *AppendTurnRequest, opts ...grpc.CallOption) (*AppendTurnResponse, error) {
	return invoke[AppendTurnResponse](c, ctx, "AppendTurn", req, opts)
}

func (c *coachingClient) ScoreSession(ctx context.Context, req *ScoreSessionRequest, opts ...grpc.CallOption) (*SessionReportsResponse, error) {
	return invoke[SessionReportsResponse](c, ctx, "ScoreSession", req, opts)
}

func (c *coachingClient) GetSessionReports(ctx context.Context, req *GetSessionReportsRequest, opts ...grpc.CallOption) (*SessionReportsResponse, error) {
	return invoke[SessionReportsResponse](c, ctx, "GetSessionReports", req, opts)
}
