package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "ipc.v1.MetadataService"

// Full method names
const (
	GetMetadataFullMethod = "/" + ServiceName + "/GetMetadata"
	RandomTokenFullMethod = "/" + ServiceName + "/RandomToken"
)

// MetadataServiceServer is the server API for the metadata service.
// Requests and responses are google.protobuf.Struct messages.
type MetadataServiceServer interface {
	GetMetadata(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RandomToken(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterMetadataServiceServer registers srv on s
func RegisterMetadataServiceServer(s grpc.ServiceRegistrar, srv MetadataServiceServer) {
	s.RegisterService(&MetadataServiceDesc, srv)
}

// MetadataServiceDesc describes the metadata service for grpc.Server
var MetadataServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MetadataServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetMetadata",
			Handler:    getMetadataHandler,
		},
		{
			MethodName: "RandomToken",
			Handler:    randomTokenHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ipc/v1/metadata.proto",
}

func getMetadataHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MetadataServiceServer).GetMetadata(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetMetadataFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MetadataServiceServer).GetMetadata(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func randomTokenHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MetadataServiceServer).RandomToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RandomTokenFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MetadataServiceServer).RandomToken(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// MetadataServiceClient calls the metadata service over conn
type MetadataServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMetadataServiceClient creates a client on an existing connection
func NewMetadataServiceClient(cc grpc.ClientConnInterface) *MetadataServiceClient {
	return &MetadataServiceClient{cc: cc}
}

// GetMetadata calls MetadataService.GetMetadata
func (c *MetadataServiceClient) GetMetadata(
	ctx context.Context,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetMetadataFullMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RandomToken calls MetadataService.RandomToken
func (c *MetadataServiceClient) RandomToken(
	ctx context.Context,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RandomTokenFullMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
