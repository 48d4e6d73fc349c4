// Package transport carries a remote.Store over gRPC.
//
// Payloads are protobuf well-known types, so the service is declared by hand
// instead of being generated from a .proto file:
//
//	service Store {
//	  rpc Read(google.protobuf.StringValue) returns (google.protobuf.Struct);
//	  rpc Write(google.protobuf.Struct) returns (google.protobuf.Empty);
//	  rpc Update(google.protobuf.Struct) returns (google.protobuf.Empty);
//	  rpc Delete(google.protobuf.StringValue) returns (google.protobuf.Empty);
//	  rpc Watch(google.protobuf.StringValue) returns (stream google.protobuf.Struct);
//	}
package transport

import (
	"context"
	"fmt"
	"lost-found/remote"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const serviceName = "lostfound.store.v1.Store"

func fullMethod(method string) string {
	return "/" + serviceName + "/" + method
}

// storeService is what a server must implement to be registered with ServiceDesc.
type storeService interface {
	Read(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error)
	Write(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error)
	Update(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error)
	Delete(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error)
	Watch(in *wrapperspb.StringValue, stream grpc.ServerStream) error
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*storeService)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Read",
			Handler: unaryHandler("Read", func(s storeService, ctx context.Context, in *wrapperspb.StringValue) (proto.Message, error) {
				return s.Read(ctx, in)
			}),
		},
		{
			MethodName: "Write",
			Handler: unaryHandler("Write", func(s storeService, ctx context.Context, in *structpb.Struct) (proto.Message, error) {
				return s.Write(ctx, in)
			}),
		},
		{
			MethodName: "Update",
			Handler: unaryHandler("Update", func(s storeService, ctx context.Context, in *structpb.Struct) (proto.Message, error) {
				return s.Update(ctx, in)
			}),
		},
		{
			MethodName: "Delete",
			Handler: unaryHandler("Delete", func(s storeService, ctx context.Context, in *wrapperspb.StringValue) (proto.Message, error) {
				return s.Delete(ctx, in)
			}),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Watch",
			Handler:       watchHandler,
			ServerStreams: true,
		},
	},
	Metadata: "lostfound/store/v1/store.proto",
}

func unaryHandler[Req any, PReq interface {
	*Req
	proto.Message
}](method string, call func(s storeService, ctx context.Context, in PReq) (proto.Message, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		service := srv.(storeService)
		if interceptor == nil {
			return call(service, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(service, ctx, req.(PReq))
		})
	}
}

func watchHandler(srv any, stream grpc.ServerStream) error {
	in := new(wrapperspb.StringValue)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(storeService).Watch(in, stream)
}

// encodeSnapshot is the payload of Read and of each Watch message.
func encodeSnapshot(snapshot remote.Snapshot) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"path":   snapshot.Path(),
		"exists": snapshot.Exists(),
		"value":  snapshot.Value(),
	})
}

func decodeSnapshot(fallbackPath string, in *structpb.Struct) remote.Snapshot {
	fields := in.GetFields()
	path := fields["path"].GetStringValue()
	if path == "" {
		path = fallbackPath
	}
	if !fields["exists"].GetBoolValue() {
		return remote.NewSnapshot(path, nil)
	}
	return remote.NewSnapshot(path, fields["value"].AsInterface())
}

func encodeWrite(path string, value any) (*structpb.Struct, error) {
	normalized, err := remote.Normalize(value)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{"path": path, "value": normalized})
}

func encodeUpdate(values map[string]any) (*structpb.Struct, error) {
	normalized := make(map[string]any, len(values))
	for path, value := range values {
		v, err := remote.Normalize(value)
		if err != nil {
			return nil, fmt.Errorf("update %q: %w", path, err)
		}
		normalized[path] = v
	}
	return structpb.NewStruct(map[string]any{"values": normalized})
}
