package transport

import (
	"context"
	stderrors "errors"
	"log/slog"
	"lost-found/bridge"
	"lost-found/errors"
	"lost-found/remote"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const watchBufferSize = 16

// StoreServer exposes a remote.Store to gRPC clients.
// Each unary call waits for the store callback through the bridge.
type StoreServer struct {
	store    remote.Store
	log      *slog.Logger
	deadline time.Duration
}

func NewStoreServer(store remote.Store, log *slog.Logger, deadline time.Duration) *StoreServer {
	return &StoreServer{store: store, log: log, deadline: deadline}
}

// Register attaches the store service to a gRPC server.
func (s *StoreServer) Register(server *grpc.Server) {
	server.RegisterService(&ServiceDesc, s)
}

func (s *StoreServer) op(name string) bridge.Op {
	return bridge.Op{Name: "server." + name, Deadline: s.deadline, Log: s.log}
}

func (s *StoreServer) Read(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	snapshot, err := bridge.ReadOnce(ctx, s.store, s.op("read"), in.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := encodeSnapshot(snapshot)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (s *StoreServer) Write(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error) {
	fields := in.GetFields()
	path := fields["path"].GetStringValue()
	if err := bridge.Write(ctx, s.store, s.op("write"), path, fields["value"].AsInterface()); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *StoreServer) Update(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error) {
	values := in.GetFields()["values"].GetStructValue().AsMap()
	if err := bridge.Update(ctx, s.store, s.op("update"), values); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *StoreServer) Delete(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := bridge.Delete(ctx, s.store, s.op("delete"), in.GetValue()); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

// Watch streams a snapshot of the path now and after every change,
// until the client goes away.
func (s *StoreServer) Watch(in *wrapperspb.StringValue, stream grpc.ServerStream) error {
	ctx := stream.Context()
	snapshots := make(chan remote.Snapshot, watchBufferSize)
	failures := make(chan error, 1)

	registration := s.store.ReadContinuous(in.GetValue(), remote.EventListener{
		OnData: func(snapshot remote.Snapshot) {
			select {
			case snapshots <- snapshot:
			case <-ctx.Done():
			}
		},
		OnCancelled: func(err error) {
			select {
			case failures <- err:
			default:
			}
		},
	})
	defer registration.Remove()
	s.log.Debug("Watch started", "path", in.GetValue())

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Watch ended", "path", in.GetValue())
			return nil
		case err := <-failures:
			return toStatus(err)
		case snapshot := <-snapshots:
			out, err := encodeSnapshot(snapshot)
			if err != nil {
				return status.Error(codes.Internal, err.Error())
			}
			if err = stream.SendMsg(out); err != nil {
				return err
			}
		}
	}
}

func toStatus(err error) error {
	switch {
	case errors.IsTimeout(err), stderrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case stderrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}
	message := errors.NewRemoteError(err).Message
	switch {
	case stderrors.Is(err, errors.ErrInvalidPath):
		return status.Error(codes.InvalidArgument, message)
	case stderrors.Is(err, errors.ErrStoreClosed):
		return status.Error(codes.Unavailable, message)
	}
	return status.Error(codes.Internal, message)
}
