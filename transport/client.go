package transport

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"lost-found/remote"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// GrpcStore is a remote.Store reached through a StoreServer.
// Every call runs on its own goroutine and reports through its listener.
// callTimeout bounds a single RPC, so a listener abandoned by a caller that
// stopped waiting still ends up released.
type GrpcStore struct {
	conn        grpc.ClientConnInterface
	log         *slog.Logger
	callTimeout time.Duration
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewGrpcStore(conn grpc.ClientConnInterface, log *slog.Logger, callTimeout time.Duration) *GrpcStore {
	ctx, cancel := context.WithCancel(context.Background())
	return &GrpcStore{conn: conn, log: log, callTimeout: callTimeout, ctx: ctx, cancel: cancel}
}

// Close aborts every pending call and watch.
func (s *GrpcStore) Close() {
	s.cancel()
}

func (s *GrpcStore) ReadOnce(path string, listener remote.EventListener) {
	go func() {
		ctx, cancel := context.WithTimeout(s.ctx, s.callTimeout)
		defer cancel()
		out := new(structpb.Struct)
		if err := s.conn.Invoke(ctx, fullMethod("Read"), wrapperspb.String(path), out); err != nil {
			fire(listener.OnCancelled, fromStatus(err))
			return
		}
		if listener.OnData != nil {
			listener.OnData(decodeSnapshot(path, out))
		}
	}()
}

func (s *GrpcStore) ReadContinuous(path string, listener remote.EventListener) remote.Registration {
	ctx, cancel := context.WithCancel(s.ctx)
	watch := &watch{cancel: cancel}
	go func() {
		defer cancel()
		stream, err := s.conn.NewStream(ctx, &ServiceDesc.Streams[0], fullMethod("Watch"))
		if err == nil {
			err = stream.SendMsg(wrapperspb.String(path))
		}
		if err == nil {
			err = stream.CloseSend()
		}
		for err == nil {
			out := new(structpb.Struct)
			if err = stream.RecvMsg(out); err == nil && listener.OnData != nil {
				listener.OnData(decodeSnapshot(path, out))
			}
		}
		if stderrors.Is(err, io.EOF) || ctx.Err() != nil {
			s.log.Debug("Watch closed", "path", path)
			return
		}
		fire(listener.OnCancelled, fromStatus(err))
	}()
	return watch
}

func (s *GrpcStore) Write(path string, value any, done remote.CompletionListener) {
	in, err := encodeWrite(path, value)
	if err != nil {
		go fire(done, err)
		return
	}
	s.mutate("Write", in, done)
}

func (s *GrpcStore) Update(values map[string]any, done remote.CompletionListener) {
	in, err := encodeUpdate(values)
	if err != nil {
		go fire(done, err)
		return
	}
	s.mutate("Update", in, done)
}

func (s *GrpcStore) Delete(path string, done remote.CompletionListener) {
	s.mutate("Delete", wrapperspb.String(path), done)
}

func (s *GrpcStore) mutate(method string, in any, done remote.CompletionListener) {
	go func() {
		ctx, cancel := context.WithTimeout(s.ctx, s.callTimeout)
		defer cancel()
		if err := s.conn.Invoke(ctx, fullMethod(method), in, new(emptypb.Empty)); err != nil {
			fire(done, fromStatus(err))
			return
		}
		fire(done, nil)
	}()
}

func fire[F ~func(error)](f F, err error) {
	if f != nil {
		f(err)
	}
}

// fromStatus keeps only the message the server attached to the failure.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() == codes.OK {
		return nil
	}
	return stderrors.New(st.Message())
}

type watch struct {
	cancel context.CancelFunc
	once   sync.Once
}

func (w *watch) Remove() {
	w.once.Do(w.cancel)
}
