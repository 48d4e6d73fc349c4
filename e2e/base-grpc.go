package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"lost-found/remote"
	"lost-found/transport"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const callTimeout = 10 * time.Second

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
	Log    *slog.Logger

	dial    func(ctx context.Context, _ string) (net.Conn, error)
	cleanup []func()
}

// SetupSuite loads the environment configuration and, without STORE_ADDR,
// starts a store server backed by a temporary badger directory.
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.Log = logs.GetLoggerFromLevel(slog.LevelDebug)
	if s.Config.StoreAddr != "" {
		return
	}

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	disk := remote.NewDiskStore(db, s.Log)
	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	transport.NewStoreServer(disk, s.Log, 5*time.Second).Register(server)
	go func() { _ = server.Serve(listener) }()

	s.Config.StoreAddr = "passthrough:///bufnet"
	s.dial = func(ctx context.Context, _ string) (net.Conn, error) {
		return listener.DialContext(ctx)
	}
	s.cleanup = append(s.cleanup, server.Stop, disk.Close, func() { _ = db.Close() })
}

func (s *BaseGrpcSuite) TearDownSuite() {
	for _, fn := range s.cleanup {
		fn()
	}
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, name string, addr string) *grpc.ClientConn {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	options := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	}
	if s.dial != nil {
		options = append(options, grpc.WithContextDialer(s.dial))
	}
	conn, err := grpc.NewClient(addr, options...)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+addr)
	return conn
}

// WithStore provides a store client within a contextual test step
func (s *BaseGrpcSuite) WithStore(name string, fn func(ctx context.Context, store *transport.GrpcStore)) {
	conn := s.GrpcConn(s.T(), name, s.Config.StoreAddr)
	defer conn.Close()

	store := transport.NewGrpcStore(conn, s.Log, callTimeout)
	defer store.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, store)
}
