package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"lost-found/domain"
	"lost-found/moderation"
	"lost-found/presenter"
	"lost-found/remote"
	"lost-found/repositories"
	"lost-found/search"
	"lost-found/services"
	"lost-found/transport"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
	exitUsage   = 64
)

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil && !errors.Is(err, errPresented) {
		fmt.Fprintf(os.Stderr, "lostfound: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string, out io.Writer) (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(config, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer closeStore()

	a, closeApp, err := newApp(config, store, logger, out)
	if err != nil {
		return exitConfig, err
	}
	defer closeApp()

	if err := a.execute(ctx, args); err != nil {
		if isUsage(err) {
			return exitUsage, err
		}
		return exitRuntime, err
	}
	return exitOK, nil
}

// openStore dials the store server when STORE_ADDR is set and opens the
// local badger directory otherwise.
func openStore(config Config, logger *slog.Logger) (remote.Store, func(), error) {
	if config.StoreAddr != "" {
		conn, err := grpc.NewClient(config.StoreAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, fmt.Errorf("dialing store %s: %w", config.StoreAddr, err)
		}
		client := transport.NewGrpcStore(conn, logger, config.MultiStepDeadline)
		logger.Debug("Using remote store", "address", config.StoreAddr)
		return client, func() {
			client.Close()
			_ = conn.Close()
		}, nil
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, nil, fmt.Errorf("database opening failed: %w", err)
	}
	store := remote.NewDiskStore(db, logger)
	logger.Debug("Using local store", "path", config.BadgerFilepath)
	return store, func() {
		store.Close()
		_ = db.Close()
	}, nil
}

func newApp(config Config, store remote.Store, logger *slog.Logger, out io.Writer) (*app, func(), error) {
	console := presenter.NewConsole(out, config.Colours)
	ids := domain.NewIDGenerator()

	chats := repositories.NewChatRepository(store, logger, ids, config.ReadDeadline).
		OnWriteFailure(func(op, path string, err error) {
			console.PresentError(fmt.Sprintf("Warning: %s may not have been saved", path))
		})
	users := repositories.NewUserRepository(store, logger, config.ReadDeadline, config.MultiStepDeadline)
	index, err := search.NewPostIndex(logger)
	if err != nil {
		return nil, nil, err
	}
	posts := repositories.NewPostRepository(store, logger, ids, index, config.ReadDeadline)

	interactor := services.NewChatInteractor(chats, users, console, logger)
	if config.EnableModeration {
		moderator, err := newModerator(config, logger)
		if err != nil {
			_ = index.Close()
			return nil, nil, err
		}
		interactor.WithContentFilter(moderator)
	}

	return &app{
		interactor:  interactor,
		accounts:    services.NewAccountService(users),
		users:       users,
		posts:       posts,
		console:     console,
		searchLimit: config.SearchLimit,
	}, func() { _ = index.Close() }, nil
}

func newModerator(config Config, logger *slog.Logger) (*moderation.Moderator, error) {
	replacement, err := config.CharacterRune()
	if err != nil {
		return nil, err
	}
	censored, err := moderation.NewEmbeddedLoader().LoadAll(moderation.CensoredDir)
	if err != nil {
		return nil, fmt.Errorf("loading censored words: %w", err)
	}
	logger.Debug("Censored words loaded", "words", len(censored.Words), "languages", censored.Languages)
	return moderation.NewModerator(censored.Words, replacement, logger)
}
