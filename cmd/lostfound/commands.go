package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"lost-found/domain"
	"lost-found/presenter"
	"lost-found/repositories"
	"lost-found/services"
	"sort"
	"strings"
)

var (
	errUsage     = stderrors.New("usage")
	errPresented = stderrors.New("reported by the presenter")
)

func isUsage(err error) bool {
	return stderrors.Is(err, errUsage) || stderrors.Is(err, flag.ErrHelp)
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

type command struct {
	summary string
	run     func(a *app, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"chats":    {"chats -user NAME: list the chats of a user", (*app).chats},
	"create":   {"create NAME NAME...: open a chat between users", (*app).create},
	"send":     {"send -user NAME -chat ID TEXT...: send a message", (*app).send},
	"messages": {"messages -user NAME -chat ID: show a chat", (*app).messages},
	"block":    {"block -chat ID: block a chat", (*app).block},
	"unblock":  {"unblock -chat ID: unblock a chat", (*app).unblock},
	"exists":   {"exists NAME NAME: tell whether two users share a chat", (*app).exists},
	"signup":   {"signup -user NAME -email EMAIL -password PASSWORD: create an account", (*app).signup},
	"login":    {"login -user NAME -password PASSWORD: check credentials", (*app).login},
	"rename":   {"rename -from NAME -to NAME: change a username", (*app).rename},
	"post":     {"post -user NAME -kind lost|found -title TITLE [-description D] [-location L]: publish a listing", (*app).post},
	"search":   {"search [-limit N] [QUERY...]: find listings, all of them without a query", (*app).search},
	"resolve":  {"resolve -post ID: mark a listing as resolved", (*app).resolve},
}

type app struct {
	interactor  *services.ChatInteractor
	accounts    services.IAccountService
	users       repositories.IUserRepository
	posts       repositories.IPostRepository
	console     *presenter.Console
	searchLimit int
}

func (a *app) execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command\n%s", usage())
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return usageError("unknown command %q\n%s", args[0], usage())
	}
	return cmd.run(a, ctx, args[1:])
}

func usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("commands:")
	for _, name := range names {
		b.WriteString("\n  " + commands[name].summary)
	}
	return b.String()
}

func flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *app) chats(ctx context.Context, args []string) error {
	fs := flags("chats")
	user := fs.String("user", "", "acting username")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" {
		return usageError("chats needs -user")
	}
	return resultError(a.interactor.LoadChats(ctx, *user).Error)
}

func (a *app) create(ctx context.Context, args []string) error {
	participants := fields(args)
	if len(participants) == 2 && a.interactor.ChatExistsBetweenUsers(ctx, participants[0], participants[1]) {
		a.console.PresentInfo(fmt.Sprintf("%s and %s already share a chat", participants[0], participants[1]))
		return resultError(a.interactor.LoadChats(ctx, participants[0]).Error)
	}
	return resultError(a.interactor.CreateChat(ctx, participants).Error)
}

func (a *app) send(ctx context.Context, args []string) error {
	fs := flags("send")
	user := fs.String("user", "", "acting username")
	chatID := fs.String("chat", "", "chat id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chatID != "" && a.interactor.IsChatBlocked(ctx, *chatID) {
		a.console.PresentError("This chat is blocked")
		return nil
	}
	return resultError(a.interactor.SendMessage(ctx, *chatID, *user, strings.Join(fs.Args(), " ")).Error)
}

func (a *app) messages(ctx context.Context, args []string) error {
	fs := flags("messages")
	user := fs.String("user", "", "acting username")
	chatID := fs.String("chat", "", "chat id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return resultError(a.interactor.LoadMessages(ctx, *chatID, *user).Error)
}

func (a *app) block(ctx context.Context, args []string) error {
	return a.setBlocked(ctx, "block", args, true)
}

func (a *app) unblock(ctx context.Context, args []string) error {
	return a.setBlocked(ctx, "unblock", args, false)
}

func (a *app) setBlocked(ctx context.Context, name string, args []string, blocked bool) error {
	fs := flags(name)
	chatID := fs.String("chat", "", "chat id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chatID == "" {
		return usageError("%s needs -chat", name)
	}
	a.interactor.UpdateChatIsBlocked(ctx, *chatID, blocked)
	a.console.PresentInfo(fmt.Sprintf("Chat %s blocked: %t", *chatID, blocked))
	return nil
}

func (a *app) exists(ctx context.Context, args []string) error {
	users := fields(args)
	if len(users) != 2 {
		return usageError("exists needs two usernames")
	}
	a.console.PresentInfo(fmt.Sprintf("%t", a.interactor.ChatExistsBetweenUsers(ctx, users[0], users[1])))
	return nil
}

func (a *app) signup(ctx context.Context, args []string) error {
	fs := flags("signup")
	user := fs.String("user", "", "username")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	created, err := a.accounts.Signup(ctx, *user, *email, *password)
	if err != nil {
		return err
	}
	a.console.PresentInfo(fmt.Sprintf("Welcome %s", created.Username))
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flags("login")
	user := fs.String("user", "", "username")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	found, err := a.accounts.Login(ctx, *user, *password)
	if err != nil {
		return err
	}
	a.console.PresentInfo(fmt.Sprintf("Credentials of %s are valid", found.Username))
	return nil
}

func (a *app) rename(ctx context.Context, args []string) error {
	fs := flags("rename")
	from := fs.String("from", "", "current username")
	to := fs.String("to", "", "new username")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.users.RenameUser(ctx, *from, *to); err != nil {
		return err
	}
	a.console.PresentInfo(fmt.Sprintf("%s is now %s", *from, *to))
	return nil
}

func (a *app) post(ctx context.Context, args []string) error {
	fs := flags("post")
	user := fs.String("user", "", "author username")
	kind := fs.String("kind", string(domain.PostLost), "lost or found")
	title := fs.String("title", "", "short title")
	description := fs.String("description", "", "details")
	location := fs.String("location", "", "where")
	if err := fs.Parse(args); err != nil {
		return err
	}
	created, err := a.posts.CreatePost(ctx, *user, domain.PostKind(*kind), *title, *description, *location)
	if err != nil {
		return err
	}
	a.console.PresentPosts([]domain.Post{created})
	return nil
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := flags("search")
	limit := fs.Int("limit", a.searchLimit, "maximum number of listings")
	if err := fs.Parse(args); err != nil {
		return err
	}
	a.console.PresentPosts(a.posts.SearchPosts(ctx, strings.Join(fs.Args(), " "), *limit))
	return nil
}

func (a *app) resolve(ctx context.Context, args []string) error {
	fs := flags("resolve")
	postID := fs.String("post", "", "post id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.posts.MarkResolved(ctx, *postID); err != nil {
		return err
	}
	a.console.PresentInfo(fmt.Sprintf("Post %s resolved", *postID))
	return nil
}

// resultError turns an error already shown by the presenter into a failing exit.
func resultError(message string) error {
	if message == "" {
		return nil
	}
	return fmt.Errorf("%w: %s", errPresented, message)
}

// fields accepts both "alice bob" and "alice,bob".
func fields(args []string) []string {
	var out []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
