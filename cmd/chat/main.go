package main

import (
	"bufio"
	"chat-rpc/client"
	"chat-rpc/domain/chat"
	"chat-rpc/runtime/workers"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const usage = `usage: chat [-binder host:port] <command> [args]

commands:
  register <username>      register a new user
  rooms                    list the rooms
  users <room>             list the members of a room
  create <room>            create a room
  join <username> <room>   join a room, then type messages ("@user text" for a direct message)`

func main() {
	code, err := run(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chat: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string, in io.Reader, out io.Writer) (int, error) {
	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	flags := flag.NewFlagSet("chat", flag.ContinueOnError)
	binderAddr := flags.String("binder", config.BinderAddr, "binder address")
	interval := flags.Duration("interval", config.PollInterval, "poll interval in a room")
	flags.Usage = func() { fmt.Fprintln(flags.Output(), usage) }
	if err := flags.Parse(args); err != nil {
		return exitConfig, err
	}
	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return exitConfig, errors.New("missing command")
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	binderConn, err := grpc.NewClient(*binderAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitConfig, fmt.Errorf("binder client: %w", err)
	}
	defer func() { _ = binderConn.Close() }()

	resolver := client.NewResolver(client.NewBinderClient(binderConn))
	defer func() { _ = resolver.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := command{
		log:     logger,
		chat:    client.NewChatClient(resolver),
		printer: printer{out: out, colours: config.Colours},
		config:  config,
	}
	c.config.PollInterval = *interval

	if err := c.dispatch(ctx, rest[0], rest[1:], in); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

type command struct {
	log     *slog.Logger
	chat    *client.ChatClient
	printer printer
	config  Config
}

func (c command) dispatch(ctx context.Context, name string, args []string, in io.Reader) error {
	callCtx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
	defer cancel()

	switch {
	case name == "register" && len(args) == 1:
		msg, err := c.chat.RegisterUser(callCtx, args[0])
		if err != nil {
			return err
		}
		c.printer.info("%s", msg)
	case name == "rooms" && len(args) == 0:
		rooms, ok, err := c.chat.ListRooms(callCtx)
		if err != nil {
			return err
		}
		if !ok {
			c.printer.info("no rooms available")
			return nil
		}
		c.printer.list("Room", rooms)
	case name == "users" && len(args) == 1:
		users, err := c.chat.ListUsers(callCtx, args[0])
		if err != nil {
			return err
		}
		c.printer.list("User", users)
	case name == "create" && len(args) == 1:
		_, msg, err := c.chat.CreateRoom(callCtx, args[0])
		if err != nil {
			return err
		}
		c.printer.info("%s", msg)
	case name == "join" && len(args) == 2:
		cancel()
		return c.session(ctx, args[0], args[1], in)
	default:
		fmt.Fprintln(c.printer.out, usage)
		return fmt.Errorf("unknown command or arguments: %s", name)
	}
	return nil
}

// session joins a room, prints what arrives and sends every input line,
// until the input ends or the process is interrupted.
func (c command) session(ctx context.Context, username, room string, in io.Reader) error {
	joinCtx, cancelJoin := context.WithTimeout(ctx, c.config.CallTimeout)
	joined, err := c.chat.JoinRoom(joinCtx, username, room)
	cancelJoin()
	if err != nil {
		return err
	}
	c.printer.me = username
	for _, m := range joined.History {
		c.printer.message(m)
	}

	poller := client.NewPoller(c.log, c.chat, username, room, c.config.PollInterval)
	poller.Skip(joined.History)

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sup := workers.NewSupervisor(c.log)
	supDone := make(chan struct{})
	go func() {
		sup.Add(poller).Run(sessionCtx)
		close(supDone)
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-sessionCtx.Done():
				return
			}
		}
	}()

	left := false
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case m := <-poller.Messages():
			c.printer.message(m)
		case users := <-poller.Members():
			c.printer.members(users)
		case line, ok := <-lines:
			if !ok {
				break loop
			}
			destination, content := parseInput(line)
			if content == "" {
				continue
			}
			sendCtx, cancelSend := context.WithTimeout(ctx, c.config.CallTimeout)
			_, err := c.chat.SendMessage(sendCtx, username, room, content, destination)
			cancelSend()
			if err != nil {
				c.printer.info("not sent: %v", err)
				continue
			}
			if content == chat.ExitSentinel {
				left = true
				break loop
			}
		}
	}

	sup.Stop()
	cancel()
	<-supDone

	if left {
		c.printer.info("%s left %s", username, room)
		return nil
	}
	// Leave even when interrupted, ctx may already be done.
	leaveCtx, cancelLeave := context.WithTimeout(context.WithoutCancel(ctx), c.config.CallTimeout)
	defer cancelLeave()
	msg, err := c.chat.LeaveRoom(leaveCtx, username, room)
	if err != nil {
		return err
	}
	c.printer.info("%s", msg)
	return nil
}
