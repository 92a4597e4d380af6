package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ecocity/internal/navigation"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	screen() navigation.Screen
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Go(ctx context.Context, target string) error
	Back(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Bins(ctx context.Context) error
	Nearest(ctx context.Context, args []string) error
	Classify(ctx context.Context, label string) error
	Rank(ctx context.Context, image string) error
	Say(ctx context.Context, text string) error
	Messages(ctx context.Context) error
}

// helpFor lists the commands that make sense on screen s.
func helpFor(s navigation.Screen) string {
	var cmds string
	switch s {
	case navigation.Auth:
		cmds = "register, login"
	case navigation.Main:
		cmds = "go <map|food|chat>, whoami, logout"
	case navigation.Map:
		cmds = "bins, nearest <lat> <lon>, back, whoami, logout"
	case navigation.Food:
		cmds = "classify <label>, rank [image], back, whoami, logout"
	case navigation.Chat:
		cmds = "say <text>, messages, back, whoami, logout"
	}
	return "Available commands: " + cmds + ", help, exit"
}

// runREPL starts a read–eval–print loop over reader.
//
// The first token of each line is the command; the rest of the line is its
// argument, kept verbatim for commands that take free text (say, classify).
// Errors returned by handlers are printed and the loop continues. The loop
// exits on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ecocity %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			printlnFn(helpFor(a.screen()))

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "go":
			if len(args) != 1 {
				printlnFn("Usage: go <screen>")
				continue
			}
			err = a.Go(ctx, args[0])

		case "back":
			err = a.Back(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "bins":
			err = a.Bins(ctx)

		case "nearest":
			err = a.Nearest(ctx, args)

		case "classify":
			err = a.Classify(ctx, rest)

		case "rank":
			err = a.Rank(ctx, rest)

		case "say":
			err = a.Say(ctx, rest)

		case "messages":
			err = a.Messages(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
