package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Add(ctx context.Context, text string) error
	Type(ctx context.Context, text string) error
	Submit(ctx context.Context) error
	Toggle(ctx context.Context, ref string) error
	Delete(ctx context.Context, ref string) error
	ClearCompleted(ctx context.Context) error
	Filter(ctx context.Context, name string) error
}

const helpText = "Available commands: (l)ist, add <text>, type <text>, submit, toggle <n|id>, delete <n|id>, clear, filter <all|active|completed>, exit"

// runREPL starts a read–eval–print loop over the todo list.
//
// It reads a line from the provided scanner, parses the first token as the
// command and passes the rest of the line to the matching method on 'a'.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
// The "todo> " prompt is printed only when prompt is true.
//
// Commands
//
//	help                 show available commands
//	list | l             print the list
//	add <text>           add a todo
//	type <text>          put text into the new todo buffer
//	submit               add the buffered text as a todo
//	toggle <n|id>        flip completion of a todo
//	delete <n|id>        delete a todo
//	clear                delete all completed todos
//	filter <name>        show all, active or completed todos
//	exit | quit          leave the program
//
// Command errors are printed and the loop continues. Cancelling ctx ends the
// loop before the next command runs, even while it waits for input.
func runREPL(ctx context.Context, a execIface, prompt bool, scanner *bufio.Scanner) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := scanLines(ctx, scanner)

	for {
		if ctx.Err() != nil {
			return
		}
		if prompt {
			printFn("todo> ")
		}

		var line string
		select {
		case <-ctx.Done():
			return
		case l, ok := <-lines:
			if !ok {
				return
			}
			line = l
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		if cmd == "" {
			continue
		}
		arg = strings.TrimSpace(arg)

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			err = a.List(ctx)

		case "add":
			err = a.Add(ctx, arg)

		case "type":
			err = a.Type(ctx, arg)

		case "submit":
			err = a.Submit(ctx)

		case "toggle":
			err = a.Toggle(ctx, arg)

		case "delete":
			err = a.Delete(ctx, arg)

		case "clear":
			err = a.ClearCompleted(ctx)

		case "filter":
			err = a.Filter(ctx, arg)

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

// scanLines feeds scanner lines into a channel so the REPL can wait on input
// and ctx at the same time. The channel is closed on EOF or cancellation.
func scanLines(ctx context.Context, scanner *bufio.Scanner) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
