package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
)

type handler func(ctx context.Context, args []string) error

// command is one REPL verb. Commands with auth set are only offered and
// accepted after login.
type command struct {
	name  string
	usage string
	auth  bool
	run   handler
}

// runREPL starts a simple read–eval–print loop for the ERP CLI.
//
// It reads a line from reader, parses the first token as the command and
// passes the remaining tokens to its handler. The loop exits on EOF or when
// the user types "exit" or "quit".
//
// Errors returned by handlers are printed and the loop continues.
func runREPL(ctx context.Context, loggedIn func() bool, cmds []command, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	byName := make(map[string]command, len(cmds))
	for _, c := range cmds {
		byName[c.name] = c
	}

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "mdt %s> ", statusFn())

		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "help":
			printHelp(w, cmds, loggedIn())
			continue
		}

		c, ok := byName[name]
		switch {
		case !ok:
			fmt.Fprintln(w, "Unknown command:", name)
		case c.auth && !loggedIn():
			fmt.Fprintln(w, "Please login first")
		default:
			if err := c.run(ctx, args); err != nil {
				fmt.Fprintln(w, "error:", err)
			}
		}

		if err != nil {
			return
		}
	}
}

func printHelp(w io.Writer, cmds []command, loggedIn bool) {
	var lines []string
	for _, c := range cmds {
		if c.auth && !loggedIn {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-14s %s", c.name, c.usage))
	}
	sort.Strings(lines)
	fmt.Fprintln(w, "Available commands:")
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w, "  exit | quit")
}

func (a *App) getStatus() string {
	s := ""
	if p := a.client.Profile(); p != nil && a.isLoggedIn() {
		s = p.Name + " "
	}
	if m := a.currentMode(); m != "" {
		s += string(m)
	}
	if sess := a.chatSession(); sess != nil {
		if n := sess.Unread(); n > 0 {
			s += fmt.Sprintf(" chat:%d", n)
		}
	}
	s = strings.TrimSpace(s)
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) commands() []command {
	return []command{
		{name: "register", usage: "create an account", run: a.Register},
		{name: "login", usage: "sign in", run: a.Login},
		{name: "logout", usage: "sign out", auth: true, run: a.Logout},
		{name: "profiles", usage: "list registered profiles", auth: true, run: a.Profiles},

		{name: "clients", usage: "[search] list clients", auth: true, run: a.Clients},
		{name: "client", usage: "<id> show a client", auth: true, run: a.ShowClient},
		{name: "addclient", usage: "create a client", auth: true, run: a.AddClient},
		{name: "contracts", usage: "<client id> list contracts", auth: true, run: a.Contracts},
		{name: "addcontract", usage: "<client id> create a contract", auth: true, run: a.AddContract},
		{name: "items", usage: "<contract id> list service items", auth: true, run: a.Items},
		{name: "additem", usage: "<contract id> add a service item", auth: true, run: a.AddItem},
		{name: "edititem", usage: "<contract id> <item id> edit an item", auth: true, run: a.EditItem},
		{name: "measure", usage: "<item id> [proof file] add a measurement", auth: true, run: a.Measure},
		{name: "measurements", usage: "<item id> list measurements", auth: true, run: a.Measurements},

		{name: "workflow", usage: "<contract id> <item id> update status and dates", auth: true, run: a.Workflow},
		{name: "history", usage: "<item id> comments and attachments", auth: true, run: a.ItemHistory},
		{name: "comment", usage: "<item id> <text> comment an item", auth: true, run: a.CommentItem},
		{name: "attach", usage: "<item id> <file> attach a file to an item", auth: true, run: a.AttachItem},

		{name: "tasks", usage: "list tasks", auth: true, run: a.Tasks},
		{name: "addtask", usage: "create a task", auth: true, run: a.AddTask},
		{name: "task", usage: "<id> task comments and attachments", auth: true, run: a.ShowTask},
		{name: "taskstatus", usage: "<id> <status> change task status", auth: true, run: a.TaskStatus},
		{name: "taskcomment", usage: "<id> <text> comment a task", auth: true, run: a.CommentTask},
		{name: "taskattach", usage: "<id> <file> attach a file to a task", auth: true, run: a.AttachTask},

		{name: "docs", usage: "<contract id> list contract documents", auth: true, run: a.Documents},
		{name: "adddoc", usage: "<contract id> <file> [name] upload a document", auth: true, run: a.AddDocument},
		{name: "download", usage: "<key> signed download link", auth: true, run: a.Download},
		{name: "dashboard", usage: "summary", auth: true, run: a.Dashboard},
		{name: "export", usage: "<contract id> items as CSV", auth: true, run: a.Export},

		{name: "chat", usage: "open the chat panel", auth: true, run: a.OpenChat},
		{name: "close", usage: "close the chat panel", auth: true, run: a.CloseChat},
		{name: "dm", usage: "[user id] private conversation, none for general", auth: true, run: a.SelectPeer},
		{name: "say", usage: "<text> send to the active conversation", auth: true, run: a.Say},
		{name: "online", usage: "who is online", auth: true, run: a.Online},
	}
}
