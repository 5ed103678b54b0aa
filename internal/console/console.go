// Package console is the line-oriented terminal front end of the operator
// console. It drives the same workspaces as the HTTP surface.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/rules"
	"github.com/senabank/operator-console/internal/core/service"
)

// Sessions is the slice of service.AuthService the console uses.
type Sessions interface {
	Login(ctx context.Context, username, password string) (*service.LoginResult, error)
	Logout(ctx context.Context, id string) error
	Observe(ctx context.Context, session domain.Session, res domain.Result) bool
}

// Console reads one command per line and prints one result per command.
type Console struct {
	sessions Sessions
	out      io.Writer
	log      zerolog.Logger
	current  *service.LoginResult
}

func New(sessions Sessions, out io.Writer, log zerolog.Logger) *Console {
	return &Console{sessions: sessions, out: out, log: log}
}

// Run reads commands from in until EOF, "quit" or ctx is done. The open
// session, if any, is logged out on return.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	defer c.logout(context.WithoutCancel(ctx))

	c.println(domain.AwaitingMessage)
	scanner := bufio.NewScanner(in)
	for {
		c.prompt()
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if quit := c.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read console input: %w", err)
	}
	return nil
}

// Execute runs a single line. It returns true when the operator asked to quit.
func (c *Console) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit":
		return true
	case "help":
		c.help()
	case "login":
		c.login(ctx, args)
	case "logout":
		c.logout(ctx)
		c.println(domain.AwaitingMessage)
	case "approve":
		c.approve(ctx, args)
	default:
		v, ok := lookupVerb(name)
		if !ok {
			c.println(domain.InvalidInfoMessage)
			return false
		}
		kind, cmdArgs := v.parse(args)
		c.submit(ctx, kind, cmdArgs)
	}
	return false
}

func (c *Console) login(ctx context.Context, args []string) {
	c.logout(ctx)
	user, pass := arg(args, 0), arg(args, 1)
	res, err := c.sessions.Login(ctx, user, pass)
	if err != nil {
		c.println(domain.InvalidInfoMessage)
		return
	}
	c.current = res
	c.println(fmt.Sprintf("Logged in to the %s workspace. Type help for commands.", res.Workspace.Name()))
}

func (c *Console) logout(ctx context.Context) {
	if c.current == nil {
		return
	}
	if err := c.sessions.Logout(ctx, c.current.Session.ID); err != nil {
		c.log.Warn().Err(err).Msg("logout failed")
	}
	c.current = nil
}

func (c *Console) approve(ctx context.Context, args []string) {
	session, ws, ok := c.workspace()
	if !ok {
		c.println(domain.InvalidInfoMessage)
		return
	}
	decision, ok := parseDecision(arg(args, 1))
	if !ok {
		// No arguments: the role gate runs first, then the rules refuse the
		// missing approval.
		c.log.Debug().Str("decision", arg(args, 1)).Msg("unknown approval decision")
		c.finish(ctx, session, ws.Submit(ctx, session, domain.CmdApproveWithdrawal, nil))
		return
	}
	res := service.NewApprovalWorkflow(ws).Submit(ctx, session, rules.ParseRef(arg(args, 0)), decision)
	c.finish(ctx, session, res)
}

func (c *Console) submit(ctx context.Context, kind domain.CommandKind, args any) {
	session, ws, ok := c.workspace()
	if !ok {
		c.println(domain.InvalidInfoMessage)
		return
	}
	c.finish(ctx, session, ws.Submit(ctx, session, kind, args))
}

func (c *Console) finish(ctx context.Context, session domain.Session, res domain.Result) {
	c.print(res)
	if c.sessions.Observe(ctx, session, res) {
		c.current = nil
		c.println("Session expired. Please log in again.")
	}
}

func (c *Console) workspace() (domain.Session, *service.Workspace, bool) {
	if c.current == nil {
		return domain.Session{}, nil, false
	}
	return c.current.Session, c.current.Workspace, true
}

func (c *Console) help() {
	lines := []string{"login <username> <password>", "logout", "help", "quit"}
	if _, ws, ok := c.workspace(); ok {
		for _, v := range verbs {
			if ws.Offers(v.kinds[0]) {
				lines = append(lines, v.usage)
			}
		}
		if ws.Offers(domain.CmdApproveWithdrawal) {
			lines = append(lines, approveUsage)
		}
	}
	c.println(strings.Join(lines, "\n"))
}

func (c *Console) print(res domain.Result) {
	if !res.OK() {
		c.log.Debug().Err(res.Err()).Str("kind", string(res.Kind)).Msg("command failed")
	}
	c.println(res.Render())
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *Console) prompt() {
	name := "guest"
	if c.current != nil {
		name = c.current.Workspace.Name()
	}
	_, _ = fmt.Fprintf(c.out, "%s> ", name)
}
