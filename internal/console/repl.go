package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ums-console/internal/directory"
	"ums-console/internal/form"
	"ums-console/internal/prefs"
	"ums-console/internal/session"
)

// Console is the interactive user-management view: one REPL over the
// directory repository, the two modal flows, and the sidebar
// preference.
type Console struct {
	repo    *directory.Repository
	view    *View
	engine  *form.Engine
	session *session.Accessor
	sidebar *prefs.SidebarSync
	reader  *bufio.Reader

	loadErr error
}

var errExit = errors.New("exit")

func New(repo *directory.Repository, sess *session.Accessor, sidebar *prefs.SidebarSync, reader *bufio.Reader) *Console {
	return &Console{
		repo:    repo,
		view:    NewView(repo.Cache()),
		engine:  form.NewEngine(repo),
		session: sess,
		sidebar: sidebar,
		reader:  reader,
	}
}

// View exposes the filter state, mainly for tests.
func (c *Console) View() *View {
	return c.view
}

// Run mounts the view and starts the command loop. A missing session
// token is a fatal precondition: the user is sent back to login.
func (c *Console) Run(ctx context.Context) error {
	if _, err := c.session.Token(ctx); err != nil {
		fmt.Println("Not logged in. Redirecting to login.")
		return err
	}

	fmt.Println("User Management Console")
	if claims, err := c.session.Claims(ctx); err == nil {
		line := fmt.Sprintf("Logged in as: %s (%s)", claims.Username(), claims.Role)
		if claims.Expired(time.Now()) {
			line += " — session expired, remote calls will be rejected"
		}
		fmt.Println(line)
	}
	fmt.Println("Type /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	c.refresh(ctx)
	c.printList()

	for {
		fmt.Print("ums> ")
		raw, err := c.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.HasPrefix(raw, "/") {
			fmt.Println("Commands start with '/'. Try /help.")
			continue
		}

		if err := c.dispatch(ctx, raw); err != nil {
			if err == errExit || errors.Is(err, directory.ErrUnauthorized) || errors.Is(err, session.ErrNoToken) {
				if err != errExit {
					fmt.Println("Authentication error. Redirecting to login.")
				}
				return nil
			}
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func (c *Console) dispatch(ctx context.Context, input string) error {
	tokens := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(tokens) == 0 {
		return nil
	}
	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch cmd {
	case "list", "ls":
		c.printList()

	case "search":
		c.view.Search = strings.Join(args, " ")
		c.printList()

	case "role":
		role := strings.Join(args, " ")
		if role != "" && !directory.ValidRole(role) {
			fmt.Printf("Unknown role %q. Roles: %s\n", role, strings.Join(directory.Roles, ", "))
			return nil
		}
		c.view.RoleFilter = role
		c.printList()

	case "system":
		system := ""
		if len(args) > 0 {
			system = strings.ToUpper(args[0])
		}
		if system != "" && !directory.ValidSystem(system) {
			fmt.Printf("Unknown system %q. Systems: %s\n", system, strings.Join(directory.Systems, ", "))
			return nil
		}
		c.view.SystemFilter = system
		c.printList()

	case "clear-filters":
		c.view.ClearFilters()
		c.printList()

	case "view":
		id, err := idArg(args)
		if err != nil {
			fmt.Println("Usage: /view <id>")
			return nil
		}
		emp, ok := c.repo.Cache().Get(id)
		if !ok {
			fmt.Printf("No employee with id %d in the current listing.\n", id)
			return nil
		}
		printEmployee(emp)

	case "add":
		return c.runAddWizard(ctx)

	case "edit":
		id, err := idArg(args)
		if err != nil {
			fmt.Println("Usage: /edit <id>")
			return nil
		}
		emp, ok := c.repo.Cache().Get(id)
		if !ok {
			fmt.Printf("No employee with id %d in the current listing.\n", id)
			return nil
		}
		return c.runEditWizard(ctx, emp)

	case "archive":
		id, err := idArg(args)
		if err != nil {
			fmt.Println("Usage: /archive <id>")
			return nil
		}
		return c.archive(ctx, id)

	case "refresh":
		c.refresh(ctx)
		c.printList()

	case "sidebar":
		return c.sidebarCmd(ctx, args)

	case "whoami":
		claims, err := c.session.Claims(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("User: %s\nRole: %s\n", claims.Username(), claims.Role)
		if claims.ExpiresAt != nil {
			fmt.Printf("Session expires: %s\n", claims.ExpiresAt.Format(time.RFC1123))
		}

	case "logout":
		if !c.confirm("Log out and clear the stored session?") {
			return nil
		}
		if err := c.session.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return errExit

	case "help":
		printHelp()

	case "exit", "quit":
		return errExit

	default:
		fmt.Printf("Unknown command /%s. Try /help.\n", cmd)
	}
	return nil
}

// refresh reloads the cache from the service. Failures leave the
// previous listing in place and are shown as an inline error state.
func (c *Console) refresh(ctx context.Context) {
	_, err := c.repo.List(ctx)
	c.loadErr = err
}

func (c *Console) printList() {
	if c.loadErr != nil {
		fmt.Printf("Error: %v\n", describeLoadError(c.loadErr))
		return
	}
	printEmployees(c.view.VisibleRows(), c.filterLine())
}

func (c *Console) filterLine() string {
	var parts []string
	if c.view.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", c.view.Search))
	}
	if c.view.RoleFilter != "" {
		parts = append(parts, "role="+c.view.RoleFilter)
	}
	if c.view.SystemFilter != "" {
		parts = append(parts, "system="+c.view.SystemFilter)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ")
}

// archive confirms, disables remotely, and leaves the row in the
// listing with its status flipped. Archived is not deleted.
func (c *Console) archive(ctx context.Context, id int) error {
	emp, ok := c.repo.Cache().Get(id)
	if !ok {
		fmt.Printf("No employee with id %d in the current listing.\n", id)
		return nil
	}
	if emp.Disabled {
		fmt.Printf("%s is already Inactive.\n", emp.FullName)
		return nil
	}
	if !c.confirm(fmt.Sprintf("Archive %s? This will set their status to Inactive.", emp.FullName)) {
		fmt.Println("Archive cancelled.")
		return nil
	}

	if err := c.repo.Disable(ctx, id); err != nil {
		if errors.Is(err, directory.ErrUnauthorized) {
			return err
		}
		fmt.Println("Failed to archive employee")
		return nil
	}
	fmt.Println("Employee archived successfully!")
	c.printList()
	return nil
}

func (c *Console) sidebarCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Printf("Sidebar collapsed: %v\n", c.sidebar.Read(ctx))
		return nil
	}
	var collapsed bool
	switch strings.ToLower(args[0]) {
	case "on", "true":
		collapsed = true
	case "off", "false":
		collapsed = false
	default:
		fmt.Println("Usage: /sidebar [on|off]")
		return nil
	}
	if err := c.sidebar.Write(ctx, collapsed); err != nil {
		return err
	}
	fmt.Printf("Sidebar collapsed: %v\n", collapsed)
	return nil
}

func (c *Console) confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	raw, err := c.reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(raw))
	return answer == "y" || answer == "yes"
}

func idArg(args []string) (int, error) {
	if len(args) < 1 {
		return 0, errors.New("missing id")
	}
	return strconv.Atoi(args[0])
}

func describeLoadError(err error) string {
	// Malformed payloads read as a generic fetch failure to the user
	var decodeErr *directory.DecodeError
	if errors.As(err, &decodeErr) {
		return "Failed to fetch data"
	}
	var fetchErr *directory.FetchError
	if errors.As(err, &fetchErr) && fetchErr.Status != 0 {
		return fmt.Sprintf("Failed to fetch data: %d", fetchErr.Status)
	}
	return err.Error()
}
