package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	lumislog "github.com/fwojciec/lumi/slog"
	"github.com/fwojciec/lumi/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default local index path, used when --db and LUMI_DB are unset.
	DBPath string

	// SQLite database backing the local index. Opened only by commands that
	// need it.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lumi"),
		kong.Description("Local gateway for desktop file search and a local language model"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lumi --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.LogLevel)
	defer m.Close()

	if err := m.wire(ctx, cli, cmd, deps); err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// wire builds the collaborators cmd needs.
func (m *Main) wire(ctx context.Context, cli *CLI, cmd string, deps *Dependencies) error {
	logger := deps.Logger

	if cmd == "index" {
		if err := m.openDB(cli, deps.Stderr); err != nil {
			return err
		}
		files := sqlite.NewFileService(m.DB)
		deps.Index = lumislog.NewLoggingFileIndex(files, logger)
	}

	if needsModel(cmd) {
		model, err := newModel(ctx, cli, deps.Stderr)
		if err != nil {
			return err
		}
		deps.Asker = lumislog.NewLoggingAsker(model, logger)
		deps.ModelHealth = model
	}

	if needsSearcher(cmd) {
		searcher, err := m.newSearcher(cli, deps.Stderr)
		if err != nil {
			return err
		}
		deps.Searcher = lumislog.NewLoggingSearcher(searcher, logger)
		deps.SearchHealth = searcher
	}

	if deps.Searcher != nil && deps.Asker != nil {
		deps.Agent = newAgent(deps.Searcher, deps.Asker, logger)
	}

	if cmd == "serve" || cmd == "extract" {
		deps.Documents = lumislog.NewLoggingDocumentReader(newDocumentReader(), logger)
	}
	return nil
}

func (m *Main) openDB(cli *CLI, stderr io.Writer) error {
	if m.DB != nil {
		return nil
	}
	path := cli.DB
	if path == "" {
		path = m.DBPath
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		fmt.Fprintf(stderr, "Hint: Set LUMI_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return nil
}

func needsModel(cmd string) bool {
	switch cmd {
	case "serve", "agent", "ask", "health":
		return true
	}
	return false
}

func needsSearcher(cmd string) bool {
	switch cmd {
	case "serve", "agent", "search", "health":
		return true
	}
	return false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lumi.db"
	}
	dir := filepath.Join(home, ".lumi")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "lumi.db")
}
