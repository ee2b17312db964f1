// cmd/mlscaffold/main.go
//
// Entry point for the mlscaffold CLI.
//
// Subcommands:
//   init  create the project layout (default when no subcommand is given)
//   plan  show what init would do without touching the filesystem
//   meta  print the package metadata as YAML

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/mlscaffold/internal/config"
	"github.com/kingrea/mlscaffold/internal/logging"
	"github.com/kingrea/mlscaffold/internal/pkgmeta"
	"github.com/kingrea/mlscaffold/internal/scaffold"
	"github.com/kingrea/mlscaffold/internal/tui"
)

const usageText = `mlscaffold - initialize a machine-learning project layout

usage: mlscaffold [command] [options]

commands:
  init    create missing layout directories and empty files (default)
  plan    show what init would create
  meta    print package metadata as YAML

run 'mlscaffold <command> -h' for command-specific options.
`

var errUsage = errors.New("usage error")

// previewRunner runs the interactive confirmation; replaced in tests.
var previewRunner = func(p *tui.Preview) (bool, error) {
	final, err := tea.NewProgram(p).Run()
	if err != nil {
		return false, err
	}
	return final.(*tui.Preview).Confirmed(), nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := "init"
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "init":
		err = runInit(args, stdout, stderr)
	case "plan":
		err = runPlan(args, stdout, stderr)
	case "meta":
		err = runMeta(args, stdout, stderr)
	case "help":
		fmt.Fprint(stdout, usageText)
		return 0
	default:
		fmt.Fprint(stderr, usageText)
		fmt.Fprintf(stderr, "Error: unknown command %q\n", cmd)
		return 2
	}

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet("mlscaffold "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	root := fs.String("root", "", "project directory (defaults to cwd)")
	return fs, root
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	return nil
}

func loadConfig(root string) (*config.Config, error) {
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project dir: %w", err)
	}
	return config.NewConfig(abs)
}

func runInit(args []string, stdout, stderr io.Writer) error {
	fs, root := newFlagSet("init", stderr)
	interactive := fs.Bool("interactive", false, "preview the layout and ask before creating anything")
	logFile := fs.String("log-file", "", "also append log lines to this file")
	if err := parse(fs, args); err != nil {
		return err
	}
	cfg, err := loadConfig(*root)
	if err != nil {
		return err
	}
	entries := scaffold.Entries(cfg.Entries())

	if *interactive {
		steps, err := scaffold.Plan(cfg.ProjectDir, entries)
		if err != nil {
			return err
		}
		ok, err := previewRunner(tui.NewPreview(steps))
		if err != nil {
			return fmt.Errorf("run preview: %w", err)
		}
		if !ok {
			fmt.Fprintln(stdout, "Aborted; nothing was created.")
			return nil
		}
	}

	log := logging.New(stderr)
	if *logFile != "" {
		if err := log.OpenFile(*logFile); err != nil {
			return err
		}
		defer log.Close()
	}

	result, err := scaffold.New(cfg.ProjectDir, log).Run(entries)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, tui.RenderSummary(result))
	return nil
}

func runPlan(args []string, stdout, stderr io.Writer) error {
	fs, root := newFlagSet("plan", stderr)
	if err := parse(fs, args); err != nil {
		return err
	}
	cfg, err := loadConfig(*root)
	if err != nil {
		return err
	}
	steps, err := scaffold.Plan(cfg.ProjectDir, scaffold.Entries(cfg.Entries()))
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, tui.RenderPlan(steps))
	return nil
}

func runMeta(args []string, stdout, stderr io.Writer) error {
	fs, root := newFlagSet("meta", stderr)
	if err := parse(fs, args); err != nil {
		return err
	}
	cfg, err := loadConfig(*root)
	if err != nil {
		return err
	}
	meta, err := pkgmeta.Describe(cfg.ProjectDir, cfg.Package())
	if err != nil {
		return err
	}
	return pkgmeta.Render(stdout, meta)
}
