// Command awe manages interactive wallpaper projects from the terminal.
//
// Usage:
//
//	awe [-config file] <command> [flags] [args]
//
// Run "awe help" for the list of commands. Settings come from the YAML
// file named by -config or AWE_CONFIG, and from AWE_PROJECTS_DIR and
// AWE_LOG_LEVEL.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aeyian/wallpaper"
	"github.com/aeyian/wallpaper/app"
	"github.com/aeyian/wallpaper/config"
	"github.com/aeyian/wallpaper/project"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// env is what every command receives.
type env struct {
	cfg    *config.Config
	store  *project.Store
	app    *app.App
	stdout io.Writer
}

// errUsage makes run print the command's usage.
var errUsage = errors.New("usage")

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("awe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML settings file (default $AWE_CONFIG)")
	fs.Usage = func() { printUsage(stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		printUsage(stderr)
		return 2
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	if name == "help" {
		printUsage(stdout)
		return 0
	}
	cmd, ok := lookup(name)
	if !ok {
		fmt.Fprintf(stderr, "awe: unknown command %q\n", name)
		printUsage(stderr)
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "awe: %v\n", err)
		return 1
	}
	level, _ := cfg.Level() // validated by Load
	wallpaper.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer wallpaper.SetLogger(nil)

	store := project.NewStore(cfg.ProjectsDir, cfg.StoreOptions()...)
	e := &env{
		cfg:    cfg,
		store:  store,
		app:    app.New(store, app.WithRenderOptions(cfg.RenderOptions()...)),
		stdout: stdout,
	}

	if err := cmd.run(e, rest); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "usage: awe %s %s\n", cmd.name, cmd.args)
			return 2
		}
		fmt.Fprintf(stderr, "awe %s: %v\n", cmd.name, err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: awe [-config file] <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-14s %s\n", c.name, c.summary)
	}
}
