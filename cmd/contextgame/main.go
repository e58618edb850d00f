// contextgame is a terminal game for practising context engineering.
// Pick a scenario, drag context items into the window and watch the
// metrics and feedback react.
//
// "contextgame report" scores one configuration without starting the
// TUI and prints the result as canonical JSON.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/nhle/context-game/internal/app"
	"github.com/nhle/context-game/internal/catalog"
	"github.com/nhle/context-game/internal/interaction"
	"github.com/nhle/context-game/internal/logging"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/session"
	"github.com/nhle/context-game/internal/theme"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options are the flags shared by the TUI and the report subcommand.
type options struct {
	configPath  string
	catalogPath string
	task        string
	logLevel    string
	logFile     string
	noMouse     bool
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", model.DefaultConfigPath(), "path to the YAML config file")
	fs.StringVar(&o.catalogPath, "catalog", "", "YAML or JSON scenario catalog (default: built-in)")
	fs.StringVar(&o.task, "task", "", "scenario id to start with")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&o.logFile, "log-file", "", "append JSON log records to this file")
}

// load reads the config file and applies flag overrides.
func (o *options) load(fs *pflag.FlagSet) (*model.AppConfig, error) {
	cfg, err := model.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	if fs.Changed("catalog") {
		cfg.Catalog.Path = o.catalogPath
	}
	if fs.Changed("task") {
		cfg.Session.DefaultTask = o.task
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if fs.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if o.noMouse {
		cfg.Interaction.Mouse = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadCatalog(cfg *model.AppConfig) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default()
	}
	return catalog.Load(cfg.Catalog.Path)
}

func run(args []string) error {
	if len(args) > 0 && args[0] == "report" {
		return runReport(args[1:], os.Stdout)
	}

	var opts options
	flagSet := pflag.NewFlagSet("contextgame", pflag.ContinueOnError)
	opts.addFlags(flagSet)
	flagSet.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse capture (keyboard only)")
	showVersion := flagSet.Bool("version", false, "print the version and exit")
	writeConfig := flagSet.Bool("write-config", false, "save the effective settings to --config and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if *showVersion {
		fmt.Println("contextgame", version)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := opts.load(flagSet)
	if err != nil {
		return err
	}
	if *writeConfig {
		if err := model.SaveConfig(opts.configPath, cfg); err != nil {
			return err
		}
		fmt.Println("wrote", opts.configPath)
		return nil
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	policy, err := interaction.ParseAddPolicy(cfg.Interaction.AddOn)
	if err != nil {
		return err
	}

	if err := theme.Apply(cfg.Display.Theme); err != nil {
		return err
	}

	tui := logging.NewTUIHandler(logging.TUILevel)
	logger, closer, err := logging.New(cfg.Log, tui)
	if err != nil {
		return err
	}
	defer closer.Close()

	s := session.New(cat, logger)
	if cfg.Session.DefaultTask != "" {
		if err := s.SetTask(cfg.Session.DefaultTask); err != nil {
			return err
		}
	}
	logger.Info("starting",
		"session_id", s.ID(), "task_id", s.Task().ID, "tasks", cat.Len(), "add_on", policy.String())

	root := app.New(s, app.Options{
		AddPolicy:    policy,
		ShowContent:  cfg.Display.ShowContent,
		PaletteWidth: cfg.Display.PaletteWidth,
		Logger:       logger,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Interaction.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(root, programOpts...)
	tui.SetProgram(program)

	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `contextgame: build a context window for an AI agent and see how it scores.

Usage:
  contextgame [flags]
  contextgame report --task ID --items a,b,c [--order-check]

Examples:
  # Play with the built-in scenarios
  contextgame

  # Start on a scenario from your own catalog
  contextgame --catalog scenarios.yaml --task code-review

  # Save the current flags as your defaults
  contextgame --task code-review --log-level info --write-config

  # Score a configuration from a script
  contextgame report --task customer-service --items cs-system,cs-user,cs-order-lookup

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
