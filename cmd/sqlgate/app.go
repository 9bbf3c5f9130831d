package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/config"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/db"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/logging"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/styles"
)

var version = "dev"

type App struct {
	args []string
}

func NewApp() *App {
	return &App{
		args: os.Args[1:],
	}
}

func (a *App) Run() {
	command := "serve"
	if len(a.args) > 0 {
		command = a.args[0]
		a.args = a.args[1:]
	}

	switch command {
	case "serve":
		a.handleServe()
	case "query", "run":
		a.handleQuery()
	case "version":
		fmt.Println("sqlgate", version)
	case "help", "-h", "--help":
		a.handleHelp()
	default:
		printError("Unknown command: %s", command)
		a.printUsage()
		os.Exit(1)
	}
}

func (a *App) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("sqlgate serve [-config <file>]")
	fmt.Println("sqlgate query [-config <file>] [-format table|csv|tsv|json|markdown] <sql>")
	fmt.Println("sqlgate version")
}

// parseFlags parses the flags shared by serve and query, plus any registered
// by extra, and returns the remaining positional arguments.
func (a *App) parseFlags(name string, extra func(*flag.FlagSet)) (configPath string, rest []string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&configPath, "config", "", "path to a config file (yaml, toml or json)")
	if extra != nil {
		extra(fs)
	}
	fs.Usage = a.printUsage
	_ = fs.Parse(a.args)
	return configPath, fs.Args()
}

// bootstrap loads configuration and builds the logger and the backend
// factory used by every command. Console logs go to logOut.
func bootstrap(configPath string, logOut io.Writer) (*config.Config, *zap.Logger, db.Factory) {
	cfg, err := config.Load(configPath)
	if err != nil {
		printError("Could not load configuration: %v", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log, logOut)
	if err != nil {
		printError("Could not build logger: %v", err)
		os.Exit(1)
	}

	factory, err := db.CreateFactory(cfg.Database)
	if err != nil {
		logger.Fatal("could not prepare database factory", zap.Error(err))
	}
	return cfg, logger, factory
}

func printError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styles.Error.Render("✗ "+fmt.Sprintf(format, args...)))
}
