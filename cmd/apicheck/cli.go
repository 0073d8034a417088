package main

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/apicheck"
	"github.com/fwojciec/apicheck/check"
	"github.com/fwojciec/apicheck/fs"
	apicheckhttp "github.com/fwojciec/apicheck/http"
)

// ErrGapsFound is returned by the diff command when at least one item does
// not implement its reference API.
var ErrGapsFound = errors.New("conformance gaps found")

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Info    *apicheck.Info
	Checker *check.Checker
	Runs    apicheck.RunService
}

// Vars returns the values interpolated into the CLI flag defaults.
func Vars() kong.Vars {
	return kong.Vars{
		"info":     fs.DefaultInfoPath,
		"doc_root": fs.DefaultDocRoot,
		"timeout":  apicheckhttp.DefaultFetchTimeout.String(),
		"rate":     strconv.FormatFloat(check.DefaultRequestsPerSecond, 'f', -1, 64),
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Info    string        `short:"i" default:"${info}" env:"APICHECK_INFO" help:"Checker configuration file (JSON or YAML)"`
	DocRoot string        `default:"${doc_root}" env:"APICHECK_DOC_ROOT" help:"Directory cargo doc writes to"`
	Timeout time.Duration `short:"t" default:"${timeout}" help:"Reference fetch timeout"`
	Rate    float64       `default:"${rate}" env:"APICHECK_RATE" help:"Reference requests per second per host (0 disables limiting)"`
	Verbose bool          `short:"v" help:"Log pipeline steps to stderr"`
	DB      string        `name:"db" env:"APICHECK_DB" help:"Run history database (default: ~/.apicheck/history.db)"`

	List    ListCmd    `cmd:"" help:"List configured items"`
	API     APICmd     `cmd:"" name:"api" help:"Print the API surface of an item"`
	Diff    DiffCmd    `cmd:"" help:"Check items against their reference documentation"`
	History HistoryCmd `cmd:"" help:"Show recorded check runs"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// APICmd is the "api" subcommand.
type APICmd struct {
	Item string `arg:"" help:"Item name"`
	Kind string `arg:"" help:"Page to read: reference (or std) or local"`
	JSON bool   `help:"Print the surface as JSON"`
}

// DiffCmd is the "diff" subcommand.
type DiffCmd struct {
	Items       []string `arg:"" optional:"" help:"Items to check"`
	All         bool     `short:"a" help:"Check every configured item"`
	Record      bool     `short:"r" help:"Record the outcome in the run history"`
	Concurrency int      `short:"c" default:"4" help:"Items checked in parallel"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Item  string `arg:"" optional:"" help:"Only show runs of this item"`
	Limit int    `short:"n" default:"20" help:"Maximum number of runs to show"`
}
