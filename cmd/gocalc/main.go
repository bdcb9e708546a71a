package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
)

type cli struct {
	Once        bool     `help:"Evaluate a single line and stop."`
	ExitOnError bool     `help:"Stop at the first line that fails."`
	AST         bool     `name:"ast" help:"Print the syntax tree of each expression."`
	Tokens      bool     `help:"Print the tokens of each expression."`
	Prompt      string   `default:"in> " help:"Prompt shown when reading from a terminal."`
	NoPrompt    bool     `help:"Never show the prompt."`
	Log         string   `type:"path" help:"Write a debug log to this file."`
	Expr        []string `arg:"" optional:"" help:"Expressions to evaluate instead of reading standard input."`
}

func newParser(c *cli, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(c, append([]kong.Option{
		kong.Name("gocalc"),
		kong.Description("Evaluate integer arithmetic expressions, one per line."),
		kong.UsageOnError(),
	}, options...)...)
}

func run(ctx context.Context, c *cli, logger *log.Logger, in io.Reader, out io.Writer, interactive bool) int {
	r := gocalc.NewREPL(in, out)
	r.Log = logger
	r.Once = c.Once
	r.ExitOnError = c.ExitOnError
	r.ShowAST = c.AST
	r.ShowTokens = c.Tokens
	r.Prompt = c.Prompt
	if !interactive || c.NoPrompt {
		r.Prompt = ""
	}
	if len(c.Expr) > 0 {
		return evalArgs(r, c.Expr, logger)
	}

	stats, err := r.Run(ctx)
	logger.Printf("%d lines, %d failed", stats.Lines, stats.Failed)
	if err != nil {
		fmt.Fprintf(out, "%s%v\n", gocalc.ErrorMarker, err)
		return 1
	}
	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// evalArgs evaluates each argument as one expression, exactly as given.
func evalArgs(r *gocalc.REPL, exprs []string, logger *log.Logger) int {
	var stats gocalc.Stats
	for _, expr := range exprs {
		stats.Lines++
		if _, err := r.Eval(expr); err != nil {
			stats.Failed++
			if r.ExitOnError {
				break
			}
		}
		if r.Once {
			break
		}
	}
	logger.Printf("%d arguments, %d failed", stats.Lines, stats.Failed)
	if stats.Failed > 0 {
		return 1
	}
	return 0
}

func main() {
	var c cli
	parser, err := newParser(&c)
	if err != nil {
		log.Fatal(err)
	}
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger := log.New(io.Discard, "", 0)
	if c.Log != "" {
		f, err := os.OpenFile(c.Log, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal(err)
		}
		logger = log.New(f, "gocalc: ", log.LstdFlags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	code := run(ctx, &c, logger, os.Stdin, os.Stdout, interactive)
	stop()
	if f, ok := logger.Writer().(*os.File); ok {
		f.Close()
	}
	os.Exit(code)
}
