package gocalc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/alecthomas/repr"
)

const (
	DefaultPrompt = "in> "
	ResultMarker  = "out> "
	ErrorMarker   = "err> "
	ASTMarker     = "ast>"
	TokensMarker  = "tokens> "
)

// REPL reads expressions one per line from In and writes results to Out.
// A failing line is reported and does not stop the loop unless ExitOnError
// is set.
type REPL struct {
	In  io.Reader
	Out io.Writer
	Log *log.Logger

	// Prompt is written before every read. Empty disables it.
	Prompt      string
	ShowAST     bool
	ShowTokens  bool
	ExitOnError bool
	// Once stops after the first non-empty line.
	Once bool
}

// Stats counts the lines a REPL evaluated.
type Stats struct {
	Lines  int
	Failed int
}

func NewREPL(in io.Reader, out io.Writer) *REPL {
	return &REPL{
		In:     in,
		Out:    out,
		Prompt: DefaultPrompt,
	}
}

func (r *REPL) logger() *log.Logger {
	if r.Log == nil {
		r.Log = log.New(io.Discard, "", 0)
	}
	return r.Log
}

type readResult struct {
	line string
	err  error
}

// readLines sends every line of in, newline included, until a read fails or
// done is closed. The last result carries the error.
func readLines(in io.Reader, done <-chan struct{}) <-chan readResult {
	ch := make(chan readResult)
	go func() {
		br := bufio.NewReader(in)
		for {
			line, err := br.ReadString('\n')
			select {
			case ch <- readResult{line: line, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

// Run reads until end of input, the context is done, or a stop condition
// set on r is met. The returned error is only non-nil for read failures and
// cancellation; evaluation failures are counted in Stats. Cancellation is
// noticed while waiting for input, but the pending read on r.In is
// abandoned rather than interrupted.
func (r *REPL) Run(ctx context.Context) (Stats, error) {
	var stats Stats
	done := make(chan struct{})
	defer close(done)
	lines := readLines(r.In, done)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if r.Prompt != "" {
			fmt.Fprint(r.Out, r.Prompt)
		}
		var res readResult
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case res = <-lines:
		}

		line := strings.TrimSuffix(strings.TrimSuffix(res.line, "\n"), "\r")
		if strings.Trim(line, " ") != "" {
			stats.Lines++
			if _, err := r.Eval(line); err != nil {
				stats.Failed++
				if r.ExitOnError {
					return stats, nil
				}
			}
			if r.Once {
				return stats, nil
			}
		}

		if res.err == io.EOF {
			break
		}
		if res.err != nil {
			return stats, res.err
		}
	}
	if r.Prompt != "" {
		fmt.Fprintln(r.Out)
	}
	return stats, nil
}

// Eval evaluates a single line and writes its outcome to r.Out.
func (r *REPL) Eval(line string) (int64, error) {
	v, err := r.eval(line)
	if err != nil {
		r.logger().Printf("%q: %v", line, err)
		fmt.Fprintf(r.Out, "%s%v\n", ErrorMarker, err)
		return 0, err
	}
	r.logger().Printf("%q: %d", line, v)
	fmt.Fprintf(r.Out, "%s%d\n", ResultMarker, v)
	return v, nil
}

func (r *REPL) eval(line string) (int64, error) {
	tokens, err := Lex(line)
	if err != nil {
		return 0, err
	}
	if r.ShowTokens {
		fmt.Fprintf(r.Out, "%s%s\n", TokensMarker, repr.String(tokens, repr.NoIndent(), repr.OmitEmpty(true)))
	}
	node, err := Parse(tokens)
	if err != nil {
		return 0, err
	}
	v, err := Eval(node)
	if err != nil {
		return 0, err
	}
	if r.ShowAST {
		fmt.Fprintln(r.Out, ASTMarker)
		if err := node.Tree(r.Out); err != nil {
			return 0, err
		}
	}
	return v, nil
}
