package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/deque"
	"github.com/npillmayer/deque/blocks"
	"github.com/npillmayer/deque/replay"
	"github.com/npillmayer/deque/visual"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

type options struct {
	splitFactor float64
	mergeFactor float64
	dotFile     string
	traceLevel  string
	steps       bool
	events      bool
	color       bool
	maxValues   int
}

// newRootCmd creates the dequeviz command
func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "dequeviz [flags] script",
		Short: "Replay deque operations and show the block layout",
		Long: `Replay a script of deque operations and show the block layout.

Every line of the script holds one operation: push_back V, push_front V,
pop_back, pop_front, insert I V, erase I, clear, at I, front or back.
Lines starting with '#' are comments.

Failing operations are reported and do not stop the replay.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&opts.splitFactor, "split-factor", blocks.DefaultSplitFactor,
		"split boundary blocks at split-factor·sqrt(n) elements")
	f.Float64Var(&opts.mergeFactor, "merge-factor", blocks.DefaultMergeFactor,
		"merge adjacent blocks up to merge-factor·sqrt(n) elements")
	f.StringVar(&opts.dotFile, "dot", "", "write the final layout in Graphviz DOT format to this file")
	f.StringVar(&opts.traceLevel, "trace", "Error", "trace level (Debug, Info or Error)")
	f.BoolVar(&opts.steps, "steps", false, "print the layout after every operation")
	f.BoolVar(&opts.events, "events", false, "print the structural changes of every operation")
	f.BoolVar(&opts.color, "color", false, "force colored output on or off (default: on for terminals)")
	f.IntVar(&opts.maxValues, "values", 4, "print at most this many values per block")
	return cmd
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return gtrace.CoreTracer
	}))
}

func run(cmd *cobra.Command, path string, opts *options) error {
	setupTracing(opts.traceLevel)
	ops, err := replay.Load(path)
	if err != nil {
		return err
	}
	player, err := replay.NewPlayer(cmd.Context(), blocks.Config{
		SplitFactor: opts.splitFactor,
		MergeFactor: opts.mergeFactor,
	})
	if err != nil {
		return err
	}
	defer player.Close()
	//
	out := cmd.OutOrStdout()
	console := visual.NewConsole(nil)
	config := visual.ConfigFromTerminal()
	if cmd.Flags().Changed("color") {
		config.Colors = opts.color
	}
	config.MaxValues = opts.maxValues
	failed := 0
	for _, op := range ops {
		step := player.Step(op)
		if step.Err != nil {
			failed++
		}
		if opts.steps || opts.events || step.Err != nil {
			fmt.Fprintln(out, step)
		}
		if opts.events {
			for _, e := range step.Events {
				fmt.Fprintf(out, "     %s\n", e)
			}
		}
		if opts.steps {
			if err := visual.Render(player.Deque(), out, console, config); err != nil {
				return err
			}
		}
	}
	if !opts.steps {
		if err := visual.Render(player.Deque(), out, console, config); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "%d operations, %d failed\n", len(ops), failed)
	if err := player.Deque().Check(); err != nil {
		return err
	}
	if opts.dotFile != "" {
		return writeDot(player.Deque(), opts.dotFile)
	}
	return nil
}

func writeDot(d *deque.Deque[string], name string) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if e := file.Close(); err == nil {
			err = e
		}
	}()
	deque.Deque2Dot(d, file)
	return nil
}
