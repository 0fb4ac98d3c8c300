// Command dscpipe builds an iterator pipeline from its flags,
// drains it into one of the containers and prints the container's content.
//
//	dscpipe range 1 6 1 --filter odd --zip-range 10:13:1 --into list
//	dscpipe repeat 7 3 --enumerate 1 --stats
//
// Negative positional arguments go after "--":
//
//	dscpipe repeat --take 3 -- 7 -1
package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/szmathias/dscontainers/pkg/logging"
)

const envLogLevel = "DSCPIPE_LOG_LEVEL"

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "dscpipe"))
	err := Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		logging.Error(ctx, "error in main", logging.ErrField(err))
		os.Exit(1)
	}
}

func Main(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := rootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts Options
	logger := &logging.Logger{Out: stderr}
	root := &cobra.Command{
		Use:           "dscpipe",
		Short:         "Drain an iterator pipeline into a container.",
		Long:          "Build a source iterator, apply the combinators given as flags in a fixed order, drain the result into a container and print it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.LogLevel)
			if err != nil {
				return err
			}
			logger.Level = level
			logger.JSON = opts.LogJSON
			return opts.Validate()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	defaultLevel := os.Getenv(envLogLevel)
	if defaultLevel == "" {
		defaultLevel = logging.LevelWarn.String()
	}
	flags := root.PersistentFlags()
	flags.IntVar(&opts.Skip, "skip", 0, "discard the first N elements of the source")
	flags.StringVar(&opts.Filter, "filter", "", "keep only the odd or even elements")
	flags.IntVar(&opts.Scale, "scale", 1, "multiply every element by K")
	flags.IntVar(&opts.Take, "take", -1, "keep at most N elements, negative means all")
	flags.StringVar(&opts.ChainRange, "chain-range", "", "append the range START:END:STEP")
	flags.StringVar(&opts.ZipRange, "zip-range", "", "pair every element with the next element of the range START:END:STEP")
	flags.IntVar(&opts.Enumerate, "enumerate", 0, "number the elements starting from N")
	flags.StringVar(&opts.Into, "into", "array", "container to drain into: array, list, slist, queue, stack, set or bst")
	flags.BoolVar(&opts.Clone, "clone", false, "store copies of the elements instead of the elements")
	flags.BoolVar(&opts.Count, "count", false, "print the number of elements instead of the elements")
	flags.BoolVar(&opts.Stats, "stats", false, "print the allocation statistics")
	flags.StringVar(&opts.LogLevel, "log-level", defaultLevel, "logging level: trace, debug, info, warn or error, defaults to $"+envLogLevel)
	flags.BoolVar(&opts.LogJSON, "log-json", false, "write the log entries as JSON")

	root.AddCommand(
		&cobra.Command{
			Use:   "range START END STEP",
			Short: "Use the end exclusive arithmetic progression as the source.",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				start, end, step, err := parseInts(args[0], args[1], args[2])
				if err != nil {
					return err
				}
				opts.Enumerated = cmd.Flags().Changed("enumerate")
				return run(cmd.Context(), logger, opts, stdout, rangeSource{Start: start, End: end, Step: step})
			},
		},
		&cobra.Command{
			Use:   "repeat VALUE COUNT",
			Short: "Use the same value COUNT times as the source, a negative COUNT repeats forever.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, count, err := parsePair(args[0], args[1])
				if err != nil {
					return err
				}
				opts.Enumerated = cmd.Flags().Changed("enumerate")
				return run(cmd.Context(), logger, opts, stdout, repeatSource{Value: value, Count: count})
			},
		},
	)
	return root
}
