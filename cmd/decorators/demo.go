package main

import (
	"time"

	"github.com/go-leo/decorators/args"
	"github.com/go-leo/decorators/decorators"
	"github.com/go-leo/decorators/endpoint"
	"github.com/go-leo/decorators/plugin"
	"github.com/go-leo/decorators/report"
	"github.com/go-leo/decorators/repr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type demoFlags struct {
	name  string
	times int
	delay time.Duration
	json  bool
	log   bool
}

func newDemoCommand() *cobra.Command {
	f := &demoFlags{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Greet through every decorator and report on the side channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.name, "name", "Bob", "name to greet")
	cmd.Flags().IntVar(&f.times, "times", decorators.DefaultNumTimes, "how many times to repeat the greeting")
	cmd.Flags().DurationVar(&f.delay, "delay", decorators.DefaultDelay, "delay before each greeting")
	cmd.Flags().BoolVar(&f.json, "json", false, "render arguments and results as JSON")
	cmd.Flags().BoolVar(&f.log, "log", false, "write reports as structured log entries")
	return cmd
}

func runDemo(cmd *cobra.Command, f *demoFlags) error {
	reporter := report.Writer(cmd.OutOrStdout())
	if f.log {
		logger := newLogger(cmd)
		defer func() { _ = logger.Sync() }()
		reporter = report.Zap(logger)
	}
	opts := []decorators.Option{decorators.WithReporter(reporter), decorators.WithDelay(f.delay)}
	if f.json {
		opts = append(opts, decorators.WithFormatter(repr.JSON))
	}

	r := plugin.GetRegistry()
	registerPlugins(r)

	greet, err := plugin.Lookup[args.Args, string](r, "greet")
	if err != nil {
		return err
	}
	counted := decorators.CountCalls[args.Args, string](greet, opts...)
	greeter := endpoint.Chain[args.Args, string](counted,
		decorators.Use[args.Args, string](decorators.Timer[args.Args, string], opts...),
		decorators.Use[args.Args, string](decorators.Trace[args.Args, string], opts...),
		decorators.Repeat[args.Args, string](f.times),
		decorators.Use[args.Args, string](decorators.SlowDown[args.Args, string], opts...),
	)
	greeting, err := greeter.Invoke(cmd.Context(), args.New(f.name).With("greeting", "Hi"))
	if err != nil {
		return err
	}
	cmd.Println(greeting)

	waste, err := plugin.Lookup[args.Args, int](r, "waste_time")
	if err != nil {
		return err
	}
	wasted := decorators.Timer[args.Args, int](decorators.DoTwice[args.Args, int](waste), opts...)
	total, err := wasted.Invoke(cmd.Context(), args.New(1000))
	if err != nil {
		return err
	}
	cmd.Printf("waste_time(1000) = %d\n", total)
	cmd.Printf("greet was called %d times\n", counted.NumCalls())
	return nil
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(cmd.OutOrStdout())),
		zap.DebugLevel,
	)
	return zap.New(core)
}
