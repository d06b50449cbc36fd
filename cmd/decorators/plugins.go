package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-leo/decorators/args"
	"github.com/go-leo/decorators/decorators"
	"github.com/go-leo/decorators/endpoint"
	"github.com/go-leo/decorators/plugin"
	"github.com/spf13/cobra"
)

func greet(_ context.Context, a args.Args) (string, error) {
	name, _ := a.At(0).(string)
	if name == "" {
		return "", errors.New("greet: missing name")
	}
	greeting := "Hello"
	if v, ok := a.Get("greeting"); ok {
		greeting = fmt.Sprint(v)
	}
	return greeting + " " + name, nil
}

func shout(_ context.Context, a args.Args) (string, error) {
	return strings.ToUpper(fmt.Sprint(a.Positional()...)), nil
}

func wasteTime(_ context.Context, a args.Args) (int, error) {
	n, _ := a.At(0).(int)
	var total int
	for i := 0; i < n; i++ {
		total += i * i
	}
	return total, nil
}

// registerPlugins puts the sample functions into r.
func registerPlugins(r *plugin.Registry) {
	opt := decorators.WithRegistry(r)
	decorators.Register[args.Args, string](endpoint.New[args.Args, string](greet, endpoint.Doc("Greets a name.")), opt)
	decorators.Register[args.Args, string](endpoint.New[args.Args, string](shout, endpoint.Doc("Upper-cases its arguments.")), opt)
	decorators.Register[args.Args, int](endpoint.New[args.Args, int](wasteTime, endpoint.Name("waste_time"), endpoint.Doc("Sums squares below n.")), opt)
}

func newPluginsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the registered sample plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := plugin.GetRegistry()
			registerPlugins(r)
			for _, name := range r.Names() {
				p, _ := r.Get(name)
				cmd.Printf("%-12s %s\n", name, p.Info().Doc)
			}
			return nil
		},
	}
}
