package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/oodesign/mro"
)

func newOrderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "order TYPE",
		Short: "Print the resolution order of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			t, err := a.lookupType(reg, args[0])
			if err != nil {
				return err
			}
			a.printOrder(t)
			return nil
		},
	}
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve TYPE METHOD [ARGS...]",
		Short: "Resolve a method on a type and call it",
		Long: `resolve reports which bundle answers METHOD on TYPE and prints the
implementation's result. It exits with status 1 when no bundle defines the method.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			t, err := a.lookupType(reg, args[0])
			if err != nil {
				return err
			}

			callArgs := make([]any, 0, len(args)-2)
			for _, s := range args[2:] {
				callArgs = append(callArgs, s)
			}
			return a.resolveAndCall(t, args[1], callArgs...)
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the built-in ParentClass / ChildClass hierarchy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := mro.Greetings(mro.WithLogger(a.log))
			if err != nil {
				return err
			}
			for i, name := range []string{"ParentClass", "ChildClass"} {
				if i > 0 {
					_, _ = fmt.Fprintln(a.out)
				}
				t := reg.MustType(name)
				a.printOrder(t)
				if err := a.resolveAndCall(t, "print_greeting"); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) printOrder(t *mro.Type) {
	_, _ = a.title.Fprintf(a.out, "%s lookup:\n", t.Name())
	for i, e := range t.Order() {
		_, _ = fmt.Fprintf(a.out, "  %d. %-28s ", i+1, e.Bundle.Name())
		_, _ = a.muted.Fprintf(a.out, "%-9s %s\n", e.Kind, e.Owner)
	}
}

func (a *app) resolveAndCall(t *mro.Type, method string, args ...any) error {
	r, err := mro.TryResolve(t, method)
	if err != nil {
		a.log.Debug("resolve failed", zap.String("type", t.Name()), zap.String("method", method), zap.Error(err))
		return err
	}
	a.log.Debug("resolved",
		zap.String("type", t.Name()),
		zap.String("method", method),
		zap.String("bundle", r.Bundle),
		zap.Stringer("kind", r.Kind),
	)

	printResolution(a.out, t, r, a.accent.Sprint(r.Bundle))

	out, err := r.Call(args...)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(a.out, out)
	return nil
}

func printResolution(w io.Writer, t *mro.Type, r mro.Resolution, bundle string) {
	_, _ = fmt.Fprintf(w, "%s#%s -> %s (%s by %s)\n", t.Name(), r.Method, bundle, r.Kind, r.Owner)
}
