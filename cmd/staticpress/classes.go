package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/eringen/staticpress/components"
	"github.com/eringen/staticpress/variant"
)

var resolvers = map[string]*variant.Resolver{
	"badge":  components.BadgeVariants,
	"button": components.ButtonVariants,
}

func runClasses(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("classes", pflag.ContinueOnError)
	component := fs.String("component", "badge", "component whose classes to resolve (badge, button)")
	sets := fs.StringArray("set", nil, "axis selection as axis=value; repeatable")
	class := fs.String("class", "", "extra classes merged after the resolved ones")
	list := fs.Bool("list", false, "list the axes and values instead")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	r, ok := resolvers[strings.ToLower(*component)]
	if !ok {
		return fmt.Errorf("unknown component %q (want %s)", *component, strings.Join(componentNames(), ", "))
	}
	if *list {
		defaults := r.Defaults()
		for _, axis := range r.Axes() {
			fmt.Fprintf(out, "%s: %s (default %s)\n", axis, strings.Join(r.Values(axis), ", "), defaults[axis])
		}
		return nil
	}

	sel := make(variant.Selection, len(*sets))
	for _, s := range *sets {
		axis, value, ok := strings.Cut(s, "=")
		if !ok || axis == "" {
			return fmt.Errorf("--set %q: want axis=value", s)
		}
		sel[axis] = value
	}
	resolved, err := r.Class(sel, nil, *class)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, resolved)
	return nil
}

func componentNames() []string {
	names := make([]string, 0, len(resolvers))
	for n := range resolvers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
