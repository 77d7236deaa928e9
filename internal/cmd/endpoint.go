package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/okian/schoox/pkg/schoox"
)

type runFunc func(ctx context.Context, c *schoox.Client, args []string, opts any) (*schoox.Response, error)

// endpoint describes a read-only API call exposed as a command.
type endpoint struct {
	name     string
	synopsis string
	args     []string
	options  func() any
	run      runFunc
}

// EndpointCommand runs one endpoint. Positional arguments fill path ids and
// positional API arguments such as role; -param flags fill the endpoint's
// options.
type EndpointCommand struct {
	*Base
	endpoint
}

func (c *EndpointCommand) Synopsis() string {
	return c.synopsis
}

func (c *EndpointCommand) Help() string {
	var b strings.Builder
	b.WriteString("Usage: schoox " + c.name)
	if c.options != nil {
		b.WriteString(" [-param key=value ...]")
	}
	for _, a := range c.args {
		b.WriteString(" <" + a + ">")
	}
	b.WriteString("\n\n  " + c.synopsis + ".")
	if c.options != nil {
		b.WriteString("\n\n  Parameters: " + strings.Join(optionNames(c.options()), ", "))
	}
	return b.String()
}

func (c *EndpointCommand) Run(args []string) int {
	params := paramsFlag{}
	f := flag.NewFlagSet(c.name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	if c.options != nil {
		f.Var(params, "param", "query parameter as key=value, repeatable")
	}
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return cli.RunResultHelp
	}

	rest := f.Args()
	if len(rest) != len(c.args) {
		c.UI.Error(fmt.Sprintf("expected %d argument(s), got %d", len(c.args), len(rest)))
		return cli.RunResultHelp
	}

	var opts any
	if c.options != nil {
		opts = c.options()
		if err := decodeOptions(url.Values(params), opts); err != nil {
			c.UI.Error(err.Error())
			return 1
		}
	}

	return c.execute(func(ctx context.Context, client *schoox.Client) (*schoox.Response, error) {
		return c.run(ctx, client, rest, opts)
	})
}

// optionNames lists the query parameter names an options struct accepts.
func optionNames(opts any) []string {
	t := reflect.TypeOf(opts)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("mapstructure")
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			names = append(names, name)
		}
	}
	return names
}

// GroupCommand only prints the subcommands of a resource.
type GroupCommand struct {
	*Base
	name     string
	synopsis string
}

func (c *GroupCommand) Synopsis() string {
	return c.synopsis
}

func (c *GroupCommand) Help() string {
	return fmt.Sprintf("Usage: schoox %s <subcommand> [options] [args]\n\n  %s.", c.name, c.synopsis)
}

func (c *GroupCommand) Run(_ []string) int {
	return cli.RunResultHelp
}
