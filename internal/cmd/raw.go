package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/okian/schoox/pkg/schoox"
)

// RawCommand sends a request to any API path, for endpoints without a
// dedicated command.
type RawCommand struct {
	*Base
	method string
}

func (c *RawCommand) hasBody() bool {
	return c.method == http.MethodPut || c.method == http.MethodPost
}

func (c *RawCommand) Synopsis() string {
	return fmt.Sprintf("Send a %s request to an arbitrary API path", c.method)
}

func (c *RawCommand) Help() string {
	usage := fmt.Sprintf("Usage: schoox %s [-param key=value ...]", strings.ToLower(c.method))
	if c.hasBody() {
		usage += " [-data JSON|@file]"
	}
	return usage + ` <path>

  ` + c.Synopsis() + `. The path is relative to the API root,
  e.g. courses/42/students. Credentials are added automatically.`
}

func (c *RawCommand) Run(args []string) int {
	params := paramsFlag{}
	var data string
	f := flag.NewFlagSet(strings.ToLower(c.method), flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.Var(params, "param", "query parameter as key=value, repeatable")
	if c.hasBody() {
		f.StringVar(&data, "data", "", "JSON request body, or @file to read it from a file")
	}
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return cli.RunResultHelp
	}
	if f.NArg() != 1 {
		c.UI.Error("expected exactly one path argument")
		return cli.RunResultHelp
	}
	path := f.Arg(0)

	var body any
	if c.hasBody() {
		raw, err := readBody(data)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		body = raw
	}

	query := url.Values(params)
	return c.execute(func(ctx context.Context, client *schoox.Client) (*schoox.Response, error) {
		switch c.method {
		case http.MethodPut:
			return client.Put(ctx, path, query, body)
		case http.MethodPost:
			return client.Post(ctx, path, query, body)
		case http.MethodDelete:
			return client.Delete(ctx, path, query)
		default:
			return client.Get(ctx, path, query)
		}
	})
}

// readBody resolves the -data flag. An empty flag sends an empty object.
func readBody(data string) (json.RawMessage, error) {
	if data == "" {
		return json.RawMessage("{}"), nil
	}
	raw := []byte(data)
	if path, ok := strings.CutPrefix(data, "@"); ok {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading body: %w", err)
		}
		raw = b
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("request body is not valid JSON")
	}
	return json.RawMessage(raw), nil
}
