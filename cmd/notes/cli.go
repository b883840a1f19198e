package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

const defaultAPIURL = "http://localhost:8080"

// newCLIApp creates the CLI application with all commands.
func newCLIApp(in io.Reader, out io.Writer) *cli.App {
	app := &cli.App{
		Name:    "notes",
		Usage:   "Process meetings into notes, search them and manage the knowledge base",
		Version: Version,
		Reader:  in,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api", Value: defaultAPIURL, EnvVars: []string{"NOTES_API_URL"}, Usage: "Base URL of the meeting notes API"},
			&cli.DurationFlag{Name: "timeout", Value: 2 * time.Minute, Usage: "Request timeout"},
		},
		Commands: []*cli.Command{
			meetingsCmd(),
			showCmd(),
			processCmd(),
			submitCmd(),
			notesCmd(),
			searchCmd(),
			refineCmd(),
			docsCmd(),
			stateCmd(),
			agentsCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func meetingsCmd() *cli.Command {
	return &cli.Command{
		Name:  "meetings",
		Usage: "List all meetings",
		Action: func(c *cli.Context) error {
			return getAndPrint(c, "/v1/meetings")
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one meeting",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := requireArg(c, "meeting id")
			if err != nil {
				return err
			}
			return getAndPrint(c, "/v1/meetings/"+url.PathEscape(id))
		},
	}
}

// processCmd dispatches a listed meeting to the manager agent.
func processCmd() *cli.Command {
	return &cli.Command{
		Name:      "process",
		Usage:     "Process a pending meeting",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "async", Usage: "Return immediately and let the server finish in the background"},
		},
		Action: func(c *cli.Context) error {
			id, err := requireArg(c, "meeting id")
			if err != nil {
				return err
			}
			path := "/v1/meetings/" + url.PathEscape(id) + "/process"
			if c.Bool("async") {
				path += "?async=true"
			}
			data, err := client(c).postJSON(c.Context, path, nil)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c, data)
		},
	}
}

// submitCmd processes free-form meeting text read from --file or stdin.
func submitCmd() *cli.Command {
	return &cli.Command{
		Name:  "submit",
		Usage: "Process ad-hoc meeting text (reads from stdin unless --file is given)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "Read meeting text from a file"},
			&cli.BoolFlag{Name: "async", Usage: "Return immediately and let the server finish in the background"},
		},
		Action: func(c *cli.Context) error {
			text, err := readText(c)
			if err != nil {
				return outputError(err)
			}
			if text == "" {
				return cli.Exit("meeting text is required", 1)
			}

			path := "/v1/meetings/custom"
			if c.Bool("async") {
				path += "?async=true"
			}
			data, err := client(c).postJSON(c.Context, path, map[string]string{"text": text})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c, data)
		},
	}
}

func notesCmd() *cli.Command {
	return &cli.Command{
		Name:  "notes",
		Usage: "List processed meeting notes",
		Action: func(c *cli.Context) error {
			return getAndPrint(c, "/v1/notes")
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search past meeting notes (no query shows the last results)",
		ArgsUsage: "[query...]",
		Action: func(c *cli.Context) error {
			query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if query == "" {
				return getAndPrint(c, "/v1/search")
			}
			data, err := client(c).postJSON(c.Context, "/v1/search", map[string]string{"query": query})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c, data)
		},
	}
}

func refineCmd() *cli.Command {
	return &cli.Command{
		Name:      "refine",
		Usage:     "Run one of the suggested refinements of the last search",
		ArgsUsage: "<index>",
		Action: func(c *cli.Context) error {
			raw, err := requireArg(c, "refinement index")
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(raw)
			if err != nil || index < 0 {
				return cli.Exit(fmt.Sprintf("invalid refinement index %q", raw), 1)
			}
			data, err := client(c).postJSON(c.Context, "/v1/search/refinements/"+strconv.Itoa(index), nil)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c, data)
		},
	}
}

// docsCmd groups the knowledge-base corpus commands.
func docsCmd() *cli.Command {
	return &cli.Command{
		Name:  "docs",
		Usage: "Manage knowledge-base documents",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List documents in the corpus",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "refresh", Usage: "Re-read the corpus instead of the cached listing"},
				},
				Action: func(c *cli.Context) error {
					if !c.Bool("refresh") {
						return getAndPrint(c, "/v1/documents")
					}
					data, err := client(c).postJSON(c.Context, "/v1/documents/refresh", nil)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(c, data)
				},
			},
			{
				Name:      "upload",
				Usage:     "Upload a document",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					path, err := requireArg(c, "file")
					if err != nil {
						return err
					}
					data, err := client(c).upload(c.Context, "/v1/documents", path)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(c, data)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a document by file name",
				ArgsUsage: "<name>",
				Action: func(c *cli.Context) error {
					name, err := requireArg(c, "file name")
					if err != nil {
						return err
					}
					data, err := client(c).delete(c.Context, "/v1/documents/"+url.PathEscape(name))
					if err != nil {
						return outputError(err)
					}
					return outputJSON(c, data)
				},
			},
		},
	}
}

func stateCmd() *cli.Command {
	return &cli.Command{
		Name:  "state",
		Usage: "Show the current application state",
		Action: func(c *cli.Context) error {
			return getAndPrint(c, "/v1/state")
		},
		Subcommands: []*cli.Command{
			{
				Name:      "clear",
				Usage:     "Dismiss an error message",
				ArgsUsage: "<process|search|upload>",
				Action: func(c *cli.Context) error {
					kind, err := requireArg(c, "error kind")
					if err != nil {
						return err
					}
					data, err := client(c).delete(c.Context, "/v1/state/errors/"+url.PathEscape(kind))
					if err != nil {
						return outputError(err)
					}
					return outputJSON(c, data)
				},
			},
		},
	}
}

func agentsCmd() *cli.Command {
	return &cli.Command{
		Name:  "agents",
		Usage: "List the configured agents",
		Action: func(c *cli.Context) error {
			return getAndPrint(c, "/v1/agents")
		},
	}
}

func client(c *cli.Context) *apiClient {
	return newAPIClient(c.String("api"), c.Duration("timeout"))
}

func getAndPrint(c *cli.Context, path string) error {
	data, err := client(c).get(c.Context, path)
	if err != nil {
		return outputError(err)
	}
	return outputJSON(c, data)
}

// requireArg returns the first positional argument.
func requireArg(c *cli.Context, what string) (string, error) {
	arg := strings.TrimSpace(c.Args().First())
	if arg == "" {
		return "", cli.Exit(what+" is required", 1)
	}
	return arg, nil
}

// readText reads --file when set, otherwise piped stdin.
func readText(c *cli.Context) (string, error) {
	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	in := c.App.Reader
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return "", fmt.Errorf("meeting text must be piped via stdin or given with --file")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// outputJSON pretty-prints the response data.
func outputJSON(c *cli.Context, data json.RawMessage) error {
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return cli.Exit(fmt.Sprintf("invalid response data: %v", err), 1)
	}
	buf.WriteByte('\n')
	_, err := c.App.Writer.Write(buf.Bytes())
	return err
}

// outputError formats error for CLI.
func outputError(err error) error {
	return cli.Exit(err.Error(), 1)
}
