package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/tilespec"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const defaultDB = "tilespec.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func compile(c *cli.Context) (*tilespec.Table, error) {
	compiler := tilespec.New(newLogger(c), c.Int("workers"))

	file := c.Args().First()
	if file == "" || file == "-" {
		return compiler.Compile(os.Stdin)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return compiler.Compile(f)
}

func output(c *cli.Context) (io.WriteCloser, error) {
	file := c.String("output")
	if file == "" || file == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(file)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func generate(c *cli.Context) error {
	t, err := compile(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	w, err := output(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer w.Close()

	switch format := c.String("format"); format {
	case "go":
		err = tilespec.WriteSource(w, t, tilespec.SourceOptions{
			Package: c.String("package"),
			Var:     c.String("var"),
			Type:    c.String("type"),
		})
	case "lines":
		err = tilespec.EncodeLines(w, t)
	case "binary":
		err = tilespec.EncodeBinary(w, t)
	default:
		err = fmt.Errorf("unknown format \"%s\"", format)
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	return w.Close()
}

func main() {
	_ = godotenv.Load()

	app := cli.NewApp()

	app.Name = "tilespec"
	app.Usage = "CC2 tile table compiler"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"TILESPEC_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.IntFlag{
			Name:    "workers",
			EnvVars: []string{"TILESPEC_WORKERS"},
			Value:   tilespec.DefaultWorkers,
			Usage:   "number of workers deriving flags",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	defaults := tilespec.DefaultSourceOptions()

	app.Commands = []*cli.Command{
		{
			Name:        "generate",
			Usage:       "Generate the tile table",
			Description: "Reads the tile table from FILE, or stdin if FILE is missing or -, and writes it out as Go source, bare literal lines or binary metadata.",
			ArgsUsage:   "[FILE]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: "go",
					Usage: "output format: go, lines or binary",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output file, stdout if omitted",
				},
				&cli.StringFlag{
					Name:    "package",
					EnvVars: []string{"TILESPEC_PACKAGE"},
					Value:   defaults.Package,
					Usage:   "package name of the generated source",
				},
				&cli.StringFlag{
					Name:  "var",
					Value: defaults.Var,
					Usage: "variable name of the generated table",
				},
				&cli.StringFlag{
					Name:  "type",
					Value: defaults.Type,
					Usage: "element type of the generated table",
				},
			},
			Action: generate,
		},
		{
			Name:        "check",
			Usage:       "Validate the tile table",
			Description: "",
			ArgsUsage:   "[FILE]",
			Action: func(c *cli.Context) error {
				t, err := compile(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("%d tiles, %d modifiers\n", len(t.Tiles), len(t.Modifiers))

				return nil
			},
		},
		{
			Name:        "list",
			Usage:       "List the tile table",
			Description: "",
			ArgsUsage:   "[FILE]",
			Action: func(c *cli.Context) error {
				t, err := compile(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := tilespec.WriteListing(os.Stdout, t); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "export",
			Usage:       "Export the tile table to the catalog database",
			Description: "",
			ArgsUsage:   "[FILE]",
			Action: func(c *cli.Context) error {
				t, err := compile(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				db, err := tilespec.NewCatalogDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				if err := db.Import(t); err != nil {
					return cli.NewExitError(err, 1)
				}

				newLogger(c).Printf("Exported %d tiles and %d modifiers to \"%s\"\n", len(t.Tiles), len(t.Modifiers), c.String("db"))

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
