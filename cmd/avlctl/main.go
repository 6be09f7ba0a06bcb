// Command avlctl drives an AVL tree from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

type metadata struct {
	config  *Configuration
	log     *logger.L
	verbose bool
	r       io.Reader
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdin)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// newApp builds the command line application.
// The apply command reads its lines from stdin.
func newApp(stdin io.Reader) *cli.App {
	app := cli.NewApp()
	app.Name = "avlctl"
	app.Usage = "apply map operations to an AVL tree and show its shape"
	app.Version = version
	app.HideVersion = true
	app.Metadata = map[string]interface{}{}

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " trace every tree operation",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " YAML configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "apply",
			Usage:     "read put/get/del lines from stdin and apply them in order",
			ArgsUsage: "\n   lines: put KEY VALUE | get KEY | del KEY",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " print the tree when done",
				},
			},
			Action: runApply,
		},
		{
			Name:      "walk",
			Usage:     "insert integer keys and print them in a traversal order",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "in",
					Usage: " traversal `ORDER` [in|reverse|pre|post|breadth]",
				},
			},
			Action: runWalk,
		},
	}

	app.Before = func(c *cli.Context) error {
		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		file := c.GlobalString("config")
		if verbose && "" != file {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := LoadConfiguration(file)
		if nil != err {
			return err
		}
		if verbose {
			config.Logging.Console = true
			config.Logging.Levels[logger.DefaultTag] = "trace"
		}

		if err := logger.Initialise(config.Logging.toLogger()); nil != err {
			return fmt.Errorf("logger initialisation failed: %w", err)
		}

		c.App.Metadata["config"] = &metadata{
			config:  config,
			log:     logger.New("avl"),
			verbose: verbose,
			r:       stdin,
			e:       e,
			w:       w,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	return app
}
