package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "ruff"
	app.Usage = "farbfeld image utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Print the format and dimensions of images",
			Description: "",
			ArgsUsage:   "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				for _, path := range c.Args().Slice() {
					f, err := os.Open(path)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					cfg, format, err := image.DecodeConfig(f)
					f.Close()
					if err != nil {
						return cli.NewExitError(fmt.Errorf("%s: %v", path, err), 1)
					}
					fmt.Printf("%s: %s %dx%d\n", path, format, cfg.Width, cfg.Height)
				}

				return nil
			},
		},
		{
			Name:        "convert",
			Usage:       "Convert an image between farbfeld and other formats",
			Description: "The output format is chosen by the destination file extension.",
			ArgsUsage:   "SRC DST",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := convertFile(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Convert many images concurrently",
			Description: "Each source file is written to the output directory with its extension replaced by the chosen format.",
			ArgsUsage:   "SRC...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "dir",
					Aliases: []string{"d"},
					EnvVars: []string{"RUFF_DIR"},
					Value:   ".",
					Usage:   "output directory",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "ff",
					Usage:   "output format (ff, png or bmp)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := newLogger(c)

				if err := batchConvert(logger, c.Args().Slice(), c.String("dir"), c.String("format")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "quantize",
			Usage:       "Reduce an image to a fixed size palette",
			Description: "",
			ArgsUsage:   "SRC DST",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "colors",
					Aliases: []string{"c"},
					Value:   256,
					Usage:   "maximum number of palette entries",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				img, err := decodeImage(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := encodeImage(c.Args().Get(1), quantizeImage(img, c.Int("colors"))); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
