package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dargueta/framepack/animation"
	"github.com/dargueta/framepack/baseframe"
	"github.com/dargueta/framepack/bitplane"
	"github.com/dargueta/framepack/bundle"
	"github.com/dargueta/framepack/displays"
	"github.com/dargueta/framepack/emit"
	"github.com/urfave/cli/v2"
)

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func policyFlags() []cli.Flag {
	policies := make([]string, len(baseframe.Policies))
	for i, policy := range baseframe.Policies {
		policies[i] = string(policy)
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:     "policy",
			Aliases:  []string{"p"},
			EnvVars:  []string{"FRAMEPACK_POLICY"},
			Required: true,
			Usage:    "base frame policy: " + strings.Join(policies, ", "),
		},
		&cli.IntFlag{
			Name:    "workers",
			EnvVars: []string{"FRAMEPACK_WORKERS"},
			Usage:   "goroutines used by the minimal policy (0 for one per CPU)",
		},
		&cli.StringFlag{
			Name:  "manifest",
			Usage: "CSV file listing frame names and paths",
		},
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "framepack"
	app.Usage = "Compress monochrome animations for embedded displays"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "show",
			Usage:     "Render frames to the terminal",
			ArgsUsage: "FILE...",
			Action:    showFrames,
		},
		{
			Name:      "base",
			Usage:     "Render the base frame a policy derives from a set of frames",
			ArgsUsage: "FILE...",
			Flags:     policyFlags(),
			Action:    showBase,
		},
		{
			Name:      "generate",
			Usage:     "Encode frames and write them out as source code",
			ArgsUsage: "FILE...",
			Flags: append(
				policyFlags(),
				&cli.StringFlag{
					Name:  "lang",
					Value: string(emit.LanguageC),
					Usage: "output language: c or rust",
				},
				&cli.PathFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write source code here instead of stdout",
				},
				&cli.StringFlag{
					Name:  "display",
					Usage: "fail unless frames fit this display: " + strings.Join(displays.Slugs(), ", "),
				},
				&cli.PathFlag{
					Name:  "report",
					Usage: "write a CSV size report here",
				},
				&cli.PathFlag{
					Name:  "bundle",
					Usage: "also save the encoded animation here",
				},
				&cli.BoolFlag{
					Name:  "verify",
					Usage: "decode every frame after encoding and check it matches",
				},
			),
			Action: generate,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func showFrames(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	frames, err := loadFrames("", c.Args().Slice())
	if err != nil {
		return cli.Exit(err, 1)
	}
	for _, frame := range frames {
		width, height := frame.Pixels.Dimensions()
		fmt.Printf("%s (%dx%d, %d bytes packed)\n", frame.Name, width, height, len(bitplane.Pack(frame.Pixels)))
		fmt.Print(frame.Pixels.String())
	}
	return nil
}

// encode loads the frames named by the command's arguments and flags, and
// encodes them with the requested policy.
func encode(c *cli.Context, verify bool) (*animation.Result, baseframe.Policy, error) {
	policy, err := baseframe.ParsePolicy(c.String("policy"))
	if err != nil {
		return nil, "", err
	}

	frames, err := loadFrames(c.String("manifest"), c.Args().Slice())
	if err != nil {
		return nil, "", err
	}

	width, height := frames[0].Pixels.Dimensions()
	selector, err := policy.Selector(width, height, c.Int("workers"))
	if err != nil {
		return nil, "", err
	}

	encoder := animation.NewEncoder(selector, newLogger(c))
	encoder.Verify = verify
	result, err := encoder.Encode(frames)
	return result, policy, err
}

func showBase(c *cli.Context) error {
	if c.NArg() < 1 && c.String("manifest") == "" {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	result, policy, err := encode(c, false)
	if err != nil {
		return cli.Exit(err, 1)
	}

	base, err := bitplane.Unpack(result.Base.Data, result.Width, result.Height)
	if err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Printf("%s base frame (%d bytes packed)\n", policy, result.Base.Len())
	fmt.Print(base.String())
	return nil
}

func createFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(file); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

func generate(c *cli.Context) error {
	if c.NArg() < 1 && c.String("manifest") == "" {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	language, err := emit.ParseLanguage(c.String("lang"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	result, policy, err := encode(c, c.Bool("verify"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	if slug := c.String("display"); slug != "" {
		display, err := displays.GetPredefinedDisplay(slug)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if err = display.Check(result.Width, result.Height); err != nil {
			return cli.Exit(err, 1)
		}
	}

	writeSource := func(w io.Writer) error {
		return emit.WriteResult(w, language, result)
	}
	if path := c.Path("output"); path != "" {
		err = createFile(path, writeSource)
	} else {
		err = writeSource(os.Stdout)
	}
	if err != nil {
		return cli.Exit(err, 1)
	}

	if path := c.Path("report"); path != "" {
		err = createFile(
			path,
			func(w io.Writer) error {
				return emit.WriteReport(w, result)
			},
		)
		if err != nil {
			return cli.Exit(err, 1)
		}
	}

	if path := c.Path("bundle"); path != "" {
		err = createFile(
			path,
			func(w io.Writer) error {
				return bundle.Save(w, bundle.FromResult(result, policy))
			},
		)
		if err != nil {
			return cli.Exit(err, 1)
		}
	}
	return nil
}
