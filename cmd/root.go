package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/koki-develop/asciify/internal/ascii"
	"github.com/koki-develop/asciify/internal/config"
	"github.com/koki-develop/asciify/internal/decode"
	"github.com/koki-develop/asciify/internal/resize"
	"github.com/koki-develop/asciify/internal/ui"
	"github.com/spf13/cobra"
)

type options struct {
	width       int
	charset     string
	invert      bool
	aspect      float64
	filter      string
	fit         bool
	output      string
	interactive bool
	configPath  string
	verbose     bool
	listPresets bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "asciify [flags] <image|->",
		Short: "Render an image as ASCII art",
		Long: `Render an image as ASCII art.

Each character stands for the brightness of one sampled block of the image.
Pass "-" to read the image from stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.width, "width", "w", ascii.DefaultMaxWidth, "number of output columns")
	f.StringVarP(&opts.charset, "charset", "c", "standard", "preset name or literal ramp, darkest-mapped character first (prefix with \"literal:\" to use a preset name as a ramp)")
	f.BoolVarP(&opts.invert, "invert", "i", false, "reverse the character ramp")
	f.Float64VarP(&opts.aspect, "aspect", "a", ascii.DefaultAspectCorrection, "row scale compensating for tall character cells")
	f.StringVar(&opts.filter, "filter", resize.Bilinear.String(), "resampling filter: bilinear, nearest, catmullrom, lanczos, box")
	f.BoolVar(&opts.fit, "fit", false, "choose the width so the output fits the terminal")
	f.StringVarP(&opts.output, "output", "o", "", "write the art to a file instead of stdout")
	f.BoolVar(&opts.interactive, "interactive", false, "open an interactive viewer")
	f.StringVar(&opts.configPath, "config", "", fmt.Sprintf("config file (default $%s or <config dir>/asciify/config.yaml)", config.EnvPath))
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "print diagnostics to stderr")
	f.BoolVar(&opts.listPresets, "list-presets", false, "list charset presets and exit")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if opts.listPresets {
		for _, name := range cfg.PresetNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %q\n", name, cfg.Presets[name])
		}
		return nil
	}

	if len(args) != 1 {
		return errors.New("requires an image path or \"-\"")
	}

	applyFlags(cmd, opts, cfg)
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	img, format, err := decode.Open(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	sz := img.Bounds().Size()

	if opts.fit {
		tw, th, err := resize.TerminalSize()
		if err != nil {
			return fmt.Errorf("failed to get terminal size: %w", err)
		}
		params.MaxWidth = resize.NewResizer().FitWidth(sz.X, sz.Y, tw, th-1, params.Normalize().AspectCorrection)
	}

	if opts.interactive {
		return ui.Start(&ui.Option{
			Image:  img,
			Name:   filepath.Base(args[0]),
			Config: cfg,
			Params: params,
		})
	}

	art, err := ascii.Generate(img, params, nil)
	if err != nil {
		return err
	}

	if opts.verbose {
		p := params.Normalize()
		fmt.Fprintf(cmd.ErrOrStderr(), "decoded %s image %dx%d\n", format, sz.X, sz.Y)
		fmt.Fprintf(cmd.ErrOrStderr(), "rendered %dx%d characters (aspect %.2f, filter %s, %d-character ramp)\n",
			art.Width(), art.Height(), p.AspectCorrection, p.Filter, len([]rune(p.Charset)))
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(art.String()), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	_, err = io.WriteString(cmd.OutOrStdout(), art.String())
	return err
}

// applyFlags overrides config values with the flags given on the command line.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width = opts.width
	}
	if f.Changed("charset") {
		cfg.Charset = opts.charset
	}
	if f.Changed("invert") {
		cfg.Invert = opts.invert
	}
	if f.Changed("aspect") {
		cfg.Aspect = opts.aspect
	}
	if f.Changed("filter") {
		cfg.Filter = opts.filter
	}
}

func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
