package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/anchormark"
	"github.com/gogpu/anchormark/internal/config"
	"github.com/gogpu/anchormark/internal/notify"
	"github.com/gogpu/anchormark/internal/prompt"
	"github.com/gogpu/anchormark/recording"
	"github.com/gogpu/anchormark/scene"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Output backends register themselves.
	_ "github.com/gogpu/anchormark/recording/backends/pdf"
	_ "github.com/gogpu/anchormark/recording/backends/raster"
	_ "github.com/gogpu/anchormark/recording/backends/svg"
)

type rootOptions struct {
	configFile  string
	interactive bool
	verbose     bool
	dump        bool
}

// NewRootCmd builds the anchormark command tree.
func NewRootCmd() *cobra.Command {
	v := config.New()
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "anchormark [scene-file]",
		Short: "Mark anchor points and Bézier handles of selected paths",
		Long: `Anchormark reads a document and its selection from a scene file and draws
an annotation layer on top of every selected path: a hollow circle on smooth
anchors, a hollow square on corner anchors, and a dot joined by a line for
every handle.

Without a scene file no document is open and nothing is drawn.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnotate(cmd, v, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default .anchormark.yaml in . or $HOME/.config/anchormark)")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "ask for the sizes before drawing")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each annotated path to stderr")
	flags.BoolVar(&opts.dump, "dump", false, "print the recorded drawing commands")
	if err := config.AddFlags(v, flags); err != nil {
		panic(err)
	}

	cmd.AddCommand(newBackendsCmd())
	return cmd
}

func runAnnotate(cmd *cobra.Command, v *viper.Viper, opts *rootOptions, args []string) error {
	out := cmd.OutOrStdout()

	cfg, used, err := config.Load(v, opts.configFile)
	if err != nil {
		return err
	}
	if opts.verbose {
		prev := anchormark.Logger()
		defer anchormark.SetLogger(prev)
		anchormark.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if used != "" {
		anchormark.Logger().Debug("anchormark: config loaded", "file", used)
	}

	if err := checkFormats(cfg.Formats); err != nil {
		return err
	}
	col, err := cfg.AnnotationColor()
	if err != nil {
		return err
	}

	sizes := prompt.Sizes{Anchor: cfg.AnchorSize, Handle: cfg.HandleSize, Stroke: cfg.StrokeWidth}
	if opts.interactive {
		sizes, err = askSizes(cmd.InOrStdin(), out, sizes)
		if errors.Is(err, prompt.ErrCanceled) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	params := anchormark.ParseDrawParams(sizes.Anchor, sizes.Handle, sizes.Stroke)

	ws := &scene.Workspace{}
	if len(args) == 1 {
		doc, err := scene.LoadFile(args[0])
		if err != nil {
			return err
		}
		ws.Open(doc)
	}

	rec := recording.NewRecorder(recording.WithLimit(cfg.Limit))
	tally, err := anchormark.Run(ws, rec, params, anchormark.WithColor(col))

	// Primitives drawn before a surface failure stay in the output.
	var drawErr *anchormark.SurfaceError
	switch {
	case errors.Is(err, anchormark.ErrNoDocument):
		notify.Errorf(out, "No document is open.")
		return nil
	case errors.Is(err, anchormark.ErrEmptySelection):
		notify.Warningf(out, "Please select at least one vector object.")
		return nil
	case errors.As(err, &drawErr):
		if rec.Len() == 0 {
			return err
		}
	case err != nil:
		return err
	case tally.Paths == 0:
		notify.Warningf(out, "%s", tally.Summary())
		return nil
	}

	result := rec.FinishRecording()
	if opts.dump {
		fmt.Fprint(out, result.String())
	}

	vp := result.Viewport(cfg.Margin, cfg.Scale)
	written, werr := writeOutputs(cmd.Context(), result, vp, cfg.Output, cfg.Formats)
	if werr != nil {
		return errors.Join(err, werr)
	}
	for _, path := range written {
		notify.Infof(out, "wrote %s", path)
	}
	if drawErr != nil {
		notify.Warningf(out, "drawing stopped after %d primitives", result.Len())
		return err
	}
	notify.Successf(out, "%s", tally.Summary())
	return nil
}

// askSizes runs the interactive prompt. A real stdin must be a terminal;
// other readers are accepted so the prompt can be scripted in tests.
func askSizes(in io.Reader, out io.Writer, cur prompt.Sizes) (prompt.Sizes, error) {
	if f, ok := in.(*os.File); ok {
		if err := prompt.RequireTerminal(f); err != nil {
			return prompt.Sizes{}, err
		}
	}
	return prompt.New(in, out).AskSizes(cur)
}

func checkFormats(names []string) error {
	var unknown []string
	for _, name := range names {
		if !recording.IsRegistered(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown format %s (available: %s)",
			strings.Join(unknown, ", "), strings.Join(recording.Backends(), ", "))
	}
	return nil
}
