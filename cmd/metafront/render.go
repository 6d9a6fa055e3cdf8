package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/metafront/internal/screen"
	"github.com/alexisbeaulieu97/metafront/internal/tui/render"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type renderFlags struct {
	width  int
	height int
	offset int
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the dashboard to stdout",
		Long: `Render draws a single frame at the given size and scroll offset and
writes it to stdout. Width and height default to the terminal size, or 80x24
when stdout is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, flags)
		},
	}

	cmd.Flags().IntVar(&flags.width, "width", 0, "Frame width in cells")
	cmd.Flags().IntVar(&flags.height, "height", 0, "Frame height in rows")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "Scroll offset of the card list in rows")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, flags renderFlags) error {
	if flags.width < 0 || flags.height < 0 || flags.offset < 0 {
		return fmt.Errorf("width, height and offset must not be negative")
	}

	log, closeLog, err := newLogger(root, cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}
	defer closeLog()

	scr, err := loadScreen(root, log)
	if err != nil {
		return err
	}

	size := frameSize(flags)
	r := render.New(scr.Theme, render.Options{Logger: log, ASCII: root.ascii})

	_, warnings := scr.Compose()
	for _, w := range warnings {
		log.WithFields(map[string]any{"card": w.Card, "value": w.Value, "clamped": w.Clamped}).
			Warn("progress ratio out of range")
	}

	out, frame := r.Static(scr, size, flags.offset)
	log.WithFields(map[string]any{
		"width":  size.Width,
		"height": size.Height,
		"offset": frame.Offset,
	}).Debug("frame rendered")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func frameSize(flags renderFlags) screen.Size {
	size := screen.Size{Width: flags.width, Height: flags.height}
	if size.Width > 0 && size.Height > 0 {
		return size
	}

	w, h := fallbackWidth, fallbackHeight
	if isTerminal(os.Stdout) {
		if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			w, h = tw, th
		}
	}
	if size.Width == 0 {
		size.Width = w
	}
	if size.Height == 0 {
		size.Height = h
	}
	return size
}
