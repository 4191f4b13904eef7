package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	qrbrandr "github.com/jdsidebottom/QRBrandr"
	"github.com/jdsidebottom/QRBrandr/batch"
	"github.com/jdsidebottom/QRBrandr/compose"
	"github.com/jdsidebottom/QRBrandr/config"
	"github.com/jdsidebottom/QRBrandr/internal/save"
	"github.com/jdsidebottom/QRBrandr/logger"
	"github.com/jdsidebottom/QRBrandr/writer/document"
	"github.com/jdsidebottom/QRBrandr/writer/raster"
	"github.com/jdsidebottom/QRBrandr/writer/vector"
)

func main() {
	app := &cli.App{
		Name:  "qrbrandr",
		Usage: "generate branded QR codes as PNG, SVG or PDF",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "verbose logging"},
			&cli.StringFlag{Name: "config-dir", Usage: "preference directory (default: user config dir)"},
			&cli.BoolFlag{Name: "dark", Usage: "dark color theme; the choice is persisted"},
		},
		Commands: []*cli.Command{
			generateCommand(),
			batchCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate a single QR code",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Usage: "payload to encode", Required: true},
			&cli.StringFlag{Name: "name", Usage: "output base name", Value: "qrcode"},
			&cli.IntFlag{Name: "size", Usage: "output edge in pixels (100-400)", Value: 300},
			&cli.IntFlag{Name: "margin", Usage: "quiet zone in modules", Value: qrbrandr.DefaultMargin},
			&cli.StringFlag{Name: "level", Usage: "error correction level (L/M/Q/H)", Value: "H"},
			&cli.StringFlag{Name: "logo", Usage: "PNG or JPEG logo file"},
			&cli.Float64Flag{Name: "logo-ratio", Usage: "logo edge relative to output edge (0.10-0.30)", Value: 0.20},
			&cli.StringFlag{Name: "logo-shape", Usage: "logo backdrop shape (square/rounded)", Value: "rounded"},
			&cli.StringFlag{Name: "format", Usage: "output format (png/svg/pdf)", Value: "png"},
			&cli.StringFlag{Name: "fg", Usage: "module color as #RRGGBB (overrides the theme)"},
			&cli.StringFlag{Name: "bg", Usage: "background color as #RRGGBB (overrides the theme)"},
			&cli.StringFlag{Name: "out", Usage: "output directory", Value: "."},
		},
		Action: runGenerate,
	}
}

func runGenerate(c *cli.Context) error {
	log := logger.Init(c.Bool("debug"))
	defer func() { _ = log.Sync() }()

	req, err := buildRequest(c, log)
	if err != nil {
		return err
	}

	saver := save.Dir{Path: c.String("out")}
	name := batch.FileName(c.String("name"))

	switch strings.ToLower(c.String("format")) {
	case "png":
		data, err := raster.Render(req)
		if err != nil {
			return logged(log, err)
		}
		return saveArtifact(saver, name+".png", data, log)
	case "svg":
		data, err := vector.Render(req)
		if err != nil {
			return logged(log, err)
		}
		return saveArtifact(saver, name+".svg", data, log)
	case "pdf":
		png, err := raster.Render(req)
		if err != nil {
			return logged(log, err)
		}
		data, err := document.Build(
			[]document.Rendered{{Name: name, Payload: req.Payload, PNG: png}},
			document.LayoutOnePerPage,
		)
		if err != nil {
			return logged(log, err)
		}
		return saveArtifact(saver, batch.DocumentFileName(time.Now()), data, log)
	}
	return errors.Errorf("unknown format %q", c.String("format"))
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "generate QR codes for every line of a payload,name file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "delimited input file", Required: true},
			&cli.StringFlag{Name: "mode", Usage: "export mode (png/pages/grid)", Value: "png"},
			&cli.IntFlag{Name: "size", Usage: "output edge in pixels (100-400)", Value: 300},
			&cli.IntFlag{Name: "margin", Usage: "quiet zone in modules", Value: qrbrandr.DefaultMargin},
			&cli.StringFlag{Name: "level", Usage: "error correction level (L/M/Q/H)", Value: "H"},
			&cli.StringFlag{Name: "out", Usage: "output directory", Value: "."},
			&cli.DurationFlag{Name: "pacing", Usage: "delay between sequential saves", Value: batch.DefaultPacing},
		},
		Action: runBatch,
	}
}

func runBatch(c *cli.Context) error {
	log := logger.Init(c.Bool("debug"))
	defer func() { _ = log.Sync() }()

	req, err := buildRequest(c, log)
	if err != nil {
		return err
	}
	// The batch driver swaps the payload in per item.
	req.Payload = "-"

	raw, err := os.ReadFile(c.String("file"))
	if err != nil {
		return errors.Wrap(err, "read batch file")
	}
	items := batch.Import(string(raw))
	if len(items) == 0 {
		log.Warnw("no items found", "file", c.String("file"))
		return nil
	}

	var mode batch.Mode
	switch strings.ToLower(c.String("mode")) {
	case "png":
		mode = batch.ModeRasterPerItem
	case "pages":
		mode = batch.ModePDFPages
	case "grid":
		mode = batch.ModePDFGrid
	default:
		return errors.Errorf("unknown batch mode %q", c.String("mode"))
	}

	driver := batch.NewDriver(save.Dir{Path: c.String("out")}, log, c.Duration("pacing"))
	n, err := driver.Export(c.Context, items, mode, req)
	if err != nil {
		log.Errorw("batch export aborted", "processed", n, "error", err)
		return err
	}
	log.Infow("batch export complete", "items", n)
	return nil
}

// buildRequest assembles the shared request fields from flags and the
// persisted theme preference.
func buildRequest(c *cli.Context, log *zap.SugaredLogger) (qrbrandr.Request, error) {
	var req qrbrandr.Request

	if err := config.Load(c.String("config-dir")); err != nil {
		return req, err
	}
	dark := config.DarkMode()
	if c.IsSet("dark") {
		dark = c.Bool("dark")
		if err := config.SaveDarkMode(dark, c.String("config-dir")); err != nil {
			log.Warnw("could not persist theme preference", "error", err)
		}
	}

	level, err := qrbrandr.ParseLevel(c.String("level"))
	if err != nil {
		return req, err
	}

	theme := qrbrandr.ThemeFor(dark)
	if c.String("fg") != "" || c.String("bg") != "" {
		fg, bg := c.String("fg"), c.String("bg")
		if fg == "" {
			fg = "#000000"
		}
		if bg == "" {
			bg = "#ffffff"
		}
		theme, err = qrbrandr.ThemeFromHex(fg, bg)
		if err != nil {
			return req, err
		}
	}

	req = qrbrandr.Request{
		Payload: c.String("text"),
		Size:    c.Int("size"),
		Level:   level,
		Theme:   theme,
		Margin:  c.Int("margin"),
	}

	if path := c.String("logo"); path != "" {
		shape, err := compose.ParseShape(c.String("logo-shape"))
		if err != nil {
			return req, err
		}
		img, err := qrbrandr.LoadLogo(c.Context, path)
		if err != nil {
			log.Errorw("logo load failed", "path", path, "error", err)
			return req, err
		}
		req.Logo = &qrbrandr.Logo{Image: img, Ratio: c.Float64("logo-ratio"), Shape: shape}
		if level != qrbrandr.LevelHigh {
			log.Warnw("logo overlays are most reliable with level H", "level", level.String())
		}
	}
	return req, nil
}

func saveArtifact(s save.Saver, name string, data []byte, log *zap.SugaredLogger) error {
	if err := s.Save(name, data); err != nil {
		log.Errorw("save failed", "file", name, "error", err)
		return err
	}
	log.Infow("saved", "file", name, "bytes", len(data))
	return nil
}

func logged(log *zap.SugaredLogger, err error) error {
	log.Errorw("generation failed", "error", err)
	return err
}
