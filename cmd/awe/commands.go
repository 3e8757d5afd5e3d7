package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/aeyian/wallpaper/app"
	wpcolor "github.com/aeyian/wallpaper/internal/color"
	"github.com/aeyian/wallpaper/layer"
	"github.com/aeyian/wallpaper/project"
	"github.com/aeyian/wallpaper/render"
)

type command struct {
	name    string
	args    string
	summary string
	run     func(e *env, args []string) error
}

var commands = []command{
	{"new", "[-name n] [-width w] [-height h]", "create a project", cmdNew},
	{"list", "", "list projects", cmdList},
	{"show", "<id>", "print a project and its layers", cmdShow},
	{"rename", "<id> <name>", "rename a project", cmdRename},
	{"delete", "-yes <id>", "delete a project and all its files", cmdDelete},
	{"types", "", "list layer types", cmdTypes},
	{"layer-add", "[-name n] [-color c] [-x x] [-y y] [-w w] [-h h] <id>", "add a color layer", cmdLayerAdd},
	{"layer-rm", "<id> <layer>", "remove a layer", cmdLayerRemove},
	{"hide-layer", "<id> <layer>", "hide a layer", visibility(false)},
	{"show-layer", "<id> <layer>", "show a hidden layer", visibility(true)},
	{"import-canvas", "<id> <file>", "set the canvas image from a PNG or JPEG", cmdImportCanvas},
	{"preview", "<id>", "regenerate preview.png", cmdPreview},
	{"render", "[-width w] [-height h] [-o file] [-editor] <id>", "render a project to PNG", cmdRender},
	{"unlock", "<id>", "remove a stale editor lock", cmdUnlock},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// positional parses fs and requires exactly n remaining arguments.
func positional(fs *flag.FlagSet, args []string, n int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != n {
		return nil, errUsage
	}
	return fs.Args(), nil
}

// edit opens the project for editing, runs fn and closes it again.
func edit(e *env, id string, fn func(*app.Session) error) (err error) {
	s, err := e.app.Open(id)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.app.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

func cmdNew(e *env, args []string) error {
	fs := newFlags("new")
	name := fs.String("name", "Untitled", "display name")
	width := fs.Int("width", project.DefaultWidth, "canvas width")
	height := fs.Int("height", project.DefaultHeight, "canvas height")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}

	p, err := e.store.Create(*name, *width, *height)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, p.ID)
	return nil
}

func cmdList(e *env, args []string) error {
	if _, err := positional(newFlags("list"), args, 0); err != nil {
		return err
	}
	list, err := e.store.List()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRESOLUTION\tVERSION")
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%s\n", s.ID, s.Name, s.Resolution.Width, s.Resolution.Height, s.FormatVersion)
	}
	return tw.Flush()
}

func cmdShow(e *env, args []string) error {
	rest, err := positional(newFlags("show"), args, 1)
	if err != nil {
		return err
	}
	p, err := e.store.Open(rest[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "id:         %s\n", p.ID)
	fmt.Fprintf(e.stdout, "name:       %s\n", p.Name)
	fmt.Fprintf(e.stdout, "resolution: %dx%d\n", p.Resolution.Width, p.Resolution.Height)
	fmt.Fprintf(e.stdout, "versions:   format %s, editor %s\n", p.FormatVersion, p.EditorVersion)
	fmt.Fprintf(e.stdout, "dir:        %s\n", p.Dir)
	if p.Degraded {
		fmt.Fprintln(e.stdout, "warning:    manifest unreadable, showing defaults")
	}
	if info, ok := app.ReadLock(p.Dir); ok {
		fmt.Fprintf(e.stdout, "locked:     pid %d\n", info.PID)
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\nLAYER\tTYPE\tNAME\tPOSITION\tSIZE\tCOLOR\tVISIBLE")
	canvas := p.Resolution.Size()
	for l := range layer.Listable(p.Layers) {
		pos, size := l.Bounds(canvas)
		color := "-"
		if sc, ok := l.Content.(layer.SolidColor); ok {
			color = sc.Color
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d,%d\t%dx%d\t%s\t%t\n",
			l.ID, l.Type(), l.Name, pos.X, pos.Y, size.Width, size.Height, color, l.Visible)
	}
	return tw.Flush()
}

func cmdRename(e *env, args []string) error {
	rest, err := positional(newFlags("rename"), args, 2)
	if err != nil {
		return err
	}
	return edit(e, rest[0], func(s *app.Session) error {
		return s.Rename(rest[1])
	})
}

func cmdDelete(e *env, args []string) error {
	fs := newFlags("delete")
	yes := fs.Bool("yes", false, "confirm deletion")
	rest, err := positional(fs, args, 1)
	if err != nil {
		return err
	}
	if !*yes {
		return fmt.Errorf("refusing to delete %s without -yes", rest[0])
	}
	return e.store.Delete(rest[0])
}

func cmdTypes(e *env, args []string) error {
	if _, err := positional(newFlags("types"), args, 0); err != nil {
		return err
	}
	for _, c := range layer.Catalog() {
		fmt.Fprintf(e.stdout, "%s:\n", c.Name)
		for _, t := range c.Types {
			note := ""
			if t != layer.TypeSolidColor {
				note = " (not rendered yet)"
			}
			fmt.Fprintf(e.stdout, "  %-16s %s%s\n", t, t.Label(), note)
		}
	}
	return nil
}

func cmdLayerAdd(e *env, args []string) error {
	fs := newFlags("layer-add")
	name := fs.String("name", "", "layer name (default \"Layer N\")")
	color := fs.String("color", layer.DefaultColor, "fill color")
	x := fs.Int("x", 0, "left edge in canvas pixels")
	y := fs.Int("y", 0, "top edge in canvas pixels")
	w := fs.Int("w", 0, "width (default full canvas)")
	h := fs.Int("h", 0, "height (default full canvas)")
	rest, err := positional(fs, args, 1)
	if err != nil {
		return err
	}

	fill, err := wpcolor.ParseHex(*color)
	if err != nil {
		return err
	}

	return edit(e, rest[0], func(s *app.Session) error {
		var size *layer.Size
		if *w > 0 || *h > 0 {
			size = layerSize(*w, *h, s.Project().Resolution)
		}
		l := layer.NewSolidColor(*name, wpcolor.FormatHex(fill), layer.Position{X: *x, Y: *y}, size)
		added, err := s.AddLayer(l)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.stdout, added.ID)
		return nil
	})
}

// layerSize fills a missing dimension from the canvas.
func layerSize(w, h int, canvas project.Resolution) *layer.Size {
	if w <= 0 {
		w = canvas.Width
	}
	if h <= 0 {
		h = canvas.Height
	}
	return &layer.Size{Width: w, Height: h}
}

func layerArgs(name string, args []string) (string, int, error) {
	rest, err := positional(newFlags(name), args, 2)
	if err != nil {
		return "", 0, err
	}
	id, err := strconv.Atoi(rest[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: layer id %q", errUsage, rest[1])
	}
	return rest[0], id, nil
}

func cmdLayerRemove(e *env, args []string) error {
	pid, lid, err := layerArgs("layer-rm", args)
	if err != nil {
		return err
	}
	return edit(e, pid, func(s *app.Session) error {
		return s.RemoveLayer(lid)
	})
}

func visibility(visible bool) func(*env, []string) error {
	return func(e *env, args []string) error {
		pid, lid, err := layerArgs("visibility", args)
		if err != nil {
			return err
		}
		return edit(e, pid, func(s *app.Session) error {
			return s.SetVisibility(lid, visible)
		})
	}
}

func cmdImportCanvas(e *env, args []string) error {
	rest, err := positional(newFlags("import-canvas"), args, 2)
	if err != nil {
		return err
	}
	return edit(e, rest[0], func(s *app.Session) error {
		if err := s.ImportCanvas(rest[1]); err != nil {
			return err
		}
		return s.RefreshPreview()
	})
}

func cmdPreview(e *env, args []string) error {
	rest, err := positional(newFlags("preview"), args, 1)
	if err != nil {
		return err
	}
	return edit(e, rest[0], func(s *app.Session) error {
		return s.RefreshPreview()
	})
}

func cmdRender(e *env, args []string) error {
	fs := newFlags("render")
	width := fs.Int("width", 0, "output width (default canvas width)")
	height := fs.Int("height", 0, "output height (default canvas height)")
	out := fs.String("o", "wallpaper.png", "output file")
	editor := fs.Bool("editor", false, "draw the editor view with margin and background")
	rest, err := positional(fs, args, 1)
	if err != nil {
		return err
	}

	return edit(e, rest[0], func(s *app.Session) error {
		res := s.Project().Resolution
		w, h := *width, *height
		if w <= 0 {
			w = res.Width
		}
		if h <= 0 {
			h = res.Height
		}

		var surface *render.Surface
		if *editor {
			surface = render.NewSurface(w, h)
			s.Render(surface.Image())
		} else {
			surface = s.Export(w, h)
		}
		if err := surface.SavePNG(*out); err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "%s (%dx%d)\n", *out, surface.Width(), surface.Height())
		return nil
	})
}

func cmdUnlock(e *env, args []string) error {
	rest, err := positional(newFlags("unlock"), args, 1)
	if err != nil {
		return err
	}
	p, err := e.store.Open(rest[0])
	if err != nil {
		return err
	}
	return app.BreakLock(p.Dir)
}
