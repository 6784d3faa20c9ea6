package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/quickhull/internal/scene"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type sceneOptions struct {
	file   string
	seed   int64
	mode   string
	all    bool
	out    string
	imgcat bool
	watch  bool
}

func randomScene(width, height int, seed int64) *scene.Scene {
	log.Debug("generating random scene", "seed", seed, "width", width, "height", height)
	return scene.Random(width, height, newRand(seed))
}

func loadScene(opts sceneOptions) (*scene.Scene, error) {
	if opts.file == "" {
		return randomScene(800, 600, opts.seed), nil
	}
	return scene.Load(opts.file)
}

func renderScene(opts sceneOptions) error {
	if opts.watch && opts.file == "" {
		return errors.New("--watch needs a scene --file")
	}
	if err := renderOnce(opts); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	return watchScene(context.Background(), opts, nil)
}

func renderOnce(opts sceneOptions) error {
	s, err := loadScene(opts)
	if err != nil {
		return err
	}

	if !opts.all {
		mode, err := scene.ParseMode(opts.mode)
		if err != nil {
			return err
		}
		return renderMode(s, mode, opts.out, opts.imgcat)
	}

	// Modes only read the scene, so they can be evaluated side by side.
	g, _ := errgroup.WithContext(context.Background())
	for _, mode := range scene.Modes() {
		mode := mode
		g.Go(func() error {
			return renderMode(s, mode, modePath(opts.out, mode), false)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if opts.imgcat {
		for _, mode := range scene.Modes() {
			imgcat.CatFile(modePath(opts.out, mode), os.Stdout)
		}
	}
	return nil
}

func renderMode(s *scene.Scene, mode scene.Mode, path string, cat bool) error {
	frame, err := s.Evaluate(mode)
	if err != nil {
		return err
	}
	if err := frame.Draw(path); err != nil {
		return err
	}
	log.Info("rendered scene", "mode", mode, "path", path)
	if mode == scene.PointConvexHull {
		log.Info("probe classified", "inside", frame.ProbeInside)
	}
	if mode == scene.GJK {
		log.Info("overlap test", "overlapping", frame.Overlapping)
	}
	if cat {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

// scene.png -> scene-sum.png
func modePath(out string, mode scene.Mode) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + "-" + mode.String() + ext
}

// Re-render every time the scene file is written, until the context is done.
// Editors often replace a file rather than write it, so the directory is
// watched and events are filtered by name. If rendered is not nil, it receives
// the result of every re-render.
func watchScene(ctx context.Context, opts sceneOptions, rendered chan<- error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not start watcher")
	}
	defer watcher.Close()

	target := filepath.Clean(opts.file)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "could not watch %q", opts.file)
	}
	log.Info("watching scene", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			err := renderOnce(opts)
			if err != nil {
				// Keep watching; the file may be mid-edit.
				log.Warn("could not render scene", "error", err)
			}
			if rendered != nil {
				rendered <- err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "watcher failed")
		}
	}
}
