package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gogpu/anchormark"
	"github.com/gogpu/anchormark/recording"
	"golang.org/x/sync/errgroup"
)

// writeOutputs plays rec back to one backend per format concurrently and
// writes each result to base plus the format's extension. The returned
// paths follow the order of formats. Duplicate formats are written once.
func writeOutputs(ctx context.Context, rec *recording.Recording, vp recording.Viewport, base string, formats []string) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	formats = unique(formats)
	paths := make([]string, len(formats))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := writeOutput(rec, vp, base, name)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeOutput(rec *recording.Recording, vp recording.Viewport, base, name string) (string, error) {
	f, ok := recording.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%s: unknown format", name)
	}
	b, err := recording.NewBackend(name)
	if err != nil {
		return "", err
	}
	if err := rec.Playback(b, vp); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	path := base + f.Extension
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	n, err := b.WriteTo(file)
	if err != nil {
		file.Close()
		return "", fmt.Errorf("%s: write %s: %w", name, path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("%s: close %s: %w", name, path, err)
	}

	anchormark.Logger().Info("anchormark: wrote output",
		"format", name,
		"path", path,
		"bytes", n)
	return path, nil
}

func unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
