package preset

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 250 * time.Millisecond

// ChangeFunc receives the freshly loaded presets, or the error that
// prevented loading them.
type ChangeFunc func(presets []models.Preset, err error)

// Watch reloads the presets file whenever it changes and reports the result
// through onChange. The containing directory is watched so that editors that
// replace the file on save are handled. Watching stops when ctx is done.
// onChange runs on a background goroutine.
func Watch(ctx context.Context, path string, onChange ChangeFunc) error {
	fsW, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create presets watcher: %w", err)
	}
	if err := fsW.Add(filepath.Dir(path)); err != nil {
		fsW.Close()
		return fmt.Errorf("watch presets dir: %w", err)
	}

	go watchLoop(ctx, fsW, filepath.Clean(path), onChange)
	return nil
}

func watchLoop(ctx context.Context, fsW *fsnotify.Watcher, path string, onChange ChangeFunc) {
	defer fsW.Close()
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-fsW.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceInterval, func() {
				presets, err := LoadFile(path)
				onChange(presets, err)
			})

		case err, ok := <-fsW.Errors:
			if !ok {
				return
			}
			log.Printf("presets watcher error: %v", err)
		}
	}
}
