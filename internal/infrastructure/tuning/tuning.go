// Package tuning watches a small YAML file of live scene parameters and
// posts each change as a TuneIntent.
//
//	bloom: 4.5
//	fov: 95
package tuning

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/starfield/internal/application/system"
	"github.com/younwookim/starfield/internal/domain/entity"
)

// buffer is the intent channel capacity
const buffer = 8

type values struct {
	Bloom *float64 `yaml:"bloom"`
	FOV   *float64 `yaml:"fov"`
}

// Parse decodes tuning data into an intent, clamping values to their
// valid ranges.
func Parse(data []byte) (system.TuneIntent, error) {
	var v values
	if err := yaml.Unmarshal(data, &v); err != nil {
		return system.TuneIntent{}, fmt.Errorf("failed to parse tuning: %w", err)
	}

	var intent system.TuneIntent
	if v.Bloom != nil {
		b := entity.Clamp(*v.Bloom, entity.BloomMin, entity.BloomMax)
		intent.Bloom = &b
	}
	if v.FOV != nil {
		f := entity.Clamp(*v.FOV, entity.FOVMin, entity.FOVMax)
		intent.FOV = &f
	}
	return intent, nil
}

// Watcher reloads a tuning file whenever it is written
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	out     chan system.TuneIntent
	done    chan struct{}
}

// NewWatcher starts watching path. The file does not need to exist yet;
// its directory does. If the file exists it is loaded once immediately.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory; editors often replace the file on save
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		out:     make(chan system.TuneIntent, buffer),
		done:    make(chan struct{}),
	}
	w.reload()
	go w.run()
	return w, nil
}

// Intents returns the channel of parsed changes. The consumer drains it
// on its own goroutine.
func (w *Watcher) Intents() <-chan system.TuneIntent {
	return w.out
}

// Close stops watching
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[tuning] watcher error: %v", err)
		}
	}
}

// reload parses the file and posts the result. Bad files are logged and
// the previous values stay in effect.
func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[tuning] failed to read %s: %v", w.path, err)
		}
		return
	}

	intent, err := Parse(data)
	if err != nil {
		log.Printf("[tuning] %s: %v", w.path, err)
		return
	}
	if intent.Empty() {
		return
	}

	select {
	case w.out <- intent:
	default:
		log.Printf("[tuning] dropping update, consumer is behind")
	}
}
