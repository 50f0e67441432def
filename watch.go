package colorpicker

import (
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ReadProps reads a host props file: a YAML document with optional color
// and alpha keys.
func ReadProps(path string) (Props, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Props{}, err
	}
	var props Props
	if err := yaml.Unmarshal(b, &props); err != nil {
		return Props{}, errors.Wrapf(err, "props %s", path)
	}
	return props, nil
}

// PropsWatcher re-reads a host props file whenever it is written and
// delivers the result on C. Only the latest update is kept, so a slow
// consumer sees the newest props rather than a backlog. Receive from C on
// the host's event loop and pass the value to ColorPicker.SetProps.
type PropsWatcher struct {
	C <-chan Props

	stop chan struct{}
	done chan struct{}
}

// WatchProps starts watching path. The containing directory is watched so
// editors that replace the file are still seen.
func WatchProps(path string, logger *log.Logger) (*PropsWatcher, error) {
	if logger == nil {
		logger = log.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	c := make(chan Props, 1)
	w := &PropsWatcher{C: c, stop: make(chan struct{}), done: make(chan struct{})}
	name := filepath.Clean(path)

	go func() {
		defer close(w.done)
		defer watcher.Close()
		for {
			select {
			case <-w.stop:
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != name || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				props, err := ReadProps(path)
				if err != nil {
					logger.Printf("colorpicker: props watcher: %v", err)
					continue
				}
				// a truncate shows up as a write of an empty file
				if !props.Color.IsControlled() && !props.Alpha.IsControlled() {
					continue
				}
				select {
				case c <- props:
				default:
					select {
					case <-c:
					default:
					}
					c <- props
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Printf("colorpicker: props watcher: %v", err)
			}
		}
	}()
	return w, nil
}

// Stop ends the watch and waits for the watcher goroutine to exit.
func (w *PropsWatcher) Stop() {
	close(w.stop)
	<-w.done
}
