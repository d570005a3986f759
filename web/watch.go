package web

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"

	"github.com/brian-armstrong/wsz"
)

// Watcher reloads a Handler's skin whenever the skin file changes on disk.
// Reload failures are logged and the previous skin keeps being served.
type Watcher struct {
	watcher *fsnotify.Watcher
	h       *Handler
	path    string
	load    func(path string) (*wsz.Skin, error)

	// Reloaded receives the path after every successful reload. It is
	// never blocked on.
	Reloaded chan string

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// debounce collapses the bursts of events editors and zip tools produce
// while writing a file.
const debounce = 100 * time.Millisecond

// Watch starts watching path. The containing directory is watched so that
// files replaced by rename are picked up too.
func (h *Handler) Watch(path string) (*Watcher, error) {
	return h.watch(path, wsz.Open)
}

func (h *Handler) watch(path string, load func(string) (*wsz.Skin, error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		h:        h,
		path:     abs,
		load:     load,
		Reloaded: make(chan string, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var timer <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer = time.After(debounce)
		case <-timer:
			timer = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			glog.Errorf("watching %s: %v", w.path, err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	s, err := w.load(w.path)
	if err != nil {
		glog.Errorf("reloading %s, keeping previous skin: %v", w.path, err)
		return
	}
	w.h.SetSkin(s)
	select {
	case w.Reloaded <- w.path:
	default:
	}
}
