package dropwatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"ai-docqa-client/internal/entity"
	"ai-docqa-client/internal/pkg/localfile"
	"ai-docqa-client/internal/pkg/logger"

	"github.com/fsnotify/fsnotify"
)

type DropSubmitter interface {
	SubmitFromDrop(ctx context.Context, files []entity.UploadFile) (entity.UploadOutcome, bool)
}

// Watcher turns files appearing in a folder into drop submissions. A file is
// submitted once it has been quiet for the settle period.
type Watcher struct {
	dir    string
	settle time.Duration
	upload DropSubmitter
	logger logger.ILogger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewWatcher(dir string, settle time.Duration, upload DropSubmitter, log logger.ILogger) *Watcher {
	return &Watcher{
		dir:    dir,
		settle: settle,
		upload: upload,
		logger: log,
		timers: make(map[string]*time.Timer),
	}
}

// Run blocks until ctx is done or the folder cannot be watched.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("DROP", "Watching drop folder", map[string]interface{}{"dir": w.dir, "settle_ms": w.settle.Milliseconds()})

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
				w.schedule(ctx, ev.Name)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("DROP", "Watcher error", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (w *Watcher) schedule(ctx context.Context, path string) {
	// Editors and browsers write hidden temp files before renaming.
	if strings.HasPrefix(filepath.Base(path), ".") {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.settle, func() { w.submit(ctx, path) })
}

func (w *Watcher) submit(ctx context.Context, path string) {
	w.mu.Lock()
	delete(w.timers, path)
	w.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return
	}

	file, err := localfile.Load(path)
	if err != nil {
		w.logger.Error("DROP", "Failed to read dropped file", map[string]interface{}{"path": path, "error": err.Error()})
		return
	}

	outcome, _ := w.upload.SubmitFromDrop(ctx, []entity.UploadFile{file})
	w.logger.Info("DROP", "Dropped file submitted", map[string]interface{}{
		"filename": outcome.Filename,
		"status":   outcome.Status,
		"message":  outcome.Message,
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}
