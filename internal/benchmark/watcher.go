package benchmark

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"resumatch/internal/errors"
)

// FileWatcher watches the benchmark file for changes and triggers reloads
type FileWatcher struct {
	mu sync.RWMutex

	// File path to watch
	file string

	// File metadata
	lastModTime time.Time
	hasModTime  bool

	// Watcher components
	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	// Control channels
	stopChan   chan struct{}
	reloadChan chan struct{}

	// Callback and logging
	reloadCallback func()
	logger         *errors.Logger

	// State
	running bool
}

// NewFileWatcher creates a new benchmark file watcher
func NewFileWatcher(file string, debounceDelay time.Duration, reloadCallback func(), logger *errors.Logger) (*FileWatcher, error) {
	if file == "" {
		return nil, fmt.Errorf("benchmark file path is required for watching")
	}
	if debounceDelay == 0 {
		debounceDelay = time.Second // Default 1 second debounce
	}

	return &FileWatcher{
		file:           file,
		debounceDelay:  debounceDelay,
		stopChan:       make(chan struct{}),
		reloadChan:     make(chan struct{}, 1), // Buffered to prevent blocking
		reloadCallback: reloadCallback,
		logger:         logger,
	}, nil
}

// Start begins watching the benchmark file for changes
func (fw *FileWatcher) Start() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.running {
		return fmt.Errorf("benchmark file watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	fw.fsWatcher = watcher

	fw.updateModTime()

	if err := fw.addFileToWatcher(); err != nil {
		fw.cleanupWatcher()
		return err
	}

	fw.running = true
	go fw.watchLoop()

	if fw.logger != nil {
		fw.logger.Info("Benchmark file watcher started",
			"file", fw.file,
			"debounce_delay", fw.debounceDelay)
	}
	return nil
}

// cleanupWatcher closes the file watcher and logs any errors
func (fw *FileWatcher) cleanupWatcher() {
	if fw.fsWatcher != nil {
		if closeErr := fw.fsWatcher.Close(); closeErr != nil && fw.logger != nil {
			fw.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
	}
}

// Stop stops the benchmark file watcher
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.running {
		return nil
	}

	// Signal stop
	close(fw.stopChan)

	// Stop debounce timer if running
	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}

	// Close file system watcher
	if fw.fsWatcher != nil {
		if err := fw.fsWatcher.Close(); err != nil {
			if fw.logger != nil {
				fw.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}

	fw.running = false

	if fw.logger != nil {
		fw.logger.Info("Benchmark file watcher stopped")
	}

	return nil
}

// addFileToWatcher adds the file and its directory to the file system watcher
func (fw *FileWatcher) addFileToWatcher() error {
	// Watch the file itself
	if err := fw.fsWatcher.Add(fw.file); err != nil {
		// If the file doesn't exist, watch its directory instead
		if os.IsNotExist(err) {
			dir := filepath.Dir(fw.file)
			if err := fw.fsWatcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", dir, err)
			}
			if fw.logger != nil {
				fw.logger.Info("Watching directory for benchmark file",
					"file", fw.file, "directory", dir)
			}
			return nil
		}
		return fmt.Errorf("failed to watch file %s: %w", fw.file, err)
	}

	// Also watch the directory to catch atomic writes (rename operations)
	dir := filepath.Dir(fw.file)
	if err := fw.fsWatcher.Add(dir); err != nil {
		if fw.logger != nil {
			fw.logger.Warn("Failed to watch directory for atomic writes",
				"directory", dir, "error", err)
		}
	}

	return nil
}

// updateModTime records the current modification time of the watched file
func (fw *FileWatcher) updateModTime() {
	if stat, err := os.Stat(fw.file); err == nil {
		fw.lastModTime = stat.ModTime()
		fw.hasModTime = true
	}
}

// hasFileChanged checks if the file has been modified since last check
func (fw *FileWatcher) hasFileChanged() bool {
	stat, err := os.Stat(fw.file)
	if err != nil {
		if os.IsNotExist(err) && fw.hasModTime {
			// File was deleted
			fw.hasModTime = false
			return true
		}
		return false
	}

	if !fw.hasModTime || stat.ModTime().After(fw.lastModTime) {
		fw.lastModTime = stat.ModTime()
		fw.hasModTime = true
		return true
	}

	return false
}

// watchLoop is the main event loop for file watching
func (fw *FileWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-fw.fsWatcher.Events:
			if !ok {
				return
			}

			if fw.shouldProcessEvent(event) {
				fw.scheduleReload()
			}

		case err, ok := <-fw.fsWatcher.Errors:
			if !ok {
				return
			}
			if fw.logger != nil {
				fw.logger.LogError(err, "File watcher error")
			}

		case <-fw.reloadChan:
			// Debounced reload trigger
			if fw.hasFileChanged() {
				if fw.logger != nil {
					fw.logger.Info("Benchmark file changed, triggering reload")
				}
				fw.reloadCallback()
			}

		case <-fw.stopChan:
			return
		}
	}
}

// shouldProcessEvent determines if a file system event should trigger a reload check
func (fw *FileWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Name != fw.file && filepath.Base(event.Name) != filepath.Base(fw.file) {
		return false
	}

	// Process write, create, and rename events
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// scheduleReload schedules a debounced reload
func (fw *FileWatcher) scheduleReload() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	// Reset the debounce timer
	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}

	fw.debounceTimer = time.AfterFunc(fw.debounceDelay, func() {
		select {
		case fw.reloadChan <- struct{}{}:
			// Reload scheduled
		default:
			// Channel is full, reload already scheduled
		}
	})
}

// IsRunning returns whether the watcher is currently running
func (fw *FileWatcher) IsRunning() bool {
	fw.mu.RLock()
	defer fw.mu.RUnlock()
	return fw.running
}
