// Package session tracks the open document and its file lifecycle.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"ssnote/internal/appearance"
	"ssnote/internal/config"
	"ssnote/internal/logger"
	"ssnote/internal/recent"
)

// ErrEmptyPath is returned when a bind or open is asked for without a path.
var ErrEmptyPath = errors.New("empty file path")

const filePerm = 0o644

// Session owns the bound path and save state of the single open document.
// It is not safe for concurrent use; callers stay on the UI goroutine.
type Session struct {
	fs     afero.Fs
	store  *config.Store
	cfg    *config.Config
	recent *recent.Tracker
	themes *appearance.Resolver
	ui     UI
	logger logger.Logger
	now    func() time.Time

	filePath        string
	lastSavedAt     time.Time
	autoSaveEnabled bool
	autoSaveLocked  bool

	listeners []func()
}

// New returns an unbound session with auto-save enabled.
func New(
	fs afero.Fs,
	store *config.Store,
	cfg *config.Config,
	tracker *recent.Tracker,
	themes *appearance.Resolver,
	ui UI,
	log logger.Logger,
) *Session {
	return &Session{
		fs:              fs,
		store:           store,
		cfg:             cfg,
		recent:          tracker,
		themes:          themes,
		ui:              ui,
		logger:          log,
		now:             time.Now,
		autoSaveEnabled: true,
	}
}

// SetClock replaces time.Now, for tests.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// OnChange registers fn to run after every state change.
func (s *Session) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// FilePath returns the bound path, or "" when nothing is bound.
func (s *Session) FilePath() string {
	return s.filePath
}

// HasFile reports whether a path is bound.
func (s *Session) HasFile() bool {
	return s.filePath != ""
}

// LastSavedAt is the zero time until the first bind, open or save.
func (s *Session) LastSavedAt() time.Time {
	return s.lastSavedAt
}

// AutoSaveEnabled reports the auto-save toggle.
func (s *Session) AutoSaveEnabled() bool {
	return s.autoSaveEnabled
}

// AutoSaveLocked reports whether the save prompt was declined for this unbound period.
func (s *Session) AutoSaveLocked() bool {
	return s.autoSaveLocked
}

// Wrap reports the persisted word-wrap preference.
func (s *Session) Wrap() bool {
	return s.cfg.Wrap
}

// Theme returns the theme currently in effect.
func (s *Session) Theme() appearance.Name {
	return s.themes.Resolve()
}

// RecentFiles returns the recent list, most recent first.
func (s *Session) RecentFiles() []string {
	return s.recent.Paths()
}


// RefreshRecent prunes vanished files from the recent list and persists it.
func (s *Session) RefreshRecent() []string {
	paths := s.recent.Refresh()
	s.notify()
	return paths
}

// LockAutoSave stops the unbound-document prompt until a path is bound.
func (s *Session) LockAutoSave() {
	s.autoSaveLocked = true
	s.logger.Debug("Session", "auto-save prompt locked", nil)
	s.notify()
}

// BindNew creates an empty file at path and makes it the open document.
func (s *Session) BindNew(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if err := afero.WriteFile(s.fs, path, nil, filePerm); err != nil {
		err = fmt.Errorf("create %s: %w", path, err)
		s.reportError("New File Error", err)
		return err
	}

	s.ui.SetText("")
	s.filePath = path
	s.autoSaveLocked = false
	s.lastSavedAt = s.now()

	s.logger.Info("Session", "new file bound", map[string]interface{}{"path": path})
	s.notify()
	return nil
}

// NewFile saves the current document if possible, then asks where the new
// one should live. A failed pre-save does not block the new file.
func (s *Session) NewFile() {
	if s.HasFile() {
		_ = s.Save(true)
	}

	s.ui.PickSavePath(func(path string) {
		if path == "" {
			return
		}
		_ = s.BindNew(path)
	})
}

// OpenDialog asks for a file and opens it.
func (s *Session) OpenDialog() {
	s.ui.PickOpenPath(func(path string) {
		if path == "" {
			return
		}
		_ = s.Open(path)
	})
}

// Open silently saves the bound document, then loads path. A read failure is
// reported and leaves the session as it was.
func (s *Session) Open(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if s.HasFile() {
		_ = s.Save(true)
	}

	if err := s.load(path); err != nil {
		s.reportError("Open Error", err)
		return err
	}
	return nil
}

func (s *Session) load(path string) error {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return fmt.Errorf("could not open file %s: %w", path, err)
	}

	s.ui.SetText(string(data))
	s.filePath = path
	s.lastSavedAt = s.now()
	s.autoSaveLocked = false
	s.remember(path)

	s.logger.Info("Session", "file opened", map[string]interface{}{
		"path":  path,
		"bytes": len(data),
	})
	s.notify()
	return nil
}

// Save writes the buffer to the bound path, or runs the save-as flow when
// nothing is bound. Silent saves never show dialogs; their failures are only
// logged.
func (s *Session) Save(silent bool) error {
	if !s.HasFile() {
		s.SaveAs(nil)
		return nil
	}

	if err := s.write(s.filePath); err != nil {
		if silent {
			s.logger.Warning("Session", "silent save failed", map[string]interface{}{
				"path":  s.filePath,
				"error": err.Error(),
			})
		} else {
			s.reportError("Save Error", err)
		}
		return err
	}

	s.commitSave(silent)
	return nil
}

// SaveAs asks for a destination and saves there. The bound path only changes
// once the write succeeded. done, if set, runs when the flow ends.
func (s *Session) SaveAs(done func()) {
	s.ui.PickSavePath(func(path string) {
		if done != nil {
			defer done()
		}
		if path == "" {
			return
		}

		if err := s.write(path); err != nil {
			s.reportError("Save Error", err)
			return
		}

		s.filePath = path
		s.commitSave(false)
	})
}

func (s *Session) write(path string) error {
	if err := afero.WriteFile(s.fs, path, []byte(s.ui.Text()), filePerm); err != nil {
		return fmt.Errorf("could not save file %s: %w", path, err)
	}
	return nil
}

func (s *Session) commitSave(silent bool) {
	s.lastSavedAt = s.now()
	s.autoSaveLocked = false
	s.remember(s.filePath)

	s.logger.Debug("Session", "file saved", map[string]interface{}{
		"path":   s.filePath,
		"silent": silent,
	})

	if !silent {
		s.ui.ShowInfo("Saved", "File saved.")
	}
	s.notify()
}

// Restore binds the document at startup. initial, when set, wins over the
// configured last file and is created if missing; a read failure on it is
// reported, while one on the last file is only logged. With nothing bound and
// prompt set, the user is asked for a file to create.
func (s *Session) Restore(initial string, prompt bool) {
	switch {
	case initial != "":
		exists, _ := afero.Exists(s.fs, initial)
		if !exists {
			_ = s.BindNew(initial)
			break
		}
		if err := s.load(initial); err != nil {
			s.reportError("Open Error", err)
		}
	case s.cfg.LastFilePath() != "":
		last := s.cfg.LastFilePath()
		if exists, _ := afero.Exists(s.fs, last); exists {
			s.restoreFrom(last)
		}
	}

	if s.HasFile() || !prompt {
		return
	}

	s.ui.PickSavePath(func(path string) {
		if path == "" {
			return
		}
		_ = s.BindNew(path)
	})
}

func (s *Session) restoreFrom(path string) {
	if err := s.load(path); err != nil {
		s.logger.Warning("Session", "failed to load last file", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}

// Close performs the final silent save and persists the config.
func (s *Session) Close() {
	if s.HasFile() {
		_ = s.Save(true)
	}
	s.persistConfig()
	s.logger.Info("Session", "session closed", map[string]interface{}{"path": s.filePath})
}

// Shutdown lets the session take part in the shutdown sequence.
func (s *Session) Shutdown() {
	s.Close()
}

// ToggleAutoSave flips auto-save for this session only.
func (s *Session) ToggleAutoSave() bool {
	s.autoSaveEnabled = !s.autoSaveEnabled
	s.notify()
	return s.autoSaveEnabled
}

// ToggleWrap flips word wrap and persists it.
func (s *Session) ToggleWrap() bool {
	s.cfg.Wrap = !s.cfg.Wrap
	s.persistConfig()
	s.notify()
	return s.cfg.Wrap
}

// ToggleTheme switches away from the theme currently in effect and stores
// the result as the user's override.
func (s *Session) ToggleTheme() appearance.Name {
	next := appearance.Opposite(s.themes.Resolve())
	s.cfg.SetThemeOverride(string(next))
	s.persistConfig()
	s.notify()
	return next
}

func (s *Session) remember(path string) {
	s.cfg.SetLastFile(path)
	s.recent.Record(path)
	s.persistConfig()
}

func (s *Session) persistConfig() {
	if err := s.store.Save(*s.cfg); err != nil {
		s.logger.Warning("Session", "config not saved", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Session) reportError(title string, err error) {
	s.logger.Error("Session", err, map[string]interface{}{"title": title})
	s.ui.ShowError(title, err)
}

func (s *Session) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}
