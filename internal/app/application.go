package app

import (
	"context"
	"time"

	"ssnote/internal/appearance"
	"ssnote/internal/autosave"
	"ssnote/internal/config"
	"ssnote/internal/logger"
	"ssnote/internal/recent"
	"ssnote/internal/session"
	"ssnote/internal/settings"
	"ssnote/internal/shutdown"
	"ssnote/internal/status"
	"ssnote/internal/ticker"
	"ssnote/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"
)

const (
	AppName    = "SSNote"
	AppID      = "io.github.ssnote"
	AppVersion = "1.0.0"

	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

type Application struct {
	fyneApp   fyne.App
	window    fyne.Window
	view      *views.MainView
	session   *session.Session
	saver     *autosave.Saver
	lifecycle *Lifecycle
	settings  settings.Settings
	logger    logger.Logger
	now       func() time.Time

	// theme is the variant last handed to fyne
	theme appearance.Name
}

// NewApplication builds the editor on the real filesystem and a fresh fyne app.
func NewApplication(ctx context.Context, s settings.Settings, log logger.Logger) (*Application, error) {
	return newApplication(ctx, app.NewWithID(AppID), afero.NewOsFs(), s, log)
}

func newApplication(ctx context.Context, fyneApp fyne.App, fs afero.Fs, s settings.Settings, log logger.Logger) (*Application, error) {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":           AppVersion,
		"config":            s.ConfigPath,
		"autosave_interval": s.AutoSaveInterval.String(),
	})

	store := config.NewStore(fs, s.ConfigPath, log)
	cfg := store.Load()

	resolver := appearance.NewResolver(&cfg, appearance.PlatformHost(fyneApp))
	tracker := recent.NewTracker(fs, store, &cfg, log)
	view := views.NewMainView(window, AppVersion, log)
	sess := session.New(fs, store, &cfg, tracker, resolver, view, log)
	saver := autosave.NewSaver(sess, view, log)

	a := &Application{
		fyneApp:  fyneApp,
		window:   window,
		view:     view,
		session:  sess,
		saver:    saver,
		settings: s,
		logger:   log,
		now:      time.Now,
	}

	autoSaveTimer := ticker.New("autosave", s.AutoSaveInterval, saver.Tick, fyne.Do, log)
	statusTimer := ticker.New("status", s.StatusInterval, a.refreshStatus, fyne.Do, log)

	manager := shutdown.NewManager(ctx, log)
	manager.Register("session", sess)
	manager.Register("autosave-timer", autoSaveTimer)
	manager.Register("status-timer", statusTimer)

	a.lifecycle = NewLifecycle(manager, sess, log, autoSaveTimer, statusTimer)

	if err := a.setupHandlers(); err != nil {
		return nil, err
	}
	sess.OnChange(a.syncView)
	a.syncView()

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

func (a *Application) setupHandlers() error {
	handlers := NewHandlers(a.session, a.logger)

	a.view.SetNewHandler(handlers.HandleNew)
	a.view.SetOpenHandler(handlers.HandleOpen)
	a.view.SetSaveHandler(handlers.HandleSave)
	a.view.SetSaveAsHandler(handlers.HandleSaveAs)
	a.view.SetOpenRecentHandler(handlers.HandleOpenRecent)
	a.view.SetQuitHandler(a.quit)
	a.view.SetThemeHandler(handlers.HandleToggleTheme)
	a.view.SetWrapHandler(handlers.HandleToggleWrap)
	a.view.SetAutoSaveHandler(handlers.HandleToggleAutoSave)
	a.view.SetTextChangedHandler(func(string) { a.refreshStatus() })

	return nil
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.lifecycle.ListenForSignals(func() {
		fyne.Do(a.quit)
	})

	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.lifecycle.Start(a.settings.OpenPath, a.settings.StartupPrompt)
		a.view.FocusEditor()
	})

	a.logger.Info("Application", "GUI displayed", nil)
	a.window.ShowAndRun()

	return nil
}

// quit finishes the session and stops the event loop.
func (a *Application) quit() {
	a.lifecycle.Shutdown()
	a.fyneApp.Quit()
}

// syncView pushes session state into the window after any change.
func (a *Application) syncView() {
	path := a.session.FilePath()
	if path == "" {
		a.view.SetWindowTitle(AppName, "")
	} else {
		a.view.SetWindowTitle(AppName, status.DisplayName(path))
	}

	a.view.SetRecentFiles(a.session.RecentFiles())
	a.view.SetAutoSaveState(a.session.HasFile(), a.session.AutoSaveEnabled())
	a.view.ApplyWrap(a.session.Wrap())
	if name := a.session.Theme(); name != a.theme {
		a.theme = name
		a.view.ApplyTheme(name)
	}
	a.refreshStatus()
}

func (a *Application) refreshStatus() {
	a.view.UpdateStatus(status.Line(status.Snapshot{
		FilePath:        a.session.FilePath(),
		Text:            a.view.Text(),
		LastSavedAt:     a.session.LastSavedAt(),
		Now:             a.now(),
		AutoSaveEnabled: a.session.AutoSaveEnabled(),
	}))
}
