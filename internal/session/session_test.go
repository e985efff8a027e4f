package session_test

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssnote/internal/appearance"
	"ssnote/internal/config"
	"ssnote/internal/logger"
	"ssnote/internal/recent"
	"ssnote/internal/session"
	"ssnote/internal/session/sessiontest"
	"ssnote/internal/status"
)

const configPath = "/cfg/config.json"

type fixture struct {
	fs    afero.Fs
	store *config.Store
	cfg   *config.Config
	ui    *sessiontest.UI
	sess  *session.Session
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithFs(t, afero.NewMemMapFs())
}

func newFixtureWithFs(t *testing.T, fs afero.Fs) *fixture {
	t.Helper()
	log := logger.Nop()
	store := config.NewStore(fs, configPath, log)
	cfg := store.Load()
	ui := &sessiontest.UI{}
	host := appearance.HostFunc(func() (appearance.Name, error) { return appearance.Light, nil })

	f := &fixture{
		fs:    fs,
		store: store,
		cfg:   &cfg,
		ui:    ui,
		now:   time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	f.sess = session.New(fs, store, f.cfg, recent.NewTracker(fs, store, f.cfg, log),
		appearance.NewResolver(f.cfg, host), ui, log)
	f.sess.SetClock(func() time.Time { return f.now })
	return f
}

func (f *fixture) writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, path, []byte(content), 0o644))
}

func (f *fixture) readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(f.fs, path)
	require.NoError(t, err)
	return string(data)
}

// failingFs rejects reads of failRead and writes of failWrite.
type failingFs struct {
	afero.Fs
	failRead  string
	failWrite string
}

func (f failingFs) Open(name string) (afero.File, error) {
	if name == f.failRead {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Open(name)
}

func (f failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if name == f.failWrite {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func TestNewSessionIsUnbound(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.sess.HasFile())
	assert.True(t, f.sess.AutoSaveEnabled())
	assert.False(t, f.sess.AutoSaveLocked())
	assert.True(t, f.sess.LastSavedAt().IsZero())
}

func TestBindNewCreatesEmptyFile(t *testing.T) {
	f := newFixture(t)
	f.ui.Buffer = "scratch"
	f.sess.LockAutoSave()

	require.NoError(t, f.sess.BindNew("/notes/new.txt"))

	assert.Equal(t, "/notes/new.txt", f.sess.FilePath())
	assert.Equal(t, "", f.readFile(t, "/notes/new.txt"))
	assert.Equal(t, "", f.ui.Buffer)
	assert.False(t, f.sess.AutoSaveLocked())
	assert.Equal(t, f.now, f.sess.LastSavedAt())
}

func TestBindNewFailureAborts(t *testing.T) {
	f := newFixtureWithFs(t, afero.NewReadOnlyFs(afero.NewMemMapFs()))
	f.ui.Buffer = "keep me"

	err := f.sess.BindNew("/notes/new.txt")

	require.Error(t, err)
	assert.Len(t, f.ui.Errors, 1)
	assert.False(t, f.sess.HasFile())
	assert.Equal(t, "keep me", f.ui.Buffer)
}

func TestBindNewRejectsEmptyPath(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.sess.BindNew(""), session.ErrEmptyPath)
}

func TestOpenScenarioCounts(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/notes/notes.txt", "hello world")

	require.NoError(t, f.sess.Open("/notes/notes.txt"))

	words, chars := status.Counts(f.ui.Buffer)
	assert.Equal(t, 2, words)
	assert.Equal(t, 11, chars)
}

func TestOpenBindsAndRecords(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/notes/a.txt", "alpha")
	f.sess.LockAutoSave()

	require.NoError(t, f.sess.Open("/notes/a.txt"))

	assert.Equal(t, "/notes/a.txt", f.sess.FilePath())
	assert.Equal(t, "alpha", f.ui.Buffer)
	assert.False(t, f.sess.AutoSaveLocked())
	assert.Equal(t, f.now, f.sess.LastSavedAt())

	persisted := f.store.Load()
	assert.Equal(t, "/notes/a.txt", persisted.LastFilePath())
	assert.Equal(t, []string{"/notes/a.txt"}, persisted.RecentFiles)
}

func TestOpenSavesCurrentFileFirst(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/notes/a.txt", "alpha")
	f.writeFile(t, "/notes/b.txt", "beta")
	require.NoError(t, f.sess.Open("/notes/a.txt"))

	f.ui.Buffer = "alpha edited"
	require.NoError(t, f.sess.Open("/notes/b.txt"))

	assert.Equal(t, "alpha edited", f.readFile(t, "/notes/a.txt"))
	assert.Equal(t, "beta", f.ui.Buffer)
	assert.Equal(t, []string{"/notes/b.txt", "/notes/a.txt"}, f.sess.RecentFiles())
	assert.Empty(t, f.ui.Infos)
}

func TestOpenProceedsWhenPreSaveFails(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/notes/a.txt", []byte("alpha"), 0o644))
	require.NoError(t, afero.WriteFile(base, "/notes/b.txt", []byte("bravo"), 0o644))
	f := newFixtureWithFs(t, afero.NewReadOnlyFs(base))
	require.NoError(t, f.sess.Open("/notes/a.txt"))
	f.ui.Buffer = "unsaved edit"

	require.NoError(t, f.sess.Open("/notes/b.txt"))

	assert.Equal(t, "/notes/b.txt", f.sess.FilePath())
	assert.Equal(t, "bravo", f.ui.Buffer)
	assert.Empty(t, f.ui.Errors)
	assert.Equal(t, "alpha", f.readFile(t, "/notes/a.txt"))
}

func TestOpenMissingFileLeavesSessionUnchanged(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/notes/a.txt", "alpha")
	require.NoError(t, f.sess.Open("/notes/a.txt"))

	err := f.sess.Open("/notes/missing.txt")

	require.Error(t, err)
	require.Len(t, f.ui.Errors, 1)
	assert.Equal(t, "/notes/a.txt", f.sess.FilePath())
	assert.Equal(t, "alpha", f.ui.Buffer)
}

func TestOpenDialogCancelIsNoop(t *testing.T) {
	f := newFixture(t)

	f.sess.OpenDialog()

	assert.Equal(t, 1, f.ui.OpenPrompts)
	assert.False(t, f.sess.HasFile())
	assert.Empty(t, f.ui.Errors)
}

func TestOpenDialogOpensPickedFile(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/notes/a.txt", "alpha")
	f.ui.OpenPath = "/notes/a.txt"

	f.sess.OpenDialog()

	assert.Equal(t, "/notes/a.txt", f.sess.FilePath())
}

func TestSaveWritesBuffer(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.BindNew("/notes/a.txt"))
	f.ui.Buffer = "draft"
	f.now = f.now.Add(time.Minute)

	require.NoError(t, f.sess.Save(false))

	assert.Equal(t, "draft", f.readFile(t, "/notes/a.txt"))
	assert.Equal(t, f.now, f.sess.LastSavedAt())
	cfg := f.store.Load()
	assert.Equal(t, "/notes/a.txt", cfg.LastFilePath())
}

func TestSaveSilentNeverShowsDialog(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.BindNew("/notes/a.txt"))

	require.NoError(t, f.sess.Save(true))
	assert.Empty(t, f.ui.Infos)

	require.NoError(t, f.sess.Save(false))
	assert.Equal(t, []string{"Saved: File saved."}, f.ui.Infos)
}

func TestSaveFailureShowsNoSuccess(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/notes/a.txt", []byte("alpha"), 0o644))
	f := newFixtureWithFs(t, afero.NewReadOnlyFs(base))
	require.NoError(t, f.sess.Open("/notes/a.txt"))
	opened := f.sess.LastSavedAt()
	f.now = f.now.Add(time.Minute)
	f.ui.Buffer = "edited"

	require.Error(t, f.sess.Save(false))
	assert.Empty(t, f.ui.Infos)
	assert.Len(t, f.ui.Errors, 1)

	require.Error(t, f.sess.Save(true))
	assert.Len(t, f.ui.Errors, 1)

	assert.Equal(t, opened, f.sess.LastSavedAt())
	assert.Equal(t, "alpha", f.readFile(t, "/notes/a.txt"))
}

func TestSaveUnboundRunsSaveAs(t *testing.T) {
	f := newFixture(t)
	f.ui.Buffer = "fresh"
	f.ui.SavePath = "/notes/fresh.txt"

	require.NoError(t, f.sess.Save(false))

	assert.Equal(t, 1, f.ui.SavePrompts)
	assert.Equal(t, "/notes/fresh.txt", f.sess.FilePath())
	assert.Equal(t, "fresh", f.readFile(t, "/notes/fresh.txt"))
	assert.Len(t, f.ui.Infos, 1)
}

func TestSaveAsCancelIsNoop(t *testing.T) {
	f := newFixture(t)
	done := false

	f.sess.SaveAs(func() { done = true })

	assert.True(t, done)
	assert.False(t, f.sess.HasFile())
	assert.Empty(t, f.ui.Errors)
}

func TestSaveAsRebindsAndClearsLock(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.BindNew("/notes/a.txt"))
	f.sess.LockAutoSave()
	f.ui.Buffer = "copy"
	f.ui.SavePath = "/notes/b.txt"

	f.sess.SaveAs(nil)

	assert.Equal(t, "/notes/b.txt", f.sess.FilePath())
	assert.Equal(t, "copy", f.readFile(t, "/notes/b.txt"))
	assert.False(t, f.sess.AutoSaveLocked())
	assert.Equal(t, []string{"/notes/b.txt"}, f.sess.RecentFiles())
}

func TestSaveAsFailureKeepsBinding(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/notes/a.txt", []byte("alpha"), 0o644))
	f := newFixtureWithFs(t, afero.NewReadOnlyFs(base))
	require.NoError(t, f.sess.Open("/notes/a.txt"))
	f.ui.SavePath = "/notes/b.txt"

	f.sess.SaveAs(nil)

	assert.Equal(t, "/notes/a.txt", f.sess.FilePath())
	assert.Len(t, f.ui.Errors, 1)
}

func TestNewFileSavesCurrentAndBinds(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.BindNew("/notes/a.txt"))
	f.ui.Buffer = "first"
	f.ui.SavePath = "/notes/b.txt"

	f.sess.NewFile()

	assert.Equal(t, "first", f.readFile(t, "/notes/a.txt"))
	assert.Equal(t, "/notes/b.txt", f.sess.FilePath())
	assert.Equal(t, "", f.ui.Buffer)
	assert.Empty(t, f.ui.Infos)
}

func TestNewFileProceedsWhenPreSaveFails(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/notes/a.txt", []byte("alpha"), 0o644))
	f := newFixtureWithFs(t, failingFs{Fs: base, failWrite: "/notes/a.txt"})
	require.NoError(t, f.sess.Open("/notes/a.txt"))
	f.ui.Buffer = "unsaved edit"
	f.ui.SavePath = "/notes/b.txt"

	f.sess.NewFile()

	assert.Equal(t, "/notes/b.txt", f.sess.FilePath())
	assert.Equal(t, "", f.ui.Buffer)
	assert.Empty(t, f.ui.Errors)
	assert.Equal(t, "alpha", f.readFile(t, "/notes/a.txt"))
	assert.Equal(t, "", f.readFile(t, "/notes/b.txt"))
}

func TestNewFileCancelKeepsDocument(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.BindNew("/notes/a.txt"))
	f.ui.Buffer = "first"

	f.sess.NewFile()

	assert.Equal(t, "/notes/a.txt", f.sess.FilePath())
	assert.Equal(t, "first", f.ui.Buffer)
}

func TestRestoreOpensLastFile(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/notes/last.txt", "remembered")
	f.cfg.SetLastFile("/notes/last.txt")

	f.sess.Restore("", true)

	assert.Equal(t, "/notes/last.txt", f.sess.FilePath())
	assert.Equal(t, "remembered", f.ui.Buffer)
	assert.Zero(t, f.ui.SavePrompts)
}

func TestRestoreMissingLastFilePrompts(t *testing.T) {
	f := newFixture(t)
	f.cfg.SetLastFile("/notes/gone.txt")
	f.ui.SavePath = "/notes/start.txt"

	f.sess.Restore("", true)

	assert.Equal(t, 1, f.ui.SavePrompts)
	assert.Equal(t, "/notes/start.txt", f.sess.FilePath())
}

func TestRestoreWithoutPrompt(t *testing.T) {
	f := newFixture(t)

	f.sess.Restore("", false)

	assert.Zero(t, f.ui.SavePrompts)
	assert.False(t, f.sess.HasFile())
}

func TestRestoreInitialPathWins(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/notes/last.txt", "remembered")
	f.writeFile(t, "/notes/cli.txt", "from cli")
	f.cfg.SetLastFile("/notes/last.txt")

	f.sess.Restore("/notes/cli.txt", true)
	assert.Equal(t, "/notes/cli.txt", f.sess.FilePath())
	assert.Equal(t, "from cli", f.ui.Buffer)

	g := newFixture(t)
	g.sess.Restore("/notes/created.txt", true)
	assert.Equal(t, "/notes/created.txt", g.sess.FilePath())
	assert.Equal(t, "", g.readFile(t, "/notes/created.txt"))
}

func TestRestoreUnreadableInitialPathReportsError(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/notes/cli.txt", []byte("locked"), 0o644))
	f := newFixtureWithFs(t, failingFs{Fs: base, failRead: "/notes/cli.txt"})

	f.sess.Restore("/notes/cli.txt", false)

	assert.False(t, f.sess.HasFile())
	assert.Len(t, f.ui.Errors, 1)
}

func TestRestoreUnreadableLastFileIsSilent(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/notes/last.txt", []byte("locked"), 0o644))
	f := newFixtureWithFs(t, failingFs{Fs: base, failRead: "/notes/last.txt"})
	f.cfg.SetLastFile("/notes/last.txt")

	f.sess.Restore("", false)

	assert.False(t, f.sess.HasFile())
	assert.Empty(t, f.ui.Errors)
}

func TestCloseSavesSilentlyAndPersistsConfig(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sess.BindNew("/notes/a.txt"))
	f.ui.Buffer = "last words"

	f.sess.Close()

	assert.Equal(t, "last words", f.readFile(t, "/notes/a.txt"))
	assert.Empty(t, f.ui.Infos)
	cfg := f.store.Load()
	assert.Equal(t, "/notes/a.txt", cfg.LastFilePath())
}

func TestCloseUnboundDoesNotPrompt(t *testing.T) {
	f := newFixture(t)
	f.sess.Close()
	assert.Zero(t, f.ui.SavePrompts)
}

func TestToggles(t *testing.T) {
	f := newFixture(t)
	changes := 0
	f.sess.OnChange(func() { changes++ })

	assert.False(t, f.sess.ToggleAutoSave())
	assert.True(t, f.sess.ToggleAutoSave())

	assert.False(t, f.sess.ToggleWrap())
	assert.False(t, f.store.Load().Wrap)

	assert.Equal(t, appearance.Light, f.sess.Theme())
	assert.Equal(t, appearance.Dark, f.sess.ToggleTheme())
	assert.Equal(t, appearance.Dark, f.sess.Theme())
	cfg := f.store.Load()
	assert.Equal(t, "dark", cfg.ThemeOverride())
	assert.Equal(t, appearance.Light, f.sess.ToggleTheme())

	assert.Equal(t, 5, changes)
}

func TestRefreshRecentDropsMissing(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/notes/a.txt", "a")
	f.cfg.RecentFiles = []string{"/notes/gone.txt", "/notes/a.txt"}

	assert.Equal(t, []string{"/notes/a.txt"}, f.sess.RefreshRecent())
	assert.Equal(t, []string{"/notes/a.txt"}, f.store.Load().RecentFiles)
}
