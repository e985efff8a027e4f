package app

import (
	"ssnote/internal/logger"
	"ssnote/internal/session"
)

// Handlers turns menu and toolbar events into session operations.
type Handlers struct {
	session *session.Session
	logger  logger.Logger
}

func NewHandlers(s *session.Session, log logger.Logger) *Handlers {
	return &Handlers{
		session: s,
		logger:  log,
	}
}

func (h *Handlers) HandleNew() {
	h.logger.Debug("Handlers", "new file requested", nil)
	h.session.NewFile()
}

func (h *Handlers) HandleOpen() {
	h.logger.Debug("Handlers", "open requested", nil)
	h.session.OpenDialog()
}

func (h *Handlers) HandleOpenRecent(path string) {
	h.logger.Debug("Handlers", "open recent requested", map[string]interface{}{"path": path})
	if err := h.session.Open(path); err != nil {
		h.session.RefreshRecent()
	}
}

func (h *Handlers) HandleSave() {
	_ = h.session.Save(false)
}

func (h *Handlers) HandleSaveAs() {
	h.session.SaveAs(nil)
}

func (h *Handlers) HandleToggleTheme() {
	name := h.session.ToggleTheme()
	h.logger.Info("Handlers", "theme changed", map[string]interface{}{"theme": string(name)})
}

func (h *Handlers) HandleToggleWrap() {
	enabled := h.session.ToggleWrap()
	h.logger.Debug("Handlers", "wrap changed", map[string]interface{}{"wrap": enabled})
}

func (h *Handlers) HandleToggleAutoSave() {
	enabled := h.session.ToggleAutoSave()
	h.logger.Info("Handlers", "auto-save changed", map[string]interface{}{"enabled": enabled})
}
