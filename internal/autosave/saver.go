// Package autosave decides what one auto-save tick does.
package autosave

import (
	"time"

	"ssnote/internal/logger"
)

// DefaultInterval is the wall-clock period between auto-save ticks.
const DefaultInterval = 120 * time.Second

const (
	promptTitle   = "Save Required"
	promptMessage = "File must be saved to enable auto-save.\nDo you want to save now?"
)

// Target is the document state the saver acts on.
type Target interface {
	HasFile() bool
	AutoSaveEnabled() bool
	AutoSaveLocked() bool
	LockAutoSave()
	Save(silent bool) error
	SaveAs(done func())
}

type Confirmer interface {
	Confirm(title, message string, onAnswer func(bool))
}

type Saver struct {
	target    Target
	confirmer Confirmer
	logger    logger.Logger

	// prompting is set from the moment the prompt opens until the save-as
	// flow it started has finished.
	prompting bool
}

func NewSaver(target Target, confirmer Confirmer, log logger.Logger) *Saver {
	return &Saver{target: target, confirmer: confirmer, logger: log}
}

// Prompting reports whether a save prompt is still outstanding.
func (s *Saver) Prompting() bool {
	return s.prompting
}

// Tick runs one auto-save pass. It must be called on the UI goroutine.
func (s *Saver) Tick() {
	if s.prompting {
		s.logger.Debug("AutoSave", "prompt still open, skipping tick", nil)
		return
	}

	if s.target.HasFile() {
		if !s.target.AutoSaveEnabled() {
			return
		}
		if err := s.target.Save(true); err != nil {
			s.logger.Debug("AutoSave", "tick save failed", map[string]interface{}{"error": err.Error()})
			return
		}
		s.logger.Debug("AutoSave", "tick saved", nil)
		return
	}

	if s.target.AutoSaveLocked() {
		return
	}

	s.prompting = true
	s.confirmer.Confirm(promptTitle, promptMessage, s.answer)
}

func (s *Saver) answer(yes bool) {
	if !yes {
		s.target.LockAutoSave()
		s.prompting = false
		return
	}
	s.target.SaveAs(func() {
		s.prompting = false
	})
}
