package tui

import (
	"github.com/kirubhel/redcross-client/models"
)

type loginResultMsg struct {
	session models.Session
	err     error
}

type statusTickMsg struct{}

type queueLoadedMsg struct {
	snapshot models.StatusSnapshot
	ops      []models.PendingOperation
	err      error
}

type syncDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
