package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kirubhel/redcross-client/internal/service"
	"github.com/kirubhel/redcross-client/models"
)

const statusRefreshInterval = 500 * time.Millisecond

// statusModel is the main screen: connectivity, sync state, and the
// pending queue, refreshed on a tick while the screen is visible.
type statusModel struct {
	ctx      context.Context
	services *service.ClientServices

	spinner  spinner.Model
	snapshot models.StatusSnapshot
	ops      []models.PendingOperation
	idx      int
	status   string
	errMsg   string

	logout bool
}

func newStatusModel(ctx context.Context, services *service.ClientServices) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return statusModel{
		ctx:      ctx,
		services: services,
		spinner:  s,
		snapshot: models.StatusSnapshot{IsOnline: true, SyncStatus: models.SyncIdle},
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadQueue(), cmdTick())
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusTickMsg:
		return m, tea.Batch(m.cmdLoadQueue(), cmdTick())

	case queueLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.snapshot = msg.snapshot
		m.ops = msg.ops
		if m.idx >= len(m.ops) {
			m.idx = len(m.ops) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case syncDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.status = "sync pass requested"
		}
		return m, tea.Batch(m.cmdLoadQueue(), cmdClearStatus())

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.status = "payload copied to clipboard"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
			return m, nil
		case key.Matches(msg, keys.down):
			if m.idx < len(m.ops)-1 {
				m.idx++
			}
			return m, nil
		case key.Matches(msg, keys.sync):
			return m, m.cmdSync()
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyPayload()
		}
	}

	return m, nil
}

func (m statusModel) View() string {
	var b strings.Builder

	if m.snapshot.IsOnline {
		b.WriteString(onlineStyle.Render("● online"))
	} else {
		b.WriteString(offlineStyle.Render("● offline"))
	}
	b.WriteString("   sync: ")
	if m.snapshot.SyncStatus == models.SyncInProgress {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
	}
	b.WriteString(string(m.snapshot.SyncStatus))
	b.WriteString("\n\n")

	if len(m.ops) == 0 {
		b.WriteString("queue is empty — all changes are on the server\n")
	} else {
		b.WriteString(fmt.Sprintf("pending operations (%d):\n\n", len(m.ops)))
		for i, op := range m.ops {
			line := fmt.Sprintf("%-16s %s  %s",
				op.Type,
				op.CreatedAt().Format("2006-01-02 15:04:05"),
				fitText(string(op.Data), 40))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ERCS CLIENT", strings.TrimRight(b.String(), "\n"),
		"s: sync now │ c: copy payload │ ↑/↓: select │ l: logout │ q: quit")
}

func cmdTick() tea.Cmd {
	return tea.Tick(statusRefreshInterval, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m statusModel) cmdLoadQueue() tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		synced := false
		ops, err := services.Queue.Operations(ctx, models.OperationFilter{Synced: &synced})
		return queueLoadedMsg{
			snapshot: services.Monitor.Snapshot(),
			ops:      ops,
			err:      err,
		}
	}
}

func (m statusModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		return syncDoneMsg{err: services.Sync.Sync(ctx)}
	}
}

func (m statusModel) cmdCopyPayload() tea.Cmd {
	if len(m.ops) == 0 {
		return nil
	}
	payload := string(m.ops[m.idx].Data)

	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(payload)}
	}
}
