package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Relay hands controller timer tasks to the running program as TaskDue
// messages, so session state is only touched from Update.
type Relay struct {
	mu      sync.Mutex
	program *tea.Program
}

// Attach sets the program tasks are sent to.
func (r *Relay) Attach(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.program = p
}

// Dispatch sends task to the program, or runs it inline when no program is
// attached.
func (r *Relay) Dispatch(task func()) {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()

	if p == nil {
		task()
		return
	}
	p.Send(TaskDue{Task: task})
}
