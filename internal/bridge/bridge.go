// Package bridge carries commands from hosts running outside the simulation
// goroutine into the per-tick update.
package bridge

import "sync"

// Host is the fire-and-forget entry point handed to host environments.
type Host interface {
	SubmitToolSelection(name string)
	SubmitLabelToggle()
}

// ToolSelection asks for the active painting tool to change.
type ToolSelection struct {
	Name string
}

// LabelToggle flips label visibility.
type LabelToggle struct{}

// Commands is everything drained from the bridge in one tick, each queue in
// submission order.
type Commands struct {
	Tools  []ToolSelection
	Labels []LabelToggle
}

// Empty reports whether nothing was drained.
func (c Commands) Empty() bool { return len(c.Tools) == 0 && len(c.Labels) == 0 }

// Bridge holds two independent unbounded FIFO queues. Submit methods may be
// called from any goroutine; Drain is called once per tick by the simulation.
type Bridge struct {
	toolMu sync.Mutex
	tools  []ToolSelection

	labelMu sync.Mutex
	labels  []LabelToggle
}

// New creates an empty bridge.
func New() *Bridge {
	return &Bridge{}
}

// SubmitToolSelection enqueues a tool selection.
func (b *Bridge) SubmitToolSelection(name string) {
	b.toolMu.Lock()
	b.tools = append(b.tools, ToolSelection{Name: name})
	b.toolMu.Unlock()
}

// SubmitLabelToggle enqueues a label toggle.
func (b *Bridge) SubmitLabelToggle() {
	b.labelMu.Lock()
	b.labels = append(b.labels, LabelToggle{})
	b.labelMu.Unlock()
}

// Drain takes every pending command out of both queues. A drained command
// is never returned again.
func (b *Bridge) Drain() Commands {
	var cmds Commands

	b.toolMu.Lock()
	cmds.Tools, b.tools = b.tools, nil
	b.toolMu.Unlock()

	b.labelMu.Lock()
	cmds.Labels, b.labels = b.labels, nil
	b.labelMu.Unlock()

	return cmds
}

// Pending returns the number of queued commands per queue.
func (b *Bridge) Pending() (tools, labels int) {
	b.toolMu.Lock()
	tools = len(b.tools)
	b.toolMu.Unlock()

	b.labelMu.Lock()
	labels = len(b.labels)
	b.labelMu.Unlock()
	return tools, labels
}
