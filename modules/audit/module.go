package audit

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/tasks-api/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Entry is a single recorded mutation.
type Entry struct {
	TaskID    uint      `json:"task_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}

// Module records task mutations into an in-memory audit trail. It is a
// driven adapter subscribing to the task domain events; the request path
// never waits on it.
type Module struct {
	entries []Entry
	mu      sync.RWMutex
}

var _ mono.Module = (*Module)(nil)
var _ mono.EventConsumerModule = (*Module)(nil)

func NewModule() *Module {
	return &Module{
		entries: make([]Entry, 0),
	}
}

func (m *Module) Name() string {
	return "audit"
}

func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskUpdatedV1, m.handleTaskUpdated, m); err != nil {
		return fmt.Errorf("failed to register TaskUpdated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}

	log.Printf("[audit] Registered event consumers: TaskCreated, TaskUpdated, TaskDeleted")
	return nil
}

func (m *Module) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	m.record(event.TaskID, "created", fmt.Sprintf("task %q created", event.Title))
	return nil
}

func (m *Module) handleTaskUpdated(_ context.Context, event events.TaskUpdatedEvent, _ *mono.Msg) error {
	m.record(event.TaskID, "updated", fmt.Sprintf("task %q updated", event.Title))
	return nil
}

func (m *Module) handleTaskDeleted(_ context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	m.record(event.TaskID, "deleted", "task deleted")
	return nil
}

func (m *Module) record(taskID uint, action, detail string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, Entry{
		TaskID:    taskID,
		Action:    action,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

// Entries returns a copy of the recorded audit trail.
func (m *Module) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Entry, len(m.entries))
	copy(result, m.entries)
	return result
}

func (m *Module) Start(_ context.Context) error {
	log.Println("[audit] Module started - listening for task events")
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	log.Println("[audit] Module stopped")
	return nil
}
