package queue

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryQueue keeps sent messages in memory. It backs tests and local runs
// without a storage account.
type MemoryQueue struct {
	mu       sync.Mutex
	messages map[string][]string
}

func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{messages: make(map[string][]string)}
}

func (q *MemoryQueue) Send(_ context.Context, queueName string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages[queueName] = append(q.messages[queueName], string(body))
	return nil
}

// Messages returns a copy of everything sent to the named queue.
func (q *MemoryQueue) Messages(queueName string) []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, len(q.messages[queueName]))
	copy(out, q.messages[queueName])
	return out
}
