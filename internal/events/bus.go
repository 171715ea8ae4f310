// Package events carries the "fields submitted" signal from the prompt form
// surface to the output surface. It is the sole coupling between the two:
// delivery is synchronous and in call order, and each publish simply
// replaces the previous one (the last submission wins, nothing is buffered).
package events

import (
	"sync"

	"github.com/promptlab/promptlab/internal/models"
)

// Handler receives a submitted set of prompt fields.
type Handler func(models.PromptFields)

// Bus is a minimal in-process signal. Subscribers are invoked synchronously,
// in subscription order, on every publish; Publish returns once every
// handler has run to completion.
type Bus struct {
	mu       sync.Mutex
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for all future publishes.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers fields to every subscriber, in subscription order.
func (b *Bus) Publish(fields models.PromptFields) {
	b.mu.Lock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.Unlock()

	for _, h := range handlers {
		h(fields)
	}
}
