package event

import (
	"context"
	"sync"
	"time"
)

// Event types published by the trigger handlers.
const (
	TypeCursorAdvanced  = "cursor.advanced"
	TypeCursorRetreated = "cursor.retreated"
	TypeCursorReset     = "cursor.reset"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type Handler interface {
	Handle(event Event)
	GetID() string
}

// Bus fans trigger events out to subscribers through a buffered channel so
// publishing never blocks the UI thread.
type Bus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
	buffer      chan Event
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	stopOnce    sync.Once
}

func NewBus(bufferSize int) *Bus {
	ctx, cancel := context.WithCancel(context.Background())

	bus := &Bus{
		subscribers: make(map[string][]Handler),
		buffer:      make(chan Event, bufferSize),
		ctx:         ctx,
		cancel:      cancel,
	}

	bus.startWorker()
	return bus
}

// Publish enqueues an event for dispatch. After Shutdown it is a no-op; the
// buffer channel is never closed, so a publish racing shutdown at worst
// leaves an undispatched event behind.
func (b *Bus) Publish(event Event) {
	event.Timestamp = time.Now()

	if b.ctx.Err() != nil {
		return
	}

	select {
	case b.buffer <- event:
	case <-b.ctx.Done():
	default:
		// Drop event if buffer full to prevent blocking
	}
}

func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

func (b *Bus) Unsubscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i], handlers[i+1:]...)
			break
		}
	}
}

// Shutdown stops the worker after it has dispatched everything already
// queued. Safe to call from multiple goroutines and more than once.
func (b *Bus) Shutdown() {
	b.stopOnce.Do(func() {
		b.cancel()
		b.wg.Wait()
	})
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for {
			select {
			case event := <-b.buffer:
				b.dispatchEvent(event)
			case <-b.ctx.Done():
				b.drain()
				return
			}
		}
	}()
}

// drain dispatches events that were buffered before cancellation.
func (b *Bus) drain() {
	for {
		select {
		case event := <-b.buffer:
			b.dispatchEvent(event)
		default:
			return
		}
	}
}

func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler.Handle(event)
	}
}
