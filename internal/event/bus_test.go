package event

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	id     string
	mu     sync.Mutex
	events []Event
}

func (h *recordingHandler) Handle(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
}

func (h *recordingHandler) GetID() string {
	return h.id
}

func (h *recordingHandler) received() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Event, len(h.events))
	copy(out, h.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestPublishReachesSubscriber(t *testing.T) {
	bus := NewBus(16)
	defer bus.Shutdown()

	handler := &recordingHandler{id: "rec"}
	bus.Subscribe(TypeCursorAdvanced, handler)

	bus.Publish(Event{
		Type: TypeCursorAdvanced,
		Data: map[string]interface{}{"item": "Item 2"},
	})

	waitFor(t, func() bool { return len(handler.received()) == 1 })

	got := handler.received()[0]
	assert.Equal(t, TypeCursorAdvanced, got.Type)
	assert.Equal(t, "Item 2", got.Data["item"])
	assert.False(t, got.Timestamp.IsZero())
}

func TestPublishIgnoresOtherEventTypes(t *testing.T) {
	bus := NewBus(16)
	defer bus.Shutdown()

	handler := &recordingHandler{id: "rec"}
	bus.Subscribe(TypeCursorAdvanced, handler)

	bus.Publish(Event{Type: TypeCursorReset})
	bus.Publish(Event{Type: TypeCursorAdvanced})

	waitFor(t, func() bool { return len(handler.received()) == 1 })
	assert.Equal(t, TypeCursorAdvanced, handler.received()[0].Type)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus(16)
	defer bus.Shutdown()

	first := &recordingHandler{id: "first"}
	second := &recordingHandler{id: "second"}
	bus.Subscribe(TypeCursorAdvanced, first)
	bus.Subscribe(TypeCursorAdvanced, second)

	bus.Unsubscribe(TypeCursorAdvanced, first)
	bus.Publish(Event{Type: TypeCursorAdvanced})

	waitFor(t, func() bool { return len(second.received()) == 1 })
	assert.Empty(t, first.received())
}

func TestPublishConcurrentWithShutdown(t *testing.T) {
	bus := NewBus(4)

	handler := &recordingHandler{id: "rec"}
	bus.Subscribe(TypeCursorAdvanced, handler)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			bus.Publish(Event{Type: TypeCursorAdvanced})
		}
	}()

	bus.Shutdown()
	<-done
}

func TestPublishAfterShutdownIsNoOp(t *testing.T) {
	bus := NewBus(16)

	handler := &recordingHandler{id: "rec"}
	bus.Subscribe(TypeCursorAdvanced, handler)

	bus.Shutdown()
	bus.Publish(Event{Type: TypeCursorAdvanced})

	assert.Empty(t, handler.received())
}

func TestShutdownIsIdempotent(t *testing.T) {
	bus := NewBus(16)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Shutdown()
		}()
	}
	wg.Wait()
}

func TestShutdownDispatchesQueuedEvents(t *testing.T) {
	bus := NewBus(16)

	handler := &recordingHandler{id: "rec"}
	bus.Subscribe(TypeCursorAdvanced, handler)

	for i := 0; i < 8; i++ {
		bus.Publish(Event{Type: TypeCursorAdvanced})
	}
	bus.Shutdown()

	assert.Len(t, handler.received(), 8)
}

func TestEventsArriveInPublishOrder(t *testing.T) {
	bus := NewBus(16)
	defer bus.Shutdown()

	handler := &recordingHandler{id: "rec"}
	bus.Subscribe(TypeCursorAdvanced, handler)

	for i, item := range []string{"Item 2", "Item 3", "Item 4"} {
		bus.Publish(Event{
			Type: TypeCursorAdvanced,
			Data: map[string]interface{}{"item": item, "seq": i},
		})
	}

	waitFor(t, func() bool { return len(handler.received()) == 3 })

	got := handler.received()
	assert.Equal(t, "Item 2", got[0].Data["item"])
	assert.Equal(t, "Item 3", got[1].Data["item"])
	assert.Equal(t, "Item 4", got[2].Data["item"])
}
