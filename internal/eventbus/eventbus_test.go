package eventbus

import (
	"testing"

	"github.com/neurofleetx/fleetops/core/model"
)

func TestPublishSubscribe(t *testing.T) {
	b := New[model.Alert]()
	sub := b.Subscribe()
	b.Publish(model.Alert{VehicleID: "v1", Kind: "Overspeeding"})
	got := <-sub
	if got.VehicleID != "v1" {
		t.Fatalf("got %+v", got)
	}
	b.Unsubscribe(sub)
	if _, ok := <-sub; ok {
		t.Fatalf("channel should be closed after unsubscribe")
	}
}

func TestPublishNonBlocking(t *testing.T) {
	b := New[int]()
	sub := b.Subscribe()
	for i := 0; i < 20; i++ {
		b.Publish(i) // must not block once the buffer is full
	}
	if got := <-sub; got != 0 {
		t.Fatalf("first event = %d, want 0", got)
	}
	b.Close()
}

func TestCloseIdempotent(t *testing.T) {
	b := New[int]()
	sub := b.Subscribe()
	b.Close()
	b.Close()
	if _, ok := <-sub; ok {
		t.Fatalf("subscriber channel still open after close")
	}
	b.Publish(1) // no panic after close
}
