// ABOUTME: Tests for the generic change notifier.
// ABOUTME: Verifies fan-out, unsubscribe handles, and synchronous delivery order.
package watch

import "testing"

func TestPublishFansOut(t *testing.T) {
	var n Notifier[int]
	var a, b []int

	n.Subscribe(func(v int) { a = append(a, v) })
	n.Subscribe(func(v int) { b = append(b, v) })

	n.Publish(1)
	n.Publish(2)

	for name, got := range map[string][]int{"a": a, "b": b} {
		if len(got) != 2 || got[0] != 1 || got[1] != 2 {
			t.Errorf("subscriber %s received %v, want [1 2]", name, got)
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	var n Notifier[string]
	var got []string

	unsub := n.Subscribe(func(v string) { got = append(got, v) })
	n.Publish("first")
	unsub()
	n.Publish("second")
	unsub() // safe to call twice

	if len(got) != 1 || got[0] != "first" {
		t.Errorf("received %v, want [first]", got)
	}
	if n.Len() != 0 {
		t.Errorf("Len = %d, want 0", n.Len())
	}
}

func TestUnsubscribeOneKeepsOthers(t *testing.T) {
	var n Notifier[int]
	var kept int

	unsub := n.Subscribe(func(int) {})
	n.Subscribe(func(int) { kept++ })
	unsub()

	n.Publish(7)
	if kept != 1 {
		t.Errorf("remaining subscriber called %d times, want 1", kept)
	}
	if n.Len() != 1 {
		t.Errorf("Len = %d, want 1", n.Len())
	}
}

func TestDeliveryIsSynchronous(t *testing.T) {
	var n Notifier[int]
	delivered := false
	n.Subscribe(func(int) { delivered = true })

	n.Publish(1)
	if !delivered {
		t.Error("Publish should deliver before returning")
	}
}
