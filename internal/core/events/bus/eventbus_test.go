package bus

import (
	"errors"
	"testing"
)

type testObserver struct {
	publishCount   int
	deliveredCount int
	lastErr        error
}

func (o *testObserver) OnPublish(_ string, _ Event) {
	o.publishCount++
}

func (o *testObserver) OnDelivered(_ string, handlers int, err error, _ int64) {
	o.deliveredCount += handlers
	o.lastErr = err
}

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	called := false
	_, err := b.Subscribe("test.event", func(e Event) error {
		called = true
		if e.Data() != 123 {
			t.Fatalf("unexpected data: %v", e.Data())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err = b.Publish(NewEvent("test.event", "tester", 123)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !called {
		t.Fatal("handler not called before Publish returned")
	}
}

func TestDeliveryFollowsSubscriptionOrder(t *testing.T) {
	b := New()
	var got []int
	for i := range 5 {
		if _, err := b.Subscribe("ordered", func(Event) error {
			got = append(got, i)
			return nil
		}); err != nil {
			t.Fatalf("sub: %v", err)
		}
	}
	_ = b.Publish(NewEvent("ordered", "src", nil))
	want := []int{0, 1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	e1, e2 := errors.New("first"), errors.New("second")
	_, _ = b.Subscribe("x", func(Event) error { return e1 })
	_, _ = b.Subscribe("x", func(Event) error { return nil })
	_, _ = b.Subscribe("x", func(Event) error { return e2 })

	err := b.Publish(NewEvent("x", "src", nil))
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Fatalf("expected both errors joined, got %v", err)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()
	count := 0
	sub, _ := b.Subscribe("x", func(Event) error { count++; return nil })
	_ = b.Publish(NewEvent("x", "src", nil))
	if err := b.Unsubscribe(sub); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if sub.IsActive() {
		t.Fatal("subscription still active")
	}
	_ = sub.Cancel()
	_ = b.Publish(NewEvent("x", "src", nil))
	if count != 1 {
		t.Fatalf("expected 1 delivery, got %d", count)
	}
}

func TestUnsubscribeDuringDelivery(t *testing.T) {
	b := New()
	var second Subscription
	secondCalls := 0
	_, _ = b.Subscribe("x", func(Event) error {
		return second.Cancel()
	})
	second, _ = b.Subscribe("x", func(Event) error { secondCalls++; return nil })

	_ = b.Publish(NewEvent("x", "src", nil))
	_ = b.Publish(NewEvent("x", "src", nil))
	if secondCalls != 0 {
		t.Fatalf("cancelled handler was called %d times", secondCalls)
	}
}

func TestSubscribeNilHandler(t *testing.T) {
	b := New()
	if _, err := b.Subscribe("x", nil); !errors.Is(err, ErrNilHandler) {
		t.Fatalf("expected ErrNilHandler, got %v", err)
	}
	if err := b.Publish(nil); !errors.Is(err, ErrNilEvent) {
		t.Fatalf("expected ErrNilEvent, got %v", err)
	}
}

func TestPublishWithFiltersDrops(t *testing.T) {
	b := New()
	obs := &testObserver{}
	b.AddObserver(obs)
	count := 0
	_, _ = b.Subscribe("x", func(Event) error { count++; return nil })

	_ = b.PublishWithFilters(NewEvent("x", "blocked", nil), func(e Event) bool { return e.Source() != "blocked" })
	_ = b.PublishWithFilters(NewEvent("x", "ok", nil), func(e Event) bool { return e.Source() != "blocked" })
	if count != 1 {
		t.Fatalf("expected 1 delivery, got %d", count)
	}
	if m := b.GetMetrics(); m.DroppedByFilters != 1 {
		t.Fatalf("expected 1 dropped, got %d", m.DroppedByFilters)
	}
}

func TestPublishBatch(t *testing.T) {
	b := New()
	fail := errors.New("fail")
	var seen []string
	_, _ = b.Subscribe("a", func(e Event) error { seen = append(seen, e.Type()); return nil })
	_, _ = b.Subscribe("b", func(e Event) error { seen = append(seen, e.Type()); return fail })

	err := b.PublishBatch(NewEvent("a", "s", nil), NewEvent("b", "s", nil), NewEvent("a", "s", nil))
	if !errors.Is(err, fail) {
		t.Fatalf("expected batch error, got %v", err)
	}
	if len(seen) != 3 || seen[0] != "a" || seen[1] != "b" || seen[2] != "a" {
		t.Fatalf("unexpected order %v", seen)
	}
}

func TestObserverMetricsOptional(t *testing.T) {
	b := New()
	_, _ = b.Subscribe("m", func(e Event) error { return nil })
	// without observers, metrics should stay zero
	_ = b.Publish(NewEvent("m", "s", nil))
	if m := b.GetMetrics(); m.Published != 0 {
		t.Fatalf("expected metrics to be zero without observers, got %+v", m)
	}

	obs := &testObserver{}
	b.AddObserver(obs)
	_ = b.Publish(NewEvent("m", "s", nil))
	m := b.GetMetrics()
	if m.Published != 1 || m.DeliveredHandlers != 1 || m.SubscribersActive != 1 {
		t.Fatalf("unexpected metrics %+v", m)
	}
	if obs.publishCount != 1 || obs.deliveredCount != 1 {
		t.Fatalf("observer not notified: %+v", obs)
	}

	b.RemoveObserver(obs)
	_ = b.Publish(NewEvent("m", "s", nil))
	if obs.publishCount != 1 {
		t.Fatalf("removed observer still notified")
	}
}
