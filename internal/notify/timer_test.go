package notify

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
}

func newTestNotifier() *TimerNotifier {
	n := NewTimerNotifier(zap.NewNop())
	n.now = fixedNow
	return n
}

func TestScheduleOneShot_PastInstantIsBenignRefusal(t *testing.T) {
	n := newTestNotifier()

	id, err := n.ScheduleOneShot(context.Background(), Content{Title: "x"}, fixedNow().Add(-time.Minute))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty handle, got %q", id)
	}

	list, _ := n.ListScheduled(context.Background())
	if len(list) != 0 {
		t.Fatalf("nothing should be pending, got %+v", list)
	}
}

func TestScheduleOneShot_ListAndCancel(t *testing.T) {
	n := newTestNotifier()
	ctx := context.Background()

	late, err := n.ScheduleOneShot(ctx, Content{Title: "late"}, fixedNow().Add(2*time.Hour))
	if err != nil || late == "" {
		t.Fatalf("schedule late: id=%q err=%v", late, err)
	}
	early, err := n.ScheduleOneShot(ctx, Content{Title: "early"}, fixedNow().Add(time.Hour))
	if err != nil || early == "" {
		t.Fatalf("schedule early: id=%q err=%v", early, err)
	}

	list, err := n.ListScheduled(ctx)
	if err != nil {
		t.Fatalf("ListScheduled: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(list))
	}
	// По возрастанию момента срабатывания.
	if list[0].Content.Title != "early" || list[1].Content.Title != "late" {
		t.Fatalf("list out of order: %+v", list)
	}

	if err := n.Cancel(ctx, early); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	list, _ = n.ListScheduled(ctx)
	if len(list) != 1 || list[0].ID != late {
		t.Fatalf("cancel did not remove entry: %+v", list)
	}

	// Неизвестный идентификатор игнорируется.
	if err := n.Cancel(ctx, "nope"); err != nil {
		t.Fatalf("Cancel(unknown): %v", err)
	}
}

func TestCancelAll(t *testing.T) {
	n := newTestNotifier()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := n.ScheduleOneShot(ctx, Content{Title: "x"}, fixedNow().Add(time.Hour)); err != nil {
			t.Fatalf("schedule: %v", err)
		}
	}
	if err := n.CancelAll(ctx); err != nil {
		t.Fatalf("CancelAll: %v", err)
	}
	list, _ := n.ListScheduled(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty registry, got %+v", list)
	}
}

func TestFire_RemovesEntryAndCallsOnFire(t *testing.T) {
	// Реальные часы и короткий таймер: проверяем сам механизм срабатывания.
	n := NewTimerNotifier(zap.NewNop())
	fired := make(chan Scheduled, 1)
	n.OnFire = func(s Scheduled) { fired <- s }

	id, err := n.ScheduleOneShot(context.Background(), Content{Title: "soon"}, time.Now().Add(20*time.Millisecond))
	if err != nil || id == "" {
		t.Fatalf("schedule: id=%q err=%v", id, err)
	}

	select {
	case s := <-fired:
		if s.ID != id || s.Content.Title != "soon" {
			t.Fatalf("unexpected fired payload: %+v", s)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	list, _ := n.ListScheduled(context.Background())
	if len(list) != 0 {
		t.Fatalf("fired entry still listed: %+v", list)
	}
}

func TestBuildContent(t *testing.T) {
	eventAt := time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)

	c := BuildContent("Dentist", "Annual checkup", eventAt)
	if c.Title != "🔔 Dentist" {
		t.Fatalf("title = %q", c.Title)
	}
	if !strings.HasPrefix(c.Body, "Annual checkup\nEvent at ") {
		t.Fatalf("body = %q", c.Body)
	}
	if c.Data[DataEventTitle] != "Dentist" {
		t.Fatalf("data missing title: %v", c.Data)
	}
	if c.Data[DataEventTime] != eventAt.Format(time.RFC3339) {
		t.Fatalf("data time = %q", c.Data[DataEventTime])
	}
}

func TestBuildContent_DefaultBody(t *testing.T) {
	c := BuildContent("Dentist", "", time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local))
	if !strings.HasPrefix(c.Body, "Calendar event reminder\n") {
		t.Fatalf("body = %q", c.Body)
	}
}
