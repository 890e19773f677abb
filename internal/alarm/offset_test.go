package alarm

import (
	"testing"
	"time"
)

func TestResolve_KnownLabels(t *testing.T) {
	eventAt := time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)

	cases := []struct {
		label string
		want  time.Time
	}{
		{Offset5Min, eventAt.Add(-5 * time.Minute)},
		{Offset10Min, eventAt.Add(-10 * time.Minute)},
		{Offset15Min, eventAt.Add(-15 * time.Minute)},
		{Offset1Hour, eventAt.Add(-time.Hour)},
		{Offset1Day, time.Date(2025, 6, 14, 9, 0, 0, 0, time.Local)},
	}

	for _, tc := range cases {
		got := Resolve(eventAt, tc.label)
		if !got.Equal(tc.want) {
			t.Errorf("Resolve(%q) = %v, want %v", tc.label, got, tc.want)
		}
		if !got.Before(eventAt) {
			t.Errorf("Resolve(%q) = %v, not strictly before event %v", tc.label, got, eventAt)
		}
	}
}

func TestResolve_OneDayBeforeAcrossMonthBoundary(t *testing.T) {
	// Високосный год: за сутки до 1 марта — 29 февраля, в то же время.
	eventAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	want := time.Date(2024, 2, 29, 9, 0, 0, 0, time.Local)

	got := Resolve(eventAt, Offset1Day)
	if !got.Equal(want) {
		t.Fatalf("Resolve(1 day before) = %v, want %v", got, want)
	}
}

func TestResolve_UnknownLabelFallsBackToFiveMinutes(t *testing.T) {
	eventAt := time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)

	got := Resolve(eventAt, "bogus")
	want := Resolve(eventAt, Offset5Min)
	if !got.Equal(want) {
		t.Fatalf("Resolve(bogus) = %v, want fallback %v", got, want)
	}
}

func TestLabels_Order(t *testing.T) {
	labels := Labels()
	if len(labels) != 5 {
		t.Fatalf("expected 5 labels, got %d", len(labels))
	}
	if labels[0] != Offset5Min || labels[4] != Offset1Day {
		t.Fatalf("unexpected label order: %v", labels)
	}
}
