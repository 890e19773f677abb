package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/example/remindcal/internal/model"
)

func TestCombineDateTime_OK(t *testing.T) {
	got, err := CombineDateTime("2025-06-15", "09:30")
	if err != nil {
		t.Fatalf("CombineDateTime: %v", err)
	}

	want := time.Date(2025, 6, 15, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCombineDateTime_BadDate(t *testing.T) {
	if _, err := CombineDateTime("15.06.2025", "09:30"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCombineDateTime_BadTime(t *testing.T) {
	if _, err := CombineDateTime("2025-06-15", "9:30 PM"); !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[string]string{
		"00:05": "12:05 AM",
		"09:30": "9:30 AM",
		"12:00": "12:00 PM",
		"17:45": "5:45 PM",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%q) = %q, want %q", in, got, want)
		}
	}

	// Мусор возвращается как есть.
	if got := FormatClock("junk"); got != "junk" {
		t.Errorf("FormatClock(junk) = %q", got)
	}
}

func TestGroupByDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.Local)

	events := []model.Event{
		{EventID: 1, EventName: "later today", EventDate: "2025-06-15", EventTime: "18:00"},
		{EventID: 2, EventName: "next week", EventDate: "2025-06-22", EventTime: "10:00"},
		{EventID: 3, EventName: "morning today", EventDate: "2025-06-15", EventTime: "09:00"},
		{EventID: 4, EventName: "tomorrow", EventDate: "2025-06-16", EventTime: "12:00"},
	}

	sections := GroupByDate(events, now)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	if sections[0].Title != "Today" {
		t.Errorf("section 0 title = %q, want Today", sections[0].Title)
	}
	if sections[1].Title != "Tomorrow" {
		t.Errorf("section 1 title = %q, want Tomorrow", sections[1].Title)
	}
	if sections[2].Title != "June 22, 2025" {
		t.Errorf("section 2 title = %q", sections[2].Title)
	}

	// Внутри дня — по возрастанию времени.
	today := sections[0].Events
	if len(today) != 2 || today[0].EventID != 3 || today[1].EventID != 1 {
		t.Fatalf("today section ordered wrong: %+v", today)
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	if sections := GroupByDate(nil, time.Now()); sections != nil {
		t.Fatalf("expected nil, got %+v", sections)
	}
}
