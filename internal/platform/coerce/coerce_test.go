package coerce

import (
	"testing"
	"time"
)

func TestInt(t *testing.T) {
	t.Run("passes integers through", func(t *testing.T) {
		if got := Int(42, -1); got != 42 {
			t.Fatalf("unexpected value: got=%d want=42", got)
		}
	})

	t.Run("truncates floats", func(t *testing.T) {
		if got := Int(7.9, -1); got != 7 {
			t.Fatalf("unexpected value: got=%d want=7", got)
		}
	})

	t.Run("parses numeric strings with whitespace", func(t *testing.T) {
		if got := Int("  19 ", -1); got != 19 {
			t.Fatalf("unexpected value: got=%d want=19", got)
		}
	})

	t.Run("parses fractional strings by truncation", func(t *testing.T) {
		if got := Int("20.0", -1); got != 20 {
			t.Fatalf("unexpected value: got=%d want=20", got)
		}
	})

	t.Run("returns default for nil, empty and junk", func(t *testing.T) {
		for _, value := range []any{nil, "", "   ", "abc", []int{1}} {
			if got := Int(value, -1); got != -1 {
				t.Fatalf("expected default for %#v, got=%d", value, got)
			}
		}
	})
}

func TestFloat(t *testing.T) {
	if got := Float("3.5", 0); got != 3.5 {
		t.Fatalf("unexpected value: got=%v want=3.5", got)
	}
	if got := Float(nil, 1.25); got != 1.25 {
		t.Fatalf("expected default for nil, got=%v", got)
	}
	if got := Float("not-a-number", 2); got != 2 {
		t.Fatalf("expected default for junk, got=%v", got)
	}
}

func TestDate(t *testing.T) {
	t.Run("parses ISO dates", func(t *testing.T) {
		got, ok := Date("2020-04-03")
		if !ok {
			t.Fatalf("expected a parsed date")
		}
		want := time.Date(2020, 4, 3, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("unexpected date: got=%v want=%v", got, want)
		}
	})

	t.Run("ambiguous slash dates resolve day-first", func(t *testing.T) {
		got, ok := Date("03/04/2020")
		if !ok {
			t.Fatalf("expected a parsed date")
		}
		want := time.Date(2020, 4, 3, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("unexpected date: got=%v want=%v", got, want)
		}
	})

	t.Run("month-first fallback when day-first is invalid", func(t *testing.T) {
		got, ok := Date("12/25/2019")
		if !ok {
			t.Fatalf("expected a parsed date")
		}
		want := time.Date(2019, 12, 25, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("unexpected date: got=%v want=%v", got, want)
		}
	})

	t.Run("no value for empty or unmatched input", func(t *testing.T) {
		for _, value := range []any{nil, "", "  ", "31st March", 20200403} {
			if _, ok := Date(value); ok {
				t.Fatalf("expected no value for %#v", value)
			}
		}
	})
}
