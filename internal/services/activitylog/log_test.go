package activitylog

import (
	"fmt"
	"sync"
	"testing"

	"feedwatch-go/internal/models"
)

func TestAppendAndEntries(t *testing.T) {
	l := New(10)
	l.Append(models.EntryInfo, "first")
	l.Append(models.EntryCamera, "second")

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "first" || entries[1].Message != "second" {
		t.Fatalf("entries out of order: %v", entries)
	}
	if entries[0].ID >= entries[1].ID {
		t.Fatalf("IDs not increasing: %d, %d", entries[0].ID, entries[1].ID)
	}
}

func TestBoundedEviction(t *testing.T) {
	l := New(5)
	for i := 0; i < 12; i++ {
		l.Append(models.EntryInfo, fmt.Sprintf("msg-%d", i))
	}

	entries := l.Entries()
	if len(entries) != 5 {
		t.Fatalf("expected 5 retained entries, got %d", len(entries))
	}
	if entries[0].Message != "msg-7" {
		t.Errorf("oldest retained = %q, want msg-7", entries[0].Message)
	}
	if entries[4].Message != "msg-11" {
		t.Errorf("newest retained = %q, want msg-11", entries[4].Message)
	}
}

func TestSinceCursor(t *testing.T) {
	l := New(10)
	l.Append(models.EntryInfo, "a")
	l.Append(models.EntryInfo, "b")
	l.Append(models.EntryError, "c")

	all := l.Entries()
	after := l.Since(all[1].ID)
	if len(after) != 1 || after[0].Message != "c" {
		t.Fatalf("Since(%d) = %v, want only c", all[1].ID, after)
	}

	if got := l.Since(all[2].ID); len(got) != 0 {
		t.Fatalf("Since(latest) should be empty, got %v", got)
	}
}

func TestConcurrentAppend(t *testing.T) {
	l := New(100)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.Append(models.EntryInfo, "concurrent")
			}
		}()
	}
	wg.Wait()

	if l.Len() != 100 {
		t.Fatalf("expected log at capacity 100, got %d", l.Len())
	}

	// IDs must be strictly increasing even under contention.
	entries := l.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i].ID <= entries[i-1].ID {
			t.Fatalf("IDs not strictly increasing at %d: %d <= %d", i, entries[i].ID, entries[i-1].ID)
		}
	}
}
