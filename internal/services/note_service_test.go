package services

import (
	"errors"
	"testing"
	"time"

	"github.com/cyra-app/cyra/internal/models"
)

type stubCycleNoteRepo struct {
	appended  []models.CycleNote
	notes     []models.CycleNote
	appendErr error
	listErr   error

	lastListLimit int
}

func (stub *stubCycleNoteRepo) Append(note *models.CycleNote) error {
	if stub.appendErr != nil {
		return stub.appendErr
	}
	stub.appended = append(stub.appended, *note)
	return nil
}

func (stub *stubCycleNoteRepo) ListByUser(_ uint, limit int) ([]models.CycleNote, error) {
	stub.lastListLimit = limit
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.CycleNote, len(stub.notes))
	copy(result, stub.notes)
	return result, nil
}

func (stub *stubCycleNoteRepo) ListByUserAndCycle(_ uint, _ uint, limit int) ([]models.CycleNote, error) {
	stub.lastListLimit = limit
	result := make([]models.CycleNote, len(stub.notes))
	copy(result, stub.notes)
	return result, nil
}

func TestAddNoteRejectsWhitespaceOnlyText(t *testing.T) {
	repo := &stubCycleNoteRepo{}
	service := NewNoteService(repo, time.UTC)

	_, err := service.AddNote(1, nil, mustParseDay(t, "2024-01-10"), models.NoteSourceManual, "   \t \n ", time.Now())
	if !errors.Is(err, ErrNoteTextEmpty) {
		t.Fatalf("expected ErrNoteTextEmpty, got %v", err)
	}
	if len(repo.appended) != 0 {
		t.Fatal("expected no store write for whitespace-only text")
	}
}

func TestAddNoteRejectsUnknownSource(t *testing.T) {
	repo := &stubCycleNoteRepo{}
	service := NewNoteService(repo, time.UTC)

	_, err := service.AddNote(1, nil, mustParseDay(t, "2024-01-10"), "widget", "cramps", time.Now())
	if !errors.Is(err, ErrNoteSourceInvalid) {
		t.Fatalf("expected ErrNoteSourceInvalid, got %v", err)
	}
	if len(repo.appended) != 0 {
		t.Fatal("expected no store write for an unknown source")
	}
}

func TestAddNoteSanitizesAndAssignsID(t *testing.T) {
	repo := &stubCycleNoteRepo{}
	service := NewNoteService(repo, time.UTC)

	note, err := service.AddNote(1, nil, mustParseDay(t, "2024-01-10"), models.NoteSourceTracker, "  mild\x00 headache\x1b  ", time.Now())
	if err != nil {
		t.Fatalf("add note failed: %v", err)
	}
	if note.Text != "mild headache" {
		t.Fatalf("expected sanitized text %q, got %q", "mild headache", note.Text)
	}
	if note.ID == "" {
		t.Fatal("expected a generated note id")
	}
	if len(repo.appended) != 1 {
		t.Fatalf("expected one appended note, got %d", len(repo.appended))
	}
}

func TestAddNoteKeepsLineBreaks(t *testing.T) {
	service := NewNoteService(&stubCycleNoteRepo{}, time.UTC)

	note, err := service.AddNote(1, nil, mustParseDay(t, "2024-01-10"), models.NoteSourceNotes, "line one\nline two", time.Now())
	if err != nil {
		t.Fatalf("add note failed: %v", err)
	}
	if note.Text != "line one\nline two" {
		t.Fatalf("expected line break preserved, got %q", note.Text)
	}
}

func TestAddNoteAttachesCycle(t *testing.T) {
	repo := &stubCycleNoteRepo{}
	service := NewNoteService(repo, time.UTC)

	cycleID := uint(9)
	note, err := service.AddNote(1, &cycleID, mustParseDay(t, "2024-01-10"), models.NoteSourceCalendar, "spotting", time.Now())
	if err != nil {
		t.Fatalf("add note failed: %v", err)
	}
	if note.CycleID == nil || *note.CycleID != 9 {
		t.Fatalf("expected note attached to cycle 9, got %+v", note.CycleID)
	}
}

func TestListNotesAppliesDefaultLimit(t *testing.T) {
	repo := &stubCycleNoteRepo{}
	service := NewNoteService(repo, time.UTC)

	if _, err := service.ListNotes(1, 0); err != nil {
		t.Fatalf("list notes failed: %v", err)
	}
	if repo.lastListLimit != DefaultNoteListLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultNoteListLimit, repo.lastListLimit)
	}

	if _, err := service.ListNotes(1, 10); err != nil {
		t.Fatalf("list notes failed: %v", err)
	}
	if repo.lastListLimit != 10 {
		t.Fatalf("expected explicit limit 10, got %d", repo.lastListLimit)
	}
}

func TestListNotesPropagatesStoreFailure(t *testing.T) {
	repo := &stubCycleNoteRepo{listErr: errors.New("timeout")}
	service := NewNoteService(repo, time.UTC)

	if _, err := service.ListNotes(1, 0); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestSanitizeNoteText(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"  plain  ", "plain"},
		{"a\x00b", "ab"},
		{"tab\tkept", "tab\tkept"},
		{"\x1b[31mred\x1b[0m", "[31mred[0m"},
		{"\r\nwindows line\r\n", "windows line"},
	}
	for _, testCase := range cases {
		if got := SanitizeNoteText(testCase.input); got != testCase.expected {
			t.Fatalf("sanitize %q: expected %q, got %q", testCase.input, testCase.expected, got)
		}
	}
}
