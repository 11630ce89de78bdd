package repos

import (
	"errors"
	"fmt"
	"testing"
)

func TestTagClassifiesMissingTable(t *testing.T) {
	err := Tag(errors.New("SQL logic error: no such table: categories (1)"))
	if !IsTableMissing(err) {
		t.Fatalf("want TABLE_NOT_FOUND, got %v", err)
	}
	if Code(err) != CodeTableNotFound {
		t.Fatalf("code: %q", Code(err))
	}
}

func TestTagDefaultsToUnexpected(t *testing.T) {
	err := Tag(errors.New("disk I/O error"))
	if Code(err) != CodeUnexpected {
		t.Fatalf("want UNEXPECTED_ERROR, got %q", Code(err))
	}
	if IsTableMissing(err) {
		t.Fatal("unexpected error must not look like a missing table")
	}
}

func TestTagPassesThrough(t *testing.T) {
	if Tag(nil) != nil {
		t.Fatal("nil stays nil")
	}
	if got := Tag(ErrAppendOnly); !errors.Is(got, ErrAppendOnly) {
		t.Fatalf("sentinels must not be re-wrapped, got %v", got)
	}
	once := Tag(errors.New("boom"))
	if again := Tag(fmt.Errorf("outer: %w", once)); Code(again) != CodeUnexpected {
		t.Fatalf("already-tagged error must keep its code, got %v", again)
	}
}

func TestCodedErrorUnwraps(t *testing.T) {
	inner := errors.New("inner")
	err := Tag(fmt.Errorf("query: %w", inner))
	if !errors.Is(err, inner) {
		t.Fatal("tagging must not hide the cause")
	}
}
