package clipboard

import (
	"errors"
	"testing"
)

func TestServiceCopy(t *testing.T) {
	var copiedText string
	service := &Service{
		writeAll:    func(text string) error { copiedText = text; return nil },
		unsupported: func() bool { return false },
	}
	if err := service.Copy("tree"); err != nil {
		t.Fatalf("Copy error: %v", err)
	}
	if copiedText != "tree" {
		t.Fatalf("expected tree, got %q", copiedText)
	}
}

func TestServiceCopyUnsupported(t *testing.T) {
	service := &Service{
		writeAll:    func(string) error { t.Fatalf("writeAll must not be called"); return nil },
		unsupported: func() bool { return true },
	}
	if err := service.Copy("tree"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestServiceCopyWrapsErrors(t *testing.T) {
	writeFailure := errors.New("xclip missing")
	service := &Service{writeAll: func(string) error { return writeFailure }}
	if err := service.Copy("tree"); !errors.Is(err, writeFailure) {
		t.Fatalf("expected wrapped failure, got %v", err)
	}
}
