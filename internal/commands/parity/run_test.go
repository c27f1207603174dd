package paritycmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-bilingual/internal/parity"
)

func TestRunParityCommandValidate(t *testing.T) {
	if err := (RunParityCommand{}).Validate(); err == nil {
		t.Fatal("expected validation error for empty root")
	}
	if err := (RunParityCommand{Root: "/content"}).Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestRunParityHandlerDeliversReport(t *testing.T) {
	root := t.TempDir()
	page := filepath.Join(root, "about.html")
	if err := os.WriteFile(page, []byte("<html><head><title>About</title></head></html>"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var delivered parity.Report
	handler := NewRunParityHandler(nil, func(_ context.Context, report parity.Report) error {
		delivered = report
		return nil
	}, nil)

	if err := handler.Execute(context.Background(), RunParityCommand{Root: root}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if delivered.Summary.Total != 1 {
		t.Fatalf("delivered summary = %+v", delivered.Summary)
	}
	if delivered.Summary.OrphanEnglish != 1 {
		t.Fatalf("expected orphan-english page, got %+v", delivered.Summary)
	}
}

func TestRunParityHandlerRejectsEmptyRoot(t *testing.T) {
	handler := NewRunParityHandler(nil, nil, nil)

	err := handler.Execute(context.Background(), RunParityCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestRunParityHandlerWrapsWalkFailure(t *testing.T) {
	handler := NewRunParityHandler(nil, nil, nil)

	err := handler.Execute(context.Background(), RunParityCommand{
		Root: filepath.Join(t.TempDir(), "missing"),
	})
	if err == nil {
		t.Fatal("expected execution error for missing root")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}
