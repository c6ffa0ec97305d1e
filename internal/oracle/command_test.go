package oracle

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestNewCommandOracleRequiresCommand(t *testing.T) {
	_, err := NewCommandOracle("")
	if err == nil {
		t.Error("expected error for empty command")
	}
	_, err = NewCommandOracle("   ")
	if err == nil {
		t.Error("expected error for blank command")
	}
}

func TestCommandOracleEchoesStdin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	o, err := NewCommandOracle("cat")
	if err != nil {
		t.Fatalf("NewCommandOracle error: %v", err)
	}

	reply, err := o.Invoke(context.Background(), "[1] Hello\n[2] World")
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if reply != "[1] Hello\n[2] World" {
		t.Errorf("unexpected reply %q", reply)
	}
}

func TestCommandOracleReportsFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	o, err := NewCommandOracle("sh", "-c", "echo diagnostic >&2; exit 3")
	if err != nil {
		t.Fatalf("NewCommandOracle error: %v", err)
	}

	_, err = o.Invoke(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error for failing command")
	}
	if !errors.Is(err, ErrOracle) {
		t.Errorf("expected ErrOracle, got %v", err)
	}
	if !strings.Contains(err.Error(), "diagnostic") {
		t.Errorf("expected stderr diagnostic in error, got %v", err)
	}
}

func TestCommandOracleHonorsContextCancel(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	o, err := NewCommandOracle("sleep", "10")
	if err != nil {
		t.Fatalf("NewCommandOracle error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = o.Invoke(ctx, "prompt")
	if !errors.Is(err, ErrOracle) {
		t.Errorf("expected ErrOracle on timeout, got %v", err)
	}
}
