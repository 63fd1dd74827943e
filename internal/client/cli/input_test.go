package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	t.Parallel()

	reader := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter something", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Enter something") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	t.Parallel()

	reader := bufio.NewReader(strings.NewReader("partial"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "p", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "partial" {
		t.Fatalf("got %q", got)
	}
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	t.Parallel()

	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	if _, err := GetSimpleText(reader, "p", &out); err == nil {
		t.Fatalf("expected error on empty EOF, got nil")
	}
}

func TestGetMultiline(t *testing.T) {
	t.Parallel()

	reader := bufio.NewReader(strings.NewReader("line one\nline two\n\n"))
	var out bytes.Buffer

	got, err := GetMultiline(reader, "Enter code", &out)
	if err != nil {
		t.Fatalf("GetMultiline error: %v", err)
	}
	if got != "line one\nline two" {
		t.Fatalf("got %q", got)
	}
}

func TestGetPassword_Stubbed(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret123"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("GetPassword error: %v", err)
	}
	if string(pw) != "secret123" {
		t.Fatalf("got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}
