package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/keyset"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

func TestFormatSet(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	grapheme.SetupGraphemeClasses()
	color.NoColor = true // deterministic output without ANSI sequences
	set, err := keyset.SortedOf("audio", "midi", "video")
	if err != nil {
		t.Fatal(err.Error())
	}
	config := &Config{
		LineWidth: 30,
		Context:   uax11.LatinContext,
	}
	fw := NewConsoleFixedWidth(nil)
	var out strings.Builder
	if err = FormatSet(set, nil, &out, config, fw); err != nil {
		t.Fatal(err.Error())
	}
	if got, want := out.String(), "audio midi video\n"; got != want {
		t.Errorf("unexpected output: got %q want %q", got, want)
	}
}

func TestFormatSetWrapsLines(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	color.NoColor = true
	set, err := keyset.SortedOf(10, 20, 30, 40, 50, 60)
	if err != nil {
		t.Fatal(err.Error())
	}
	config := &Config{
		LineWidth: 8,
		Context:   uax11.LatinContext,
	}
	fw := NewConsoleFixedWidth(nil)
	var out strings.Builder
	if err = FormatSet(set, nil, &out, config, fw); err != nil {
		t.Fatal(err.Error())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines at width 8, got %d: %q", len(lines), lines)
	}
	for _, line := range lines {
		if len(line) > 8 {
			t.Errorf("line %q exceeds the configured width", line)
		}
	}
}

func TestFormatIntersection(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	grapheme.SetupGraphemeClasses()
	color.NoColor = true
	a, err := keyset.SortedOf(1, 2, 3)
	if err != nil {
		t.Fatal(err.Error())
	}
	b, err := keyset.SortedOf(2, 3, 4)
	if err != nil {
		t.Fatal(err.Error())
	}
	config := &Config{
		LineWidth: 30,
		Context:   uax11.LatinContext,
	}
	fw := NewConsoleFixedWidth(nil)
	var out strings.Builder
	if err = FormatIntersection(a, b, nil, &out, config, fw); err != nil {
		t.Fatal(err.Error())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 output lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "1 2 3" || lines[1] != "2 3 4" {
		t.Errorf("unexpected operand lines: %q", lines[:2])
	}
	if lines[2] != "2 3" {
		t.Errorf("expected intersection line \"2 3\", got %q", lines[2])
	}
}

func TestFormatNilArguments(t *testing.T) {
	set, err := keyset.SortedOf(1)
	if err != nil {
		t.Fatal(err.Error())
	}
	if err = FormatSet(set, nil, nil, nil, nil); err == nil {
		t.Errorf("expected an error for nil writer and formatter")
	}
}
