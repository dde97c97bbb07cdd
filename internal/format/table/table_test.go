package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"A to C", "12", "Arial"},
		{"#", "3", "123 Mono"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight, AlignLeft})
	want := []string{
		"A to C  12  Arial",
		"#        3  123 Mono",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected layout:\n%q\nwant\n%q", got, want)
	}
}

func TestFormatRaggedRows(t *testing.T) {
	rows := [][]string{
		{"Serif"},
		{"SansSerif", "default"},
	}
	got := Format(rows, nil)
	want := []string{
		"Serif",
		"SansSerif  default",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected layout:\n%q\nwant\n%q", got, want)
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	rows := [][]string{
		{"明朝", "x"},
		{"ab", "y"},
	}
	got := Format(rows, nil)
	want := []string{
		"明朝  x",
		"ab    y",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected layout:\n%q\nwant\n%q", got, want)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}
