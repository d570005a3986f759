package text

import (
	"errors"
	"testing"

	"github.com/brian-armstrong/wsz/skinerr"
	"github.com/brian-armstrong/wsz/ttesting"
)

func TestScanner(t *testing.T) {
	in := "\ufeff; header\n\n[Text]\r\nNormal = #00FF00\nnot a pair\n  [ Spaced ]  \nKey=a=b\n// c++ style\n"
	s := NewScanner(in, Dialect{CommentPrefixes: []string{";", "//"}})

	var lines []Line
	for s.Scan() {
		lines = append(lines, s.Line())
	}

	want := []struct {
		kind       Kind
		name       string
		key, value string
	}{
		{kind: Comment},
		{kind: Blank},
		{kind: Section, name: "Text"},
		{kind: KeyValue, key: "Normal", value: "#00FF00"},
		{kind: Other},
		{kind: Section, name: "Spaced"},
		{kind: KeyValue, key: "Key", value: "a=b"},
		{kind: Comment},
	}
	ttesting.AssertEqualInt(t, "line count", len(lines), len(want))
	for i, w := range want {
		if i >= len(lines) {
			break
		}
		l := lines[i]
		if l.Num != i+1 || l.Kind != w.kind || l.Name != w.name || l.Key != w.key || l.Value != w.value {
			t.Errorf("line %d: got %+v; want %+v", i+1, l, w)
		}
	}
}

func TestTrailingComment(t *testing.T) {
	s := NewScanner("1,2,3 // rgb\n   // only\n", Dialect{TrailingComment: "//"})
	if !s.Scan() {
		t.Fatal("no first line")
	}
	ttesting.AssertEqualString(t, "comment stripped", s.Line().Text, "1,2,3")
	if !s.Scan() {
		t.Fatal("no second line")
	}
	if s.Line().Kind != Comment {
		t.Errorf("got kind %v; want comment", s.Line().Kind)
	}
}

func TestLineErrors(t *testing.T) {
	err := Line{Num: 7, Text: "junk"}.InvalidLine()
	var fe *skinerr.FormatError
	if !errors.As(err, &fe) || fe.Line != 7 {
		t.Fatalf("got %v; want format error on line 7", err)
	}
	if !errors.Is(err, skinerr.ErrFormat) {
		t.Error("not an ErrFormat")
	}
	ttesting.AssertEqualString(t, "message", err.Error(), "invalid format on line 7: invalid line format: 'junk'")
}
