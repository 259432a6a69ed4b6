package scanner

import (
	"testing"

	"github.com/tyama/commentx/internal/model"
)

func TestPyStyleComment(t *testing.T) {
	got := scanString(t, "x = 1  # note\n", model.StylePy, Options{})
	if len(got) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(got))
	}
	c := got[0]
	if c.Text != "# note" || c.Line != 1 || c.Col != 7 {
		t.Fatalf("unexpected comment: %+v", c)
	}
	if c.Style != model.StylePy {
		t.Fatalf("style mismatch: %q", c.Style)
	}
}

func TestPyStyleNoComments(t *testing.T) {
	got := scanString(t, "x = 1\ny = 2\n", model.StylePy, Options{})
	if len(got) != 0 {
		t.Fatalf("expected no comments, got %d", len(got))
	}
}

func TestPyStyleTabColumn(t *testing.T) {
	// tab expands to 4 spaces; # sits right after it
	got := scanString(t, "\t# note\n", model.StylePy, Options{TabWidth: 4})
	if len(got) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(got))
	}
	if got[0].Col != 4 {
		t.Fatalf("col mismatch: %d", got[0].Col)
	}
	if got[0].Text != "# note" {
		t.Fatalf("text mismatch: %q", got[0].Text)
	}
}

func TestPyStyleHashInsideString(t *testing.T) {
	got := scanString(t, "color = \"#fff\"  # hex\n", model.StylePy, Options{})
	if len(got) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(got))
	}
	if got[0].Text != "# hex" {
		t.Fatalf("text mismatch: %q", got[0].Text)
	}
}

func TestPyStyleHashInsideSingleQuotes(t *testing.T) {
	got := scanString(t, "s = '#not a comment'\n", model.StylePy, Options{})
	if len(got) != 0 {
		t.Fatalf("expected no comments, got %d", len(got))
	}
}

func TestPyStyleEscapedQuote(t *testing.T) {
	got := scanString(t, `s = "a\"#still string" # real`+"\n", model.StylePy, Options{})
	if len(got) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(got))
	}
	if got[0].Text != "# real" {
		t.Fatalf("text mismatch: %q", got[0].Text)
	}
}

func TestPyStyleOneCommentPerLine(t *testing.T) {
	// everything after the first # belongs to that comment
	got := scanString(t, "x = 1  # one # two\n", model.StylePy, Options{})
	if len(got) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(got))
	}
	if got[0].Text != "# one # two" {
		t.Fatalf("text mismatch: %q", got[0].Text)
	}
}

func TestPyStyleMultipleLines(t *testing.T) {
	got := scanString(t, "# first\nx = 1\n# third\n", model.StylePy, Options{})
	if len(got) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(got))
	}
	if got[0].Line != 1 || got[1].Line != 3 {
		t.Fatalf("line numbers mismatch: %d %d", got[0].Line, got[1].Line)
	}
}

func TestPyStyleRoundTrip(t *testing.T) {
	line := "\tx = 1  # padded"
	got := scanString(t, line+"\n", model.StylePy, Options{TabWidth: 4})
	if len(got) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(got))
	}
	c := got[0]
	expanded := ExpandTabs(line, 4)
	if sliced := expanded[c.Col : c.Col+len(c.Text)]; sliced != c.Text {
		t.Fatalf("round trip failed: %q != %q", sliced, c.Text)
	}
}
