package extract

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustParse(t *testing.T, text string) *goquery.Document {
	t.Helper()
	doc, err := Parse(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestWords_SkipsHeaderAndStripsNewlines(t *testing.T) {
	page := "<html><body><table class=\"words\"><tbody>" +
		"<tr><td>Word</td><td>Definition</td></tr>" +
		"<tr><td>  Foo\n</td><td>A bar\n baz </td></tr>" +
		"</tbody></table></body></html>"

	got := Words(mustParse(t, page))
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d: %+v", len(got), got)
	}
	want := WordEntry{Word: "Foo", Definition: "A bar baz"}
	if got[0] != want {
		t.Fatalf("expected %+v, got %+v", want, got[0])
	}
}

func TestWords_HeaderMatchIsExactAndCaseSensitive(t *testing.T) {
	page := "<table class=\"words\">" +
		"<tr><td>word</td><td>lower case is data</td></tr>" +
		"<tr><td> Word </td><td>trimmed header is skipped</td></tr>" +
		"<tr><td>Words</td><td>plural is data</td></tr>" +
		"</table>"

	got := Words(mustParse(t, page))
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(got), got)
	}
	if got[0].Word != "word" || got[1].Word != "Words" {
		t.Fatalf("unexpected words: %+v", got)
	}
}

func TestWords_RowsWithFewerThanTwoCellsAreSkipped(t *testing.T) {
	page := "<table class=\"words\"><tbody>" +
		"<tr><th>Word</th><th>Definition</th></tr>" +
		"<tr><td>lonely</td></tr>" +
		"<tr></tr>" +
		"<tr><td>abacus</td><td>counting frame</td><td>extra</td></tr>" +
		"</tbody></table>"

	got := Words(mustParse(t, page))
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d: %+v", len(got), got)
	}
	if got[0] != (WordEntry{Word: "abacus", Definition: "counting frame"}) {
		t.Fatalf("unexpected entry: %+v", got[0])
	}
}

func TestWords_ConcatenatesNestedTextNodes(t *testing.T) {
	page := "<table class=\"words\"><tbody>" +
		"<tr><td><b>ab</b><i>ba</i></td><td>head of a <a href=\"#\">monastery</a>\n</td></tr>" +
		"</tbody></table>"

	got := Words(mustParse(t, page))
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Word != "abba" || got[0].Definition != "head of a monastery" {
		t.Fatalf("unexpected entry: %+v", got[0])
	}
}

func TestWords_IgnoresOtherTablesAndKeepsOrder(t *testing.T) {
	page := "<table class=\"nav\"><tr><td>skip</td><td>me</td></tr></table>" +
		"<table class=\"words\"><tr><td>a1</td><td>d1</td></tr></table>" +
		"<table class=\"words\"><tr><td>a2</td><td>d2</td></tr><tr><td>a3</td><td>d3</td></tr></table>"

	got := Words(mustParse(t, page))
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(got), got)
	}
	for i, w := range []string{"a1", "a2", "a3"} {
		if got[i].Word != w {
			t.Fatalf("entry %d: expected %q, got %q", i, w, got[i].Word)
		}
	}
}

func TestLostWords_CompleteGroup(t *testing.T) {
	page := "<table class=\"list\"><tbody>" +
		"<tr><th> abacinate </th><td> v </td><td> 1600s-\n1700s </td></tr>" +
		"<tr><td>\n to blind by a red-hot metal plate\n</td></tr>" +
		"<tr><td> A punishment.\nRarely recorded. </td></tr>" +
		"</tbody></table>"

	got := LostWords(mustParse(t, page))
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d: %+v", len(got), got)
	}
	want := LostWordEntry{
		Word:         "abacinate",
		PartOfSpeech: "v",
		Years:        "1600s-1700s",
		Definition:   "to blind by a red-hot metal plate",
		Description:  "A punishment.\nRarely recorded.",
	}
	if got[0] != want {
		t.Fatalf("expected %+v, got %+v", want, got[0])
	}
}

func TestLostWords_IncompleteTrailingGroupIsDropped(t *testing.T) {
	page := "<table class=\"list\"><tbody>" +
		"<tr><td>word</td><td>n</td><td>1700s</td></tr>" +
		"<tr><td>definition only</td></tr>" +
		"</tbody></table>"

	if got := LostWords(mustParse(t, page)); len(got) != 0 {
		t.Fatalf("expected 0 entries, got %d: %+v", len(got), got)
	}
}

func TestLostWords_MultipleGroupsAndPartialTail(t *testing.T) {
	page := "<table class=\"list\"><tbody>" +
		"<tr><td>one</td><td>n</td><td>1500s</td></tr><tr><td>d1</td></tr><tr><td>x1</td></tr>" +
		"<tr><td>two</td><td>adj</td><td>1600s</td></tr><tr><td>d2</td></tr><tr><td>x2</td></tr>" +
		"<tr><td>three</td><td>v</td><td>1700s</td></tr>" +
		"</tbody></table>"

	got := LostWords(mustParse(t, page))
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(got), got)
	}
	if got[0].Word != "one" || got[0].Description != "x1" {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
	if got[1].Word != "two" || got[1].Definition != "d2" || got[1].PartOfSpeech != "adj" {
		t.Fatalf("unexpected second entry: %+v", got[1])
	}
}

func TestLostWords_ShortHeaderRowIsSkipped(t *testing.T) {
	page := "<table class=\"list\"><tbody>" +
		"<tr><td colspan=\"3\">Section heading</td></tr>" +
		"<tr><td>gone</td><td>v</td><td>1800s</td></tr><tr><td>def</td></tr><tr><td>desc</td></tr>" +
		"</tbody></table>"

	got := LostWords(mustParse(t, page))
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d: %+v", len(got), got)
	}
	if got[0].Word != "gone" || got[0].Definition != "def" || got[0].Description != "desc" {
		t.Fatalf("unexpected entry: %+v", got[0])
	}
}

func TestLostWords_GroupsDoNotSpanBodies(t *testing.T) {
	page := "<table class=\"list\">" +
		"<tbody><tr><td>split</td><td>v</td><td>1600s</td></tr><tr><td>def</td></tr></tbody>" +
		"<tbody><tr><td>desc</td></tr></tbody>" +
		"</table>"

	if got := LostWords(mustParse(t, page)); len(got) != 0 {
		t.Fatalf("expected 0 entries, got %d: %+v", len(got), got)
	}
}

func TestNormalizeCell_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"\n\n",
		"  Foo\n",
		"A bar\n baz ",
		"a \n b",
		"\u00a0nbsp\u00a0",
		"line1\r\nline2",
		"x\n\n\ny",
	}
	for _, in := range inputs {
		once := NormalizeCell(in)
		twice := NormalizeCell(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestTrim_KeepsInnerNewlines(t *testing.T) {
	if got := Trim("  a\nb  "); got != "a\nb" {
		t.Fatalf("unexpected trim: %q", got)
	}
}
