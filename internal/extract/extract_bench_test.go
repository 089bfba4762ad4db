package extract

import (
	"strings"
	"testing"
)

// Benchmark parsing plus extraction on page sizes comparable to the site's
// larger letter pages (a few thousand rows).
func BenchmarkWords(b *testing.B) {
	small := makeWordsPage(10)
	large := makeWordsPage(3000)

	b.Run("small", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			doc, _ := Parse(small)
			_ = Words(doc)
		}
	})
	b.Run("large", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			doc, _ := Parse(large)
			_ = Words(doc)
		}
	})
}

func BenchmarkLostWords(b *testing.B) {
	page := makeListPage(500)
	for i := 0; i < b.N; i++ {
		doc, _ := Parse(page)
		_ = LostWords(doc)
	}
}

func makeWordsPage(rows int) string {
	builder := new(strings.Builder)
	builder.WriteString("<html><body><table class=\"words\"><tbody><tr><th>Word</th><th>Definition</th></tr>")
	for i := 0; i < rows; i++ {
		builder.WriteString("<tr><td>")
		builder.WriteString(sampleWord)
		builder.WriteString("</td><td>")
		builder.WriteString(sampleText)
		builder.WriteString("</td></tr>\n")
	}
	builder.WriteString("</tbody></table></body></html>")
	return builder.String()
}

func makeListPage(groups int) string {
	builder := new(strings.Builder)
	builder.WriteString("<html><body><table class=\"list\"><tbody>")
	for i := 0; i < groups; i++ {
		builder.WriteString("<tr><th>")
		builder.WriteString(sampleWord)
		builder.WriteString("</th><td>n</td><td>1600s</td></tr><tr><td>")
		builder.WriteString(sampleText)
		builder.WriteString("</td></tr><tr><td>")
		builder.WriteString(sampleText)
		builder.WriteString("</td></tr>\n")
	}
	builder.WriteString("</tbody></table></body></html>")
	return builder.String()
}

const (
	sampleWord = "abecedarian"
	sampleText = "one who teaches or studies the alphabet; arranged in alphabetical order\n"
)
