package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// wordsBody holds the two-column word/definition rows on the a..z pages.
	wordsBody = "table.words tbody"
	// listBody holds the three-row lost word groups on the clw pages.
	listBody = "table.list tbody"

	// headerWord is the first cell of the header row that some pages render
	// inside the body instead of a thead.
	headerWord = "Word"
)

// WordEntry is one row of an alphabetic index page.
type WordEntry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// LostWordEntry is one three-row group of a lost words page.
type LostWordEntry struct {
	Word         string `json:"word"`
	PartOfSpeech string `json:"part_of_speech"`
	Years        string `json:"years"`
	Definition   string `json:"definition"`
	Description  string `json:"description"`
}

// Parse builds a selectable document from decoded page text. The HTML5
// parser inserts implied tbody elements, so selectors on tbody also match
// tables written without one.
func Parse(text string) (*goquery.Document, error) {
	node, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return goquery.NewDocumentFromNode(node), nil
}

// Words extracts word/definition pairs from every table.words body in doc.
// Rows with fewer than two td cells and the "Word" header row are skipped.
func Words(doc *goquery.Document) []WordEntry {
	var out []WordEntry
	doc.Find(wordsBody).Each(func(_ int, body *goquery.Selection) {
		body.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 2 {
				return
			}
			word := NormalizeCell(cells.Eq(0).Text())
			if word == headerWord {
				return
			}
			out = append(out, WordEntry{
				Word:       word,
				Definition: NormalizeCell(cells.Eq(1).Text()),
			})
		})
	})
	return out
}

// LostWords extracts three-row groups from every table.list body in doc.
func LostWords(doc *goquery.Document) []LostWordEntry {
	var out []LostWordEntry
	doc.Find(listBody).Each(func(_ int, body *goquery.Selection) {
		out = append(out, lostWordsInBody(body)...)
	})
	return out
}

// lostWordsInBody scans the rows of one body by index. A group is a header
// row with at least three th/td cells followed by a definition row and a
// description row. A row with too few cells yields nothing and the scan
// moves to the next row; a header without two rows after it ends the body.
func lostWordsInBody(body *goquery.Selection) []LostWordEntry {
	rows := body.Find("tr")
	n := rows.Length()
	var out []LostWordEntry
	for i := 0; i < n; {
		cells := rows.Eq(i).Find("th, td")
		if cells.Length() < 3 {
			i++
			continue
		}
		if i+2 >= n {
			break
		}
		out = append(out, LostWordEntry{
			Word:         Trim(cells.Eq(0).Text()),
			PartOfSpeech: Trim(cells.Eq(1).Text()),
			Years:        NormalizeCell(cells.Eq(2).Text()),
			Definition:   Trim(rows.Eq(i + 1).Text()),
			Description:  Trim(rows.Eq(i + 2).Text()),
		})
		i += 3
	}
	return out
}

// Trim removes outer whitespace only.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeCell trims outer whitespace and then deletes every newline. The
// newline is removed, not replaced by a space. After the trim the string
// starts and ends with non-space runes, so applying it twice changes nothing.
func NormalizeCell(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", "")
}
