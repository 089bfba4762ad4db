package extract

import "github.com/PuerkitoBio/goquery"

// Extractor turns a parsed page into records of one kind. The scrape
// pipelines are written against this so each mode only picks its page set
// and its extractor.
type Extractor[T any] interface {
	Extract(doc *goquery.Document) []T
}

// WordsExtractor applies Words.
type WordsExtractor struct{}

func (WordsExtractor) Extract(doc *goquery.Document) []WordEntry {
	return Words(doc)
}

// LostWordsExtractor applies LostWords.
type LostWordsExtractor struct{}

func (LostWordsExtractor) Extract(doc *goquery.Document) []LostWordEntry {
	return LostWords(doc)
}
