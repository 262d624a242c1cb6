package services

import (
	"net/url"
	"strconv"
)

const QuestionsPerPage = 10

// PageFromQuery reads the 1-based page number from the "page" query parameter.
// A missing or non-numeric value yields page 1.
func PageFromQuery(query url.Values) int {
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns the items of the given page. Pages outside the sequence,
// including page numbers below 1, yield an empty slice.
func Paginate[T any](items []T, page int) []T {
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page < 1 || page > pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
