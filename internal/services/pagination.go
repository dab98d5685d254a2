package services

import "strconv"

// QuestionsPerPage is the fixed page size of every paginated listing.
const QuestionsPerPage = 10

// ParsePage reads a 1-indexed page number. Empty or non-integer input
// falls back to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns items[(page-1)*size : page*size], clamped to the slice.
// Pages below 1 or past the end are empty. The result is never nil.
func Paginate[T any](items []T, page int) []T {
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page < 1 || page > pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
