package question

// DefaultPageSize mirrors the classic ten-questions-per-page API contract.
const DefaultPageSize = 10

// Paginate cuts an id-ordered question slice into the requested page.
// Pages are 1-based; page values below 1 are clamped to 1. A start offset
// past the end yields an empty page, not an error. Total always reports the
// length of the input set so clients can render page controls.
func Paginate(items []Question, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize

	out := Page{Questions: []Question{}, Total: len(items)}
	if start >= len(items) {
		return out
	}
	if end > len(items) {
		end = len(items)
	}
	out.Questions = append(out.Questions, items[start:end]...)
	return out
}
