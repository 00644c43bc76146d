package listing

// Paginate splits records into consecutive chunks of at most pageSize.
// It returns ceil(len(records)/pageSize) chunks, and none for an empty input.
// Chunks share the backing array of records. pageSize must be positive.
func Paginate[T any](records []T, pageSize int) [][]T {
	if len(records) == 0 || pageSize <= 0 {
		return nil
	}

	count := (len(records) + pageSize - 1) / pageSize
	pages := make([][]T, 0, count)
	for start := 0; start < len(records); start += pageSize {
		end := min(start+pageSize, len(records))
		pages = append(pages, records[start:end:end])
	}
	return pages
}

// filter keeps the records matching query, preserving order.
// An empty query matches everything without consulting fn.
func filter[T any](records []T, query string, fn FilterFunc[T]) []T {
	if query == "" {
		return records
	}

	matched := make([]T, 0, len(records))
	for _, r := range records {
		if fn(r, query) {
			matched = append(matched, r)
		}
	}
	return matched
}
