package listing

// PageView is a read-only snapshot of one page plus its navigation state.
// HasPrevious and HasNext are the only signals a UI needs to enable or
// disable its navigation controls.
type PageView[T any] struct {
	PageIndex    int  `json:"page_index"    yaml:"page_index"`
	Records      []T  `json:"records"       yaml:"records"`
	HasPrevious  bool `json:"has_previous"  yaml:"has_previous"`
	HasNext      bool `json:"has_next"      yaml:"has_next"`
	TotalPages   int  `json:"total_pages"   yaml:"total_pages"`
	TotalRecords int  `json:"total_records" yaml:"total_records"`
}

// IsEmpty reports whether the view has no pages at all.
func (v PageView[T]) IsEmpty() bool {
	return v.TotalPages == 0
}

func newPageView[T any](pages [][]T, index, totalRecords int) PageView[T] {
	view := PageView[T]{
		PageIndex:    index,
		Records:      []T{},
		TotalPages:   len(pages),
		TotalRecords: totalRecords,
	}
	if len(pages) == 0 {
		return view
	}

	view.Records = append(view.Records, pages[index]...)
	view.HasPrevious = index > 0
	view.HasNext = index < len(pages)-1
	return view
}
