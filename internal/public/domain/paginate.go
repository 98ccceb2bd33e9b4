package domain

// DefaultPageSize is the grid size used by the nursery and offer listings.
const DefaultPageSize = 9

// PageEllipsis marks a compressed gap in a page-number control list.
const PageEllipsis = -1

// PageResult is one page of an ordered result set plus the metadata needed
// to render pagination controls.
type PageResult[T any] struct {
	Items      []T
	Total      int
	TotalPages int
	Page       int
	Pages      []int
}

// TotalPages returns the page count for total items at the given page size.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// NextPage applies a page-change request: a requested page outside
// [1, total] is refused and the current page is kept.
func NextPage(current, requested, total int) int {
	if requested < 1 || requested > total {
		return current
	}
	return requested
}

// Paginate slices the ordered items into the requested page window. The page
// defaults to 1, and an out-of-range request is refused rather than clamped,
// falling back to page 1.
func Paginate[T any](items []T, page, size int) PageResult[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	totalPages := TotalPages(total, size)
	page = NextPage(1, page, totalPages)

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return PageResult[T]{
		Items:      items[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		Pages:      PageNumbers(totalPages, page),
	}
}

// PageNumbers builds the page-number control list with ellipsis compression:
// all pages when there are five or fewer, otherwise the first page, a window
// around the current page, and the last page, with PageEllipsis filling the
// gaps. The list never contains duplicates.
func PageNumbers(total, current int) []int {
	if total <= 0 {
		return nil
	}
	if total <= 5 {
		pages := make([]int, 0, total)
		for p := 1; p <= total; p++ {
			pages = append(pages, p)
		}
		return pages
	}

	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - 1
	if start < 2 {
		start = 2
	}
	end := current + 1
	if end > total-1 {
		end = total - 1
	}

	pages := []int{1}
	if start > 2 {
		pages = append(pages, PageEllipsis)
	}
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	if end < total-1 {
		pages = append(pages, PageEllipsis)
	}
	return append(pages, total)
}
