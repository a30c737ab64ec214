package service

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePage clamps page/size to sane values: 1-based page, default
// size 20, capped at 100.
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
