package usecase

const (
	defaultPageLimit = 20
	maxPageLimit     = 200
)

// normalizePage clamps page and limit and returns the row offset
func normalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit, (page - 1) * limit
}
