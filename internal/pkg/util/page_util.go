package util

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NormalizePage 修正分页参数，page 从 1 起，limit 限制在 [1, 100]
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// ClampTrustLevel 将信任等级限制在 [min, max]
func ClampTrustLevel(level, min, max int) int {
	if level < min {
		return min
	}
	if level > max {
		return max
	}
	return level
}
