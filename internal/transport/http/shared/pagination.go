package shared

import (
	"net/http"
	"strconv"
)

const TotalCountHeader = "X-Total-Count"

// Pagination is a limit/offset window read from the query string.
type Pagination struct {
	Limit  int
	Offset int
}

// ParsePagination reads ?limit and ?offset. Malformed or out-of-range values
// fall back to defaultLimit and zero, and limit is capped at maxLimit.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int) Pagination {
	q := r.URL.Query()
	page := Pagination{
		Limit:  queryInt(q.Get("limit"), 1, defaultLimit),
		Offset: queryInt(q.Get("offset"), 0, 0),
	}
	if maxLimit > 0 {
		page.Limit = min(page.Limit, maxLimit)
	}
	return page
}

// Bounds clamps the window to a slice of length total.
func (p Pagination) Bounds(total int) (start, end int) {
	start = min(p.Offset, total)
	end = total
	if p.Limit > 0 {
		end = min(start+p.Limit, total)
	}
	return start, end
}

func SetTotalCount(w http.ResponseWriter, total int) {
	w.Header().Set(TotalCountHeader, strconv.Itoa(total))
}

func queryInt(raw string, floor, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < floor {
		return fallback
	}
	return v
}
