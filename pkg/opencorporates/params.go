package opencorporates

import (
	"net/url"
	"strings"
)

const tokenParam = "api_token"

// paginationKeys are dropped from by-id fetches, matched case-insensitively.
var paginationKeys = map[string]struct{}{
	"page":     {},
	"per_page": {},
	"perpage":  {},
	"limit":    {},
	"offset":   {},
}

// BuildQuery turns caller-supplied parameters into the outbound query
// string. Parameters with empty values are dropped, pagination keys are
// dropped when excludePagination is set, and the credential is applied
// last so a caller-supplied api_token can never win.
func BuildQuery(params map[string]string, token string, excludePagination bool) string {
	q := url.Values{}
	for key, value := range params {
		if value == "" {
			continue
		}
		if excludePagination {
			if _, skip := paginationKeys[strings.ToLower(key)]; skip {
				continue
			}
		}
		q.Set(key, value)
	}
	q.Set(tokenParam, token)
	return q.Encode()
}
