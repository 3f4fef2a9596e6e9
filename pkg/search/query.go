package search

import "strings"

// ParseObjectQuery turns a free-form attribute query into the data_attrs
// filter string of the object search endpoint. Comma-separated segments
// become exact-match filters: "adres:Utrechtsestraat 41, type:Laadpaal"
// parses to "adres__exact__Utrechtsestraat 41,type__exact__Laadpaal".
// A segment without a key filters on "name". An empty query returns ""
// so the filter can be omitted.
func ParseObjectQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}

	segments := strings.Split(query, ",")
	filters := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		key, value, found := strings.Cut(segment, ":")
		if !found {
			key, value = "name", segment
		}
		filters = append(filters, strings.TrimSpace(key)+"__exact__"+strings.TrimSpace(value))
	}
	return strings.Join(filters, ",")
}
