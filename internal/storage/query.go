package storage

// Filter is a single exact-equality condition.
type Filter struct {
	Field string
	Value interface{}
}

// Query selects records by field equality with optional ordering and limit.
// The zero Query matches everything in insertion order.
type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int
}

// Fields is a partial record keyed by column name.
type Fields map[string]interface{}

// All matches every record.
func All() Query {
	return Query{}
}

// Where starts a query with one equality filter.
func Where(field string, value interface{}) Query {
	return Query{Filters: []Filter{{Field: field, Value: value}}}
}

// And adds another equality filter.
func (q Query) And(field string, value interface{}) Query {
	filters := make([]Filter, len(q.Filters), len(q.Filters)+1)
	copy(filters, q.Filters)
	q.Filters = append(filters, Filter{Field: field, Value: value})
	return q
}

// Asc orders results by field, ascending.
func (q Query) Asc(field string) Query {
	q.OrderBy, q.Desc = field, false
	return q
}

// Descending orders results by field, descending.
func (q Query) Descending(field string) Query {
	q.OrderBy, q.Desc = field, true
	return q
}

// Take limits the number of results. Zero means no limit.
func (q Query) Take(n int) Query {
	q.Limit = n
	return q
}
