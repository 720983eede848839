// Package query translates raw request parameters into validated store query
// descriptors. Parsing never rejects a request: unparsable values fall back
// to documented defaults.
package query

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// DefaultLimit applies when the requested limit is absent or unparsable.
	DefaultLimit = 10
	// MaxLimit caps general listing results.
	MaxLimit = 20
	// SearchLimit caps free-text search results regardless of client request.
	SearchLimit = 10
	// PriceLimit caps price-range results.
	PriceLimit = 20
)

// Params carries the raw string-typed listing parameters as supplied by the
// client.
type Params struct {
	Limit   string
	Skip    string
	Sort    string
	Reverse string
}

// Descriptor is the normalized filter/sort/pagination value handed verbatim
// to the store.
type Descriptor struct {
	Filter bson.M
	Sort   string
	Dir    int
	Skip   int64
	Limit  int64
}

// Listing builds a descriptor over the whole collection.
func Listing(p Params) Descriptor {
	return build(bson.M{}, p, "_id")
}

// Category builds a descriptor matching one category exactly.
func Category(name string, p Params) Descriptor {
	return build(bson.M{"category": name}, p, "category")
}

// Search builds a case-insensitive substring match against name OR info.
// The pattern is passed through uninterpreted and the limit is hardcoded;
// the client's limit parameter is ignored here.
func Search(term string) Descriptor {
	expr := primitive.Regex{Pattern: term, Options: "i"}
	return Descriptor{
		Filter: bson.M{"$or": bson.A{bson.M{"name": expr}, bson.M{"info": expr}}},
		Dir:    1,
		Limit:  SearchLimit,
	}
}

// PriceRange builds an inclusive numeric range predicate. min defaults to 0;
// an absent or unparsable max leaves the range unbounded above.
func PriceRange(minRaw, maxRaw string) Descriptor {
	min := 0.0
	if parsed, err := strconv.ParseFloat(minRaw, 64); err == nil {
		min = parsed
	}
	rng := bson.M{"$gte": min}
	if max, err := strconv.ParseFloat(maxRaw, 64); err == nil {
		rng["$lte"] = max
	}
	return Descriptor{
		Filter: bson.M{"price": rng},
		Dir:    1,
		Limit:  PriceLimit,
	}
}

// CountLimit parses the page-size divisor for count requests. Unlike listing
// limits it is not clamped to MaxLimit; values that cannot serve as a
// divisor fall back to the default.
func CountLimit(raw string) int64 {
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		return DefaultLimit
	}
	return parsed
}

// Pages returns the ceiling of count divided by limit.
func Pages(count, limit int64) int64 {
	return (count + limit - 1) / limit
}

func build(filter bson.M, p Params, defaultSort string) Descriptor {
	sort := p.Sort
	if sort == "" {
		sort = defaultSort
	}
	return Descriptor{
		Filter: filter,
		// Caller-supplied field names become store sort keys verbatim.
		// Known injection-shaped surface, kept for compatibility with the
		// documented contract; a hardened deployment needs an allow-list.
		Sort:  sort,
		Dir:   direction(p.Reverse),
		Skip:  parseSkip(p.Skip),
		Limit: parseLimit(p.Limit),
	}
}

// parseLimit clamps to [1, MaxLimit]; a non-numeric limit silently falls
// back to the default rather than rejecting the request.
func parseLimit(raw string) int64 {
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return DefaultLimit
	}
	if parsed > MaxLimit {
		return MaxLimit
	}
	if parsed < 1 {
		return 1
	}
	return parsed
}

// parseSkip defaults to 0 when absent or unparsable. Negative values are
// not rejected here; the store turns them down at query time.
func parseSkip(raw string) int64 {
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// direction maps the literal "yes" (case-sensitive) to descending.
func direction(reverse string) int {
	if reverse == "yes" {
		return -1
	}
	return 1
}
