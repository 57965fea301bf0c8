// Package query turns partially specified store filters into an
// engine-agnostic query plan executed by the storage layer.
package query

import "github.com/retailatlas/store-locator/api/internal/domain"

// Op identifies one string-comparison operator.
type Op string

const (
	OpEquals        Op = "equals"
	OpContains      Op = "contains"
	OpNotContains   Op = "not_contains"
	OpStartsWith    Op = "starts_with"
	OpNotStartsWith Op = "not_starts_with"
	OpEndsWith      Op = "ends_with"
)

// StringClause is one active predicate against a string field.
type StringClause struct {
	Op    Op
	Value string
}

// Condition attaches one or more string clauses to a document field path.
// Clauses on the same field are conjunctive.
type Condition struct {
	Field   string
	Clauses []StringClause
}

// NearCondition selects records whose location lies within MaxDistanceMeters
// of Center.
type NearCondition struct {
	Center            domain.Coordinates
	MaxDistanceMeters float64
}

// Plan is the engine-agnostic description of a store query. All parts are
// combined conjunctively by the executing storage layer.
type Plan struct {
	Conditions    []Condition
	Near          *NearCondition
	ExcludeClosed bool

	// MatchNone short-circuits execution to an empty result set. Used by
	// the proximity builder when no origin is available.
	MatchNone bool
}

// Sort applied by the storage layer to every find. An explicit tie-breaking
// key keeps pagination stable under concurrent writes.
const (
	SortCreatedAtDesc = "createdAt"
	SortIDAsc         = "_id"
)
