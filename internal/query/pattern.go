package query

// StringMatch is the string-comparison DSL accepted by store filters. All
// values are plain strings, no wildcards. An empty field is unset; a filter
// with no fields set matches everything.
type StringMatch struct {
	Eq            string `json:"eq,omitempty"`
	Contains      string `json:"contains,omitempty"`
	NotContains   string `json:"not_contains,omitempty"`
	StartsWith    string `json:"starts_with,omitempty"`
	NotStartsWith string `json:"not_starts_with,omitempty"`
	EndsWith      string `json:"ends_with,omitempty"`
}

// Clauses returns one clause per set field. Every set field stays active:
// setting Contains and StartsWith together yields two conjunctive clauses
// rather than the last one overwriting the other.
func (m StringMatch) Clauses() []StringClause {
	clauses := make([]StringClause, 0, 6)
	if m.Eq != "" {
		clauses = append(clauses, StringClause{Op: OpEquals, Value: m.Eq})
	}
	if m.Contains != "" {
		clauses = append(clauses, StringClause{Op: OpContains, Value: m.Contains})
	}
	if m.NotContains != "" {
		clauses = append(clauses, StringClause{Op: OpNotContains, Value: m.NotContains})
	}
	if m.StartsWith != "" {
		clauses = append(clauses, StringClause{Op: OpStartsWith, Value: m.StartsWith})
	}
	if m.NotStartsWith != "" {
		clauses = append(clauses, StringClause{Op: OpNotStartsWith, Value: m.NotStartsWith})
	}
	if m.EndsWith != "" {
		clauses = append(clauses, StringClause{Op: OpEndsWith, Value: m.EndsWith})
	}
	return clauses
}

// Empty reports whether no field is set.
func (m StringMatch) Empty() bool {
	return len(m.Clauses()) == 0
}

// Equals is shorthand for an exact-match StringMatch.
func Equals(value string) *StringMatch {
	return &StringMatch{Eq: value}
}
