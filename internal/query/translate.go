package query

import (
	"errors"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

// StateFilter matches the stored state by full name or by two-letter code.
type StateFilter struct {
	Name         string `json:"name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// AddressFilter matches individual address fields. Absent fields contribute
// no clause.
type AddressFilter struct {
	Street  *StringMatch `json:"street,omitempty"`
	City    *StringMatch `json:"city,omitempty"`
	State   *StateFilter `json:"state,omitempty"`
	Zip     *StringMatch `json:"zip,omitempty"`
	Country *StringMatch `json:"country,omitempty"`
}

// OpenHourFilter matches the nested open-hours collection by day name
// (case-insensitive).
//
// IsOpen is accepted for API compatibility but never translated into a
// clause. Only day filtering is active.
// TODO: define interval semantics for is_open (HHMM falls inside an
// open/close pair) and wire it into the plan.
type OpenHourFilter struct {
	Day    string `json:"day,omitempty"`
	IsOpen int    `json:"is_open,omitempty"`
}

// StoreFilter is the nested optional-field filter accepted by store queries.
type StoreFilter struct {
	Name      *StringMatch    `json:"name,omitempty"`
	Address   *AddressFilter  `json:"address,omitempty"`
	OpenHours *OpenHourFilter `json:"open_hours,omitempty"`
}

// Translate walks the fields present on filter and produces a query plan.
// A nil filter yields a plan matching every record, subject only to the
// closed-visibility toggle: closed stores are excluded unless includeClosed
// is set.
func Translate(filter *StoreFilter, includeClosed bool) (Plan, error) {
	plan := Plan{ExcludeClosed: !includeClosed}
	if filter == nil {
		return plan, nil
	}

	appendMatch := func(field string, m *StringMatch) {
		if m == nil || m.Empty() {
			return
		}
		plan.Conditions = append(plan.Conditions, Condition{Field: field, Clauses: m.Clauses()})
	}

	appendMatch("name", filter.Name)

	if addr := filter.Address; addr != nil {
		appendMatch("address.street", addr.Street)
		appendMatch("address.city", addr.City)
		appendMatch("address.zip", addr.Zip)
		appendMatch("address.country", addr.Country)

		if addr.State != nil {
			code, err := resolveStateFilter(*addr.State)
			if err != nil {
				return Plan{}, err
			}
			if code != "" {
				plan.Conditions = append(plan.Conditions, Condition{
					Field:   "address.state",
					Clauses: []StringClause{{Op: OpEquals, Value: code}},
				})
			}
		}
	}

	if oh := filter.OpenHours; oh != nil && oh.Day != "" {
		day := strings.ToLower(strings.TrimSpace(oh.Day))
		if !domain.IsDay(day) {
			return Plan{}, eris.Wrapf(domain.ErrInvalidFilter, "translate: unknown day %q", oh.Day)
		}
		plan.Conditions = append(plan.Conditions, Condition{
			Field:   "open_hours.day",
			Clauses: []StringClause{{Op: OpEquals, Value: day}},
		})
	}

	return plan, nil
}

// resolveStateFilter reduces a state filter to a two-letter code. A full
// name is resolved through the state catalog; the abbreviation wins when
// both are given.
func resolveStateFilter(f StateFilter) (string, error) {
	if abbr := strings.TrimSpace(f.Abbreviation); abbr != "" {
		return strings.ToUpper(abbr), nil
	}
	if name := strings.TrimSpace(f.Name); name != "" {
		state, err := domain.ResolveStateName(name)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownState) {
				return "", eris.Wrapf(domain.ErrInvalidFilter, "translate: unresolvable state %q", name)
			}
			return "", err
		}
		return state.Abbreviation, nil
	}
	return "", nil
}
