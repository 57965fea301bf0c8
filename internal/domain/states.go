package domain

import (
	"strings"

	"github.com/rotisserie/eris"
)

// State is one catalog entry: full name plus two-letter code.
type State struct {
	Name         string
	Abbreviation string
}

// states is the fixed catalog: the 50 U.S. states plus the District of
// Columbia. No mutation operations exist.
var states = []State{
	{"Alabama", "AL"},
	{"Alaska", "AK"},
	{"Arizona", "AZ"},
	{"Arkansas", "AR"},
	{"California", "CA"},
	{"Colorado", "CO"},
	{"Connecticut", "CT"},
	{"Delaware", "DE"},
	{"District of Columbia", "DC"},
	{"Florida", "FL"},
	{"Georgia", "GA"},
	{"Hawaii", "HI"},
	{"Idaho", "ID"},
	{"Illinois", "IL"},
	{"Indiana", "IN"},
	{"Iowa", "IA"},
	{"Kansas", "KS"},
	{"Kentucky", "KY"},
	{"Louisiana", "LA"},
	{"Maine", "ME"},
	{"Maryland", "MD"},
	{"Massachusetts", "MA"},
	{"Michigan", "MI"},
	{"Minnesota", "MN"},
	{"Mississippi", "MS"},
	{"Missouri", "MO"},
	{"Montana", "MT"},
	{"Nebraska", "NE"},
	{"Nevada", "NV"},
	{"New Hampshire", "NH"},
	{"New Jersey", "NJ"},
	{"New Mexico", "NM"},
	{"New York", "NY"},
	{"North Carolina", "NC"},
	{"North Dakota", "ND"},
	{"Ohio", "OH"},
	{"Oklahoma", "OK"},
	{"Oregon", "OR"},
	{"Pennsylvania", "PA"},
	{"Rhode Island", "RI"},
	{"South Carolina", "SC"},
	{"South Dakota", "SD"},
	{"Tennessee", "TN"},
	{"Texas", "TX"},
	{"Utah", "UT"},
	{"Vermont", "VT"},
	{"Virginia", "VA"},
	{"Washington", "WA"},
	{"West Virginia", "WV"},
	{"Wisconsin", "WI"},
	{"Wyoming", "WY"},
}

var statesByAbbreviation = func() map[string]State {
	m := make(map[string]State, len(states))
	for _, s := range states {
		m[s.Abbreviation] = s
	}
	return m
}()

// States returns a copy of the full catalog.
func States() []State {
	return append([]State{}, states...)
}

// LookupState resolves a two-letter code to its catalog entry. Fails with
// ErrUnknownState when the code matches no entry.
func LookupState(code string) (State, error) {
	s, ok := statesByAbbreviation[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return State{}, eris.Wrapf(ErrUnknownState, "state catalog: %q", code)
	}
	return s, nil
}

// ResolveStateName resolves a full state name (case-insensitive) to its
// catalog entry. Fails with ErrUnknownState when no entry matches.
func ResolveStateName(name string) (State, error) {
	trimmed := strings.TrimSpace(name)
	for _, s := range states {
		if strings.EqualFold(s.Name, trimmed) {
			return s, nil
		}
	}
	return State{}, eris.Wrapf(ErrUnknownState, "state catalog: %q", name)
}
