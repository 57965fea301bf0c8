package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

func TestTranslateNilFilter(t *testing.T) {
	plan, err := Translate(nil, false)
	require.NoError(t, err)
	assert.Empty(t, plan.Conditions)
	assert.True(t, plan.ExcludeClosed)

	plan, err = Translate(nil, true)
	require.NoError(t, err)
	assert.False(t, plan.ExcludeClosed)
}

func TestTranslateEmptyFilter(t *testing.T) {
	plan, err := Translate(&StoreFilter{}, false)
	require.NoError(t, err)
	assert.Empty(t, plan.Conditions)
	assert.True(t, plan.ExcludeClosed)
}

func TestTranslateAddressFields(t *testing.T) {
	filter := &StoreFilter{
		Name: Equals("Corner Shop"),
		Address: &AddressFilter{
			Street:  Equals("1 Main St"),
			City:    Equals("Albany"),
			Zip:     Equals("12207"),
			Country: Equals("US"),
		},
	}

	plan, err := Translate(filter, false)
	require.NoError(t, err)

	fields := make(map[string][]StringClause, len(plan.Conditions))
	for _, cond := range plan.Conditions {
		fields[cond.Field] = cond.Clauses
	}
	assert.Equal(t, []StringClause{{Op: OpEquals, Value: "Corner Shop"}}, fields["name"])
	assert.Equal(t, []StringClause{{Op: OpEquals, Value: "1 Main St"}}, fields["address.street"])
	assert.Equal(t, []StringClause{{Op: OpEquals, Value: "Albany"}}, fields["address.city"])
	assert.Equal(t, []StringClause{{Op: OpEquals, Value: "12207"}}, fields["address.zip"])
	assert.Equal(t, []StringClause{{Op: OpEquals, Value: "US"}}, fields["address.country"])
}

func TestTranslateStateByAbbreviation(t *testing.T) {
	filter := &StoreFilter{Address: &AddressFilter{State: &StateFilter{Abbreviation: "ny"}}}

	plan, err := Translate(filter, false)
	require.NoError(t, err)
	require.Len(t, plan.Conditions, 1)
	assert.Equal(t, "address.state", plan.Conditions[0].Field)
	assert.Equal(t, []StringClause{{Op: OpEquals, Value: "NY"}}, plan.Conditions[0].Clauses)
}

func TestTranslateStateByName(t *testing.T) {
	filter := &StoreFilter{Address: &AddressFilter{State: &StateFilter{Name: "New York"}}}

	plan, err := Translate(filter, false)
	require.NoError(t, err)
	require.Len(t, plan.Conditions, 1)
	assert.Equal(t, []StringClause{{Op: OpEquals, Value: "NY"}}, plan.Conditions[0].Clauses)
}

func TestTranslateUnresolvableState(t *testing.T) {
	filter := &StoreFilter{Address: &AddressFilter{State: &StateFilter{Name: "Narnia"}}}

	_, err := Translate(filter, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidFilter))
}

func TestTranslateOpenHoursDay(t *testing.T) {
	filter := &StoreFilter{OpenHours: &OpenHourFilter{Day: "Monday"}}

	plan, err := Translate(filter, false)
	require.NoError(t, err)
	require.Len(t, plan.Conditions, 1)
	assert.Equal(t, "open_hours.day", plan.Conditions[0].Field)
	assert.Equal(t, []StringClause{{Op: OpEquals, Value: "monday"}}, plan.Conditions[0].Clauses)
}

func TestTranslateUnknownDay(t *testing.T) {
	_, err := Translate(&StoreFilter{OpenHours: &OpenHourFilter{Day: "funday"}}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidFilter))
}

// The is_open time-window field is accepted but intentionally inactive;
// only day filtering takes effect.
func TestTranslateIsOpenIgnored(t *testing.T) {
	filter := &StoreFilter{OpenHours: &OpenHourFilter{Day: "friday", IsOpen: 1200}}

	plan, err := Translate(filter, false)
	require.NoError(t, err)
	require.Len(t, plan.Conditions, 1)
	assert.Equal(t, "open_hours.day", plan.Conditions[0].Field)
}

func TestTranslateAbsentFieldsContributeNothing(t *testing.T) {
	// Nil and present-but-unset matchers alike contribute no clause.
	filter := &StoreFilter{
		Name:    &StringMatch{},
		Address: &AddressFilter{Street: &StringMatch{}},
	}

	plan, err := Translate(filter, true)
	require.NoError(t, err)
	assert.Empty(t, plan.Conditions)
}
