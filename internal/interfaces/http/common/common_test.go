package common

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrInvalidArgument, http.StatusBadRequest},
		{domain.ErrInvalidFilter, http.StatusBadRequest},
		{domain.ErrStoresExist, http.StatusPreconditionFailed},
		{domain.ErrMalformedSourceData, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusForError(tc.err))
	}
}

func TestStatusForErrorWrapped(t *testing.T) {
	// Wrapping must not hide the sentinel from the status mapping.
	err := eris.Wrap(domain.ErrNotFound, "repo: find store")
	assert.Equal(t, http.StatusNotFound, StatusForError(err))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, domain.ErrStoresExist)

	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"stores already exist"}`, rec.Body.String())
}

func TestParseIntParam(t *testing.T) {
	got, err := ParseIntParam("", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, got)

	got, err = ParseIntParam("7", 50)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = ParseIntParam("seven", 50)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestParseFloatParam(t *testing.T) {
	got, err := ParseFloatParam(" 12.5 ", 5)
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)

	got, err = ParseFloatParam("", 5)
	require.NoError(t, err)
	assert.Equal(t, float64(5), got)

	_, err = ParseFloatParam("far", 5)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestParseBoolParam(t *testing.T) {
	assert.True(t, ParseBoolParam("true"))
	assert.True(t, ParseBoolParam("TRUE"))
	assert.False(t, ParseBoolParam(""))
	assert.False(t, ParseBoolParam("1"))
	assert.False(t, ParseBoolParam("yes"))
}
