package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryContext(rawQuery string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/contacts?"+rawQuery, nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestSearchInputFromQuery(t *testing.T) {
	empty := ""
	name := "jo"

	tests := []struct {
		name     string
		rawQuery string
		want     *usecase.SearchContactInput
	}{
		{
			name:     "defaults",
			rawQuery: "",
			want:     &usecase.SearchContactInput{Page: 1, Size: 10},
		},
		{
			name:     "filters and paging",
			rawQuery: "name=jo&page=3&size=25",
			want:     &usecase.SearchContactInput{Name: &name, Page: 3, Size: 25},
		},
		{
			name:     "present empty filter is kept",
			rawQuery: "phone=",
			want:     &usecase.SearchContactInput{Phone: &empty, Page: 1, Size: 10},
		},
		{
			name:     "out of range numbers are left to validation",
			rawQuery: "page=0&size=500",
			want:     &usecase.SearchContactInput{Page: 0, Size: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := searchInputFromQuery(newQueryContext(tt.rawQuery))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchInputFromQuery_NonInteger(t *testing.T) {
	_, err := searchInputFromQuery(newQueryContext("size=ten"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequestBody)
}
