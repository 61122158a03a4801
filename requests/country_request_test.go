package requests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCountry(t *testing.T) {
	tests := []struct {
		name      string
		req       CountryRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "geçerli ülke",
			req:  CountryRequest{Name: "Turkey", Sortname: "TR", Phonecode: 90},
		},
		{
			name: "tek karakterlik sortname geçerli",
			req:  CountryRequest{Name: "Test 1", Sortname: "T", Phonecode: 303},
		},
		{
			name:      "phonecode alt sınırın altında",
			req:       CountryRequest{Name: "Turkey", Sortname: "TR", Phonecode: 0},
			wantErr:   true,
			wantField: "phonecode",
		},
		{
			name:      "phonecode üst sınırın üstünde",
			req:       CountryRequest{Name: "Turkey", Sortname: "TR", Phonecode: 1000},
			wantErr:   true,
			wantField: "phonecode",
		},
		{
			name:      "name 50 karakteri aşıyor",
			req:       CountryRequest{Name: strings.Repeat("a", 51), Sortname: "TR", Phonecode: 90},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "sortname 2 karakteri aşıyor",
			req:       CountryRequest{Name: "Turkey", Sortname: "TUR", Phonecode: 90},
			wantErr:   true,
			wantField: "sortname",
		},
		{
			name:      "name zorunlu",
			req:       CountryRequest{Sortname: "TR", Phonecode: 90},
			wantErr:   true,
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors, err := ValidateCountry(tt.req)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Empty(t, fieldErrors)
				return
			}

			require.Error(t, err)
			assert.Contains(t, fieldErrors, tt.wantField)
		})
	}
}
