package repositories

import (
	"context"
	"testing"

	"atlas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepositoryCountByCountry(t *testing.T) {
	setupTestDB(t)
	countryRepo := NewCountryRepository()
	stateRepo := NewStateRepository()
	ctx := context.Background()

	turkey := models.Country{Name: "Turkey", Sortname: "TR", Phonecode: 90}
	require.NoError(t, countryRepo.Create(ctx, &turkey))

	germany := models.Country{Name: "Germany", Sortname: "DE", Phonecode: 49}
	require.NoError(t, countryRepo.Create(ctx, &germany))

	// Eyaleti olmayan ülke sonuçta görünmemeli.
	japan := models.Country{Name: "Japan", Sortname: "JP", Phonecode: 81}
	require.NoError(t, countryRepo.Create(ctx, &japan))

	for _, name := range []string{"Marmara", "Ege", "Ic Anadolu"} {
		require.NoError(t, stateRepo.Create(ctx, &models.State{Name: name, CountryID: turkey.ID}))
	}
	require.NoError(t, stateRepo.Create(ctx, &models.State{Name: "Bayern", CountryID: germany.ID}))

	rows, err := stateRepo.CountByCountry(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CountryID] = row.StateCount
	}

	assert.Equal(t, int64(3), counts[turkey.ID])
	assert.Equal(t, int64(1), counts[germany.ID])
	assert.NotContains(t, counts, japan.ID)
}

func TestStateRepositoryCountByCountryEmpty(t *testing.T) {
	setupTestDB(t)
	stateRepo := NewStateRepository()

	rows, err := stateRepo.CountByCountry(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCityRepositoryCountByState(t *testing.T) {
	setupTestDB(t)
	countryRepo := NewCountryRepository()
	stateRepo := NewStateRepository()
	cityRepo := NewCityRepository()
	ctx := context.Background()

	country := models.Country{Name: "Turkey", Sortname: "TR", Phonecode: 90}
	require.NoError(t, countryRepo.Create(ctx, &country))

	state := models.State{Name: "Marmara", CountryID: country.ID}
	require.NoError(t, stateRepo.Create(ctx, &state))

	require.NoError(t, cityRepo.Create(ctx, &models.City{Name: "Istanbul", StateID: state.ID}))
	require.NoError(t, cityRepo.Create(ctx, &models.City{Name: "Edirne", StateID: state.ID}))

	count, err := cityRepo.CountByState(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
