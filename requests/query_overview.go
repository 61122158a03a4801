package requests

import "atlas/models"

// StateCountRow — ülke başına eyalet sayısı projeksiyonunun satırı.
type StateCountRow struct {
	CountryID  uint  `json:"country_id"`
	StateCount int64 `json:"state_count"`
}

// QueryOverview — listeleme ekranının yedi projeksiyonunu tek pakette taşır.
type QueryOverview struct {
	AllCountryAsc      []models.Country `json:"all_country_asc"`
	AllCountryDesc     []models.Country `json:"all_country_desc"`
	AllCountryLimit    []models.Country `json:"all_country_limit"`
	AllCountryDistinct []models.Country `json:"all_country_distinct"`
	AllCountryBetween  []models.Country `json:"all_country_between"`
	AllCountrySelect   []string         `json:"all_country_select"`
	AllCountryCount    []StateCountRow  `json:"all_country_count"`
}
