package seeders

import (
	"errors"

	"atlas/configs/logconfig"
	"atlas/models"
	"atlas/requests"

	"gorm.io/gorm"
)

type seedCountry struct {
	country models.Country
	states  map[string][]string
}

var geoData = []seedCountry{
	{
		country: models.Country{Sortname: "TR", Name: "Turkey", Phonecode: 90},
		states:  map[string][]string{
			"Marmara":    {"Istanbul", "Bursa", "Edirne"},
			"Ic Anadolu": {"Ankara", "Konya"},
			"Ege":        {"Izmir", "Aydin"},
		},
	},
	{
		country: models.Country{Sortname: "US", Name: "United States", Phonecode: 1},
		states:  map[string][]string{
			"California": {"Los Angeles", "San Francisco"},
			"Texas":      {"Houston", "Austin"},
			"New York":   {"New York City", "Buffalo"},
		},
	},
	{
		country: models.Country{Sortname: "DE", Name: "Germany", Phonecode: 49},
		states:  map[string][]string{
			"Bayern": {"Munich", "Nuremberg"},
			"Berlin": {"Berlin"},
		},
	},
	{
		country: models.Country{Sortname: "JP", Name: "Japan", Phonecode: 81},
		states:  map[string][]string{
			"Kanto":  {"Tokyo", "Yokohama"},
			"Kansai": {"Osaka", "Kyoto"},
		},
	},
	{
		country: models.Country{Sortname: "BR", Name: "Brazil", Phonecode: 55},
		states:  map[string][]string{
			"Sao Paulo":      {"Sao Paulo", "Campinas"},
			"Rio de Janeiro": {"Rio de Janeiro"},
		},
	},
	{
		country: models.Country{Sortname: "IN", Name: "India", Phonecode: 91},
		states:  map[string][]string{
			"Maharashtra": {"Mumbai", "Pune"},
			"Karnataka":   {"Bangalore", "Mysore"},
		},
	},
}

// SeedGeoData — ülke/eyalet/şehir başlangıç verisini yükler.
// Tablo doluysa hiçbir şey yapmaz.
func SeedGeoData(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&models.Country{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		logconfig.SLog.Debugw("Coğrafi veri zaten yüklü", "countries", existing)
		return nil
	}

	logconfig.SLog.Info("Coğrafi veri yükleniyor...")

	for _, seed := range geoData {
		fieldErrors, err := requests.ValidateCountry(requests.CountryRequest{
			Name:      seed.country.Name,
			Sortname:  seed.country.Sortname,
			Phonecode: seed.country.Phonecode,
		})
		if err != nil {
			logconfig.SLog.Errorw("Geçersiz tohum verisi",
				"country", seed.country.Name,
				"errors", fieldErrors,
			)
			return errors.New("tohum verisi doğrulanamadı: " + seed.country.Name)
		}

		country := seed.country
		if err := db.Create(&country).Error; err != nil {
			logconfig.SLog.Error("Ülke eklenirken hata: "+country.Name, err)
			return err
		}

		for stateName, cities := range seed.states {
			state := models.State{Name: stateName, CountryID: country.ID}
			if err := db.Create(&state).Error; err != nil {
				logconfig.SLog.Error("Eyalet eklenirken hata: "+stateName, err)
				return err
			}

			for _, cityName := range cities {
				city := models.City{Name: cityName, StateID: state.ID}
				if err := db.Create(&city).Error; err != nil {
					logconfig.SLog.Error("Şehir eklenirken hata: "+cityName, err)
					return err
				}
			}
		}
	}

	logconfig.SLog.Info("Coğrafi veri yükleme tamamlandı.")
	return nil
}
