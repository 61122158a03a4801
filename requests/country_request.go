package requests

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CountryRequest struct {
	Name      string `form:"name" validate:"required,max=50"`
	Sortname  string `form:"sortname" validate:"required,min=1,max=2"`
	Phonecode int    `form:"phonecode" validate:"required,min=1,max=999"`
}

// ValidateCountry — alan kısıtlarını (uzunluk ve phonecode aralığı) denetler.
// Depolama katmanı phonecode sınırını zorlamaz; sınır yalnızca burada geçerlidir.
func ValidateCountry(req CountryRequest) (map[string]string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Sortname = strings.TrimSpace(req.Sortname)

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		validationErrors := GetCountryValidationErrors(err)
		return validationErrors, errors.New("lütfen ülke bilgilerini kontrol edin")
	}

	return make(map[string]string), nil
}

func GetCountryValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fieldErrors
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Field() {
		case "Name":
			switch fieldErr.Tag() {
			case "required":
				fieldErrors["name"] = "Ülke adı zorunludur."
			case "max":
				fieldErrors["name"] = "Ülke adı en fazla 50 karakter olabilir."
			}
		case "Sortname":
			switch fieldErr.Tag() {
			case "required":
				fieldErrors["sortname"] = "Ülke kodu zorunludur."
			default:
				fieldErrors["sortname"] = "Ülke kodu en fazla 2 karakter olabilir."
			}
		case "Phonecode":
			fieldErrors["phonecode"] = "Telefon kodu 1 ile 999 arasında olmalıdır."
		}
	}

	return fieldErrors
}
