package models

// All — migrasyon sırasına göre şema kaydı.
// Ebeveyn tablolar önce gelir; foreign key'ler bu sıraya dayanır.
func All() []interface{} {
	return []interface{}{
		&Country{},
		&State{},
		&City{},
	}
}
