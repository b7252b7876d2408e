package book_appointment

import "strings"

// validateRequest проверяет, что выбраны специалист и слот
// ID из одних пробелов считается невыбранным
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ProfessionalID) == "" || strings.TrimSpace(req.SlotID) == "" {
		return ErrValidation
	}
	return nil
}
