package models

// CustomerDetails is the contact information collected during the Details
// stage of checkout. Address is optional; everything else is required
// before the Payment stage can be entered.
type CustomerDetails struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,kenyan_phone"`
	Address string `json:"address,omitempty"`
}

// IsEmpty reports whether no field has been filled in yet.
func (d CustomerDetails) IsEmpty() bool {
	return d.Name == "" && d.Email == "" && d.Phone == "" && d.Address == ""
}

// MissingFields returns the names of required fields that are blank.
func (d CustomerDetails) MissingFields() []string {
	var missing []string
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if d.Email == "" {
		missing = append(missing, "email")
	}
	if d.Phone == "" {
		missing = append(missing, "phone")
	}
	return missing
}
