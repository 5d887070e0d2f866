package dto

// CreateSupplierRequest — contact fields are optional; the storage layer
// fills in placeholder defaults for anything omitted.
type CreateSupplierRequest struct {
	Name          string   `json:"supplierName" validate:"required,min=1,max=120"`
	ContactPerson *string  `json:"contactPerson"`
	Email         *string  `json:"email"`
	PhoneNumber   *string  `json:"phoneNumber"`
	Address       *string  `json:"address"`
	ItemsProvided *string  `json:"itemsProvided"`
	Rating        *float64 `json:"rating"       validate:"omitempty,min=0,max=5"`
	Status        *string  `json:"status"`
}
