package dto

// FormInputRequest una pulsación sobre un campo del formulario.
type FormInputRequest struct {
	Field string `json:"field"` // productName | unitPrice | sku
	Value string `json:"value"`
}

// FormInputResponse valor saneado que debe mostrar el input.
type FormInputResponse struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// PressResponse resultado de pulsar un botón con confirmación.
type PressResponse struct {
	Result  string `json:"result"` // started | ignored | confirmed
	Deleted bool   `json:"deleted,omitempty"`
}
