package dto

// ErrorResponse cuerpo uniforme de error HTTP: un código estable para el
// cliente (NOT_FOUND, VALIDATION, DUPLICATE_CODE...) y un mensaje legible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageResponse eco de la paginación aplicada en los listados.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}
