package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Page  int `query:"page" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0,max=100"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
}

// Offset devuelve el desplazamiento SQL equivalente a la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// ErrorResponse cuerpo de error HTTP. Code es uno de los valores de la
// taxonomía de errores de dominio (DUPLICATE_SERIAL, NO_OP_TRANSFER, ...).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// CurrentLocation acompaña CONCURRENT_MODIFICATION para que el caller
	// pueda reintentar contra la ubicación fresca.
	CurrentLocation *LocationDTO `json:"current_location,omitempty"`
}
