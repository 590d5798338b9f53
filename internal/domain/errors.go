package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrAssetNotFound          = errors.New("activo no encontrado")
	ErrDuplicateName          = errors.New("ya existe un registro activo con ese nombre")
	ErrDuplicateSerial        = errors.New("ya existe un activo con ese número de serie")
	ErrUnknownCategory        = errors.New("la categoría no existe o está inactiva")
	ErrUnknownUnit            = errors.New("la unidad organizacional no existe o está inactiva")
	ErrReferencedEntity       = errors.New("el registro sigue referenciado y no puede desactivarse")
	ErrInvalidTransition      = errors.New("la dirección no corresponde al origen y destino")
	ErrNoOpTransfer           = errors.New("el destino es igual a la ubicación actual")
	ErrConcurrentModification = errors.New("el activo fue modificado por otra operación")
	ErrInvalidLimit           = errors.New("el límite debe ser mayor que cero")
	ErrInvalidInput           = errors.New("entrada inválida")
)
