package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrDuplicateCode      = errors.New("el código ya está registrado")
	ErrNotEditable        = errors.New("el estado actual no permite modificaciones")
	ErrHasChildren        = errors.New("el concepto tiene conceptos hijos")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
