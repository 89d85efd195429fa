package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrInvalidArgument se retorna de inmediato cuando un valor de entrada viola
	// una invariante del dominio (cantidad <= 0, precio negativo, nombre vacío).
	ErrInvalidArgument = errors.New("argumento inválido")
)
