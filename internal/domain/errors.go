package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidBackup   = errors.New("documento de respaldo inválido")
	ErrCorruptSnapshot = errors.New("snapshot persistido corrupto")
)
