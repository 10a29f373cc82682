package entity

import "time"

// Book representa un título del catálogo. Stock es la cantidad total de
// ejemplares en propiedad; la disponibilidad se deriva restando los préstamos
// activos, nunca se descuenta del campo almacenado.
type Book struct {
	Code      string // código único, clave primaria (ej. "JK-45")
	Title     string
	Author    string
	Stock     int // total de ejemplares, >= 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
