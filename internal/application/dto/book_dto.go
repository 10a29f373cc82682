package dto

// CreateBookRequest alta de libro. Todos los campos son obligatorios.
type CreateBookRequest struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Stock  int    `json:"stock"`
}

// UpdateBookRequest actualización de libro; Code identifica el registro.
type UpdateBookRequest struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Stock  int    `json:"stock"`
}

// BookResponse libro con stock disponible (total menos préstamos activos).
type BookResponse struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Stock  int    `json:"stock"`
}
