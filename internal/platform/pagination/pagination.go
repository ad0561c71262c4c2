package pagination

// Page describe una página 1-indexed sobre una lista ya filtrada.
// El caller debe volver a página 1 cada vez que cambia el filtro;
// aquí solo se recorta, no se "arregla" una página fuera de rango.
type Page struct {
	Number     int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// TotalPages = ceil(n / perPage); 0 cuando n = 0 (sin controles de paginado).
func TotalPages(n, perPage int) int {
	if n <= 0 || perPage <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// Paginate devuelve el tramo [(page-1)*perPage, page*perPage) acotado.
// page < 1 se trata como 1; fuera de rango devuelve slice vacío.
func Paginate[T any](items []T, page, perPage int) ([]T, Page) {
	if perPage <= 0 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}

	meta := Page{
		Number:     page,
		PerPage:    perPage,
		TotalItems: len(items),
		TotalPages: TotalPages(len(items), perPage),
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}, meta
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], meta
}
