package errors

// Стандартные сообщения об ошибках HTTP-слоя.
const (
	InternalServerError = "internal server error"
	BadRequest          = "bad request"
	NotFound            = "not_found"
)
