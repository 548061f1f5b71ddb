package domain

// ActiveSession es el puntero durable al usuario considerado activo.
// El registro con mayor id es el usuario actual; no existe cierre de sesión.
type ActiveSession struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
