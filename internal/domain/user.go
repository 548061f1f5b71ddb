package domain

// UserDetails representa el perfil de un agricultor registrado.
type UserDetails struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Language string `json:"language"`
	Location string `json:"location"`
	Crops    string `json:"crops"`
	LandSize string `json:"land_size"`
}
