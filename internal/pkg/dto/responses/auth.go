package responses

type AdminProfile struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Login struct {
	Token string        `json:"token"`
	Admin *AdminProfile `json:"admin"`
}
