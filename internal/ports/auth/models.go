package auth

// Claims representa al llamador autenticado.
type Claims struct {
	Subject string
	Admin   bool
}
