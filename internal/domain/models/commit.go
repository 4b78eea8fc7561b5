package models

// Commit representa un commit incluido en una PR. Author y Committer
// pueden ser nil cuando el proveedor no puede atribuir la identidad
// (cuentas sin vincular).
type Commit struct {
	SHA       string
	Message   string
	Author    *User
	Committer *User
}

// AttributedTo indica si el commit está atribuido al login dado, ya sea
// como autor o como committer. Un commit sin ninguna de las dos
// identidades nunca califica.
func (c Commit) AttributedTo(login string) bool {
	if c.Author != nil && c.Author.Login == login {
		return true
	}
	if c.Committer != nil && c.Committer.Login == login {
		return true
	}
	return false
}
