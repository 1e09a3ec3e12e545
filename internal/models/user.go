package models

// Rôles du personnel. Un seul type User avec un rôle en donnée :
// les rôles ne portent aucun comportement propre, inutile d'en faire des types.
const (
	RoleAdmin  = "admin"
	RoleWaiter = "waiter"
	RoleChef   = "chef"
)

type User struct {
	Username string `json:"username"`
	Password string `json:"password"` // hash Argon2id, jamais le mot de passe en clair
	Role     string `json:"role"`
}

// HasRole vérifie le rôle de l'utilisateur
func (u User) HasRole(role string) bool {
	return u.Role == role
}

// ValidRole indique si un rôle fait partie des rôles connus
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleWaiter || role == RoleChef
}
