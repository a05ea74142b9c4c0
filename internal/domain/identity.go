package domain

// Identity is the authenticated caller of an operation
type Identity struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the caller is a platform admin
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsOrganizer reports whether the caller is an organizer
func (i Identity) IsOrganizer() bool {
	return i.Role == RoleOrganizer
}

// IsVisitor reports whether the caller is a visitor
func (i Identity) IsVisitor() bool {
	return i.Role == RoleVisitor
}
