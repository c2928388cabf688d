package services

import "anket.link/models"

// FormAccess bir formun izleyiciye nasıl gösterileceği.
type FormAccess int

const (
	FormAccessOpen FormAccess = iota
	FormAccessClosed
	FormAccessHidden
)

// ResolveFormAccess kapalı formlar herkese kapalı görünür; herkese açık olmayan
// formlar sahibi dışındaki herkesten gizlenir.
func ResolveFormAccess(form *models.Form, viewerID string) FormAccess {
	if form.Closed {
		return FormAccessClosed
	}
	if !form.IsPublic && ResolveOwnership(true, form.UserID, viewerID) != OwnershipOwner {
		return FormAccessHidden
	}
	return FormAccessOpen
}
