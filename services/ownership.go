package services

// Ownership bir kaydın istekte bulunan kullanıcıya göre sahiplik durumu.
type Ownership int

const (
	OwnershipNotFound Ownership = iota
	OwnershipNotOwner
	OwnershipOwner
)

// ResolveOwnership kayıt bulunduysa sahibini istekte bulunanla karşılaştırır.
// Kimliği olmayan istek hiçbir kaydın sahibi değildir.
func ResolveOwnership(found bool, ownerID, requesterID string) Ownership {
	switch {
	case !found:
		return OwnershipNotFound
	case requesterID == "" || ownerID != requesterID:
		return OwnershipNotOwner
	default:
		return OwnershipOwner
	}
}
