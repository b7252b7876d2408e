package domain

// Collection is the name under which an entity collection is persisted
type Collection string

// Persisted collections
const (
	CollectionProfessionals Collection = "professionals"
	CollectionSlots         Collection = "slots"
	CollectionAppointments  Collection = "appointments"
)

// Collections lists every persisted collection in a stable order
var Collections = []Collection{
	CollectionProfessionals,
	CollectionSlots,
	CollectionAppointments,
}

// String returns the persisted key of the collection
func (c Collection) String() string {
	return string(c)
}

