package entitystore

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
)

// Snapshot согласованный снимок трех коллекций внутри Mutate или View
// Мутаторы помечают коллекцию изменённой только при фактическом изменении
type Snapshot struct {
	professionals []domain.Professional
	slots         []domain.Slot
	appointments  []domain.Appointment
	dirty         map[domain.Collection]bool
}

func newSnapshot(professionals []domain.Professional, slots []domain.Slot, appointments []domain.Appointment) *Snapshot {
	return &Snapshot{
		professionals: professionals,
		slots:         slots,
		appointments:  appointments,
		dirty:         make(map[domain.Collection]bool, len(domain.Collections)),
	}
}

// Professionals возвращает копию коллекции в порядке вставки
func (s *Snapshot) Professionals() []domain.Professional {
	return append([]domain.Professional{}, s.professionals...)
}

// Slots возвращает копию коллекции в порядке вставки
func (s *Snapshot) Slots() []domain.Slot {
	return append([]domain.Slot{}, s.slots...)
}

// Appointments возвращает копию коллекции в порядке вставки
func (s *Snapshot) Appointments() []domain.Appointment {
	return append([]domain.Appointment{}, s.appointments...)
}

func (s *Snapshot) AddProfessional(p domain.Professional) {
	s.professionals = append(s.professionals, p)
	s.dirty[domain.CollectionProfessionals] = true
}

func (s *Snapshot) AddSlot(slot domain.Slot) {
	s.slots = append(s.slots, slot)
	s.dirty[domain.CollectionSlots] = true
}

func (s *Snapshot) AddAppointment(a domain.Appointment) {
	s.appointments = append(s.appointments, a)
	s.dirty[domain.CollectionAppointments] = true
}

// RemoveSlot удаляет все слоты с данным id, false если таких не было
func (s *Snapshot) RemoveSlot(id string) bool {
	kept := s.slots[:0:0]
	for _, slot := range s.slots {
		if slot.ID != id {
			kept = append(kept, slot)
		}
	}
	if len(kept) == len(s.slots) {
		return false
	}
	s.slots = kept
	s.dirty[domain.CollectionSlots] = true
	return true
}

// RemoveAppointment удаляет записи с данным id и возвращает первую удалённую
func (s *Snapshot) RemoveAppointment(id string) (domain.Appointment, bool) {
	var (
		removed domain.Appointment
		found   bool
	)
	kept := s.appointments[:0:0]
	for _, a := range s.appointments {
		if a.ID == id {
			if !found {
				removed, found = a, true
			}
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return domain.Appointment{}, false
	}
	s.appointments = kept
	s.dirty[domain.CollectionAppointments] = true
	return removed, true
}

func (s *Snapshot) FindProfessional(id string) (domain.Professional, bool) {
	for _, p := range s.professionals {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Professional{}, false
}

func (s *Snapshot) FindSlot(id string) (domain.Slot, bool) {
	for _, slot := range s.slots {
		if slot.ID == id {
			return slot, true
		}
	}
	return domain.Slot{}, false
}

func (s *Snapshot) FindAppointment(id string) (domain.Appointment, bool) {
	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Appointment{}, false
}

// dirtyEntries сериализует изменённые коллекции в порядке domain.Collections
func (s *Snapshot) dirtyEntries() ([]kv.Entry, error) {
	var entries []kv.Entry
	for _, c := range domain.Collections {
		if !s.dirty[c] {
			continue
		}

		var (
			payload []byte
			err     error
		)
		switch c {
		case domain.CollectionProfessionals:
			payload, err = encode(s.professionals)
		case domain.CollectionSlots:
			payload, err = encode(s.slots)
		case domain.CollectionAppointments:
			payload, err = encode(s.appointments)
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, kv.Entry{Key: c.String(), Payload: payload})
	}
	return entries, nil
}
