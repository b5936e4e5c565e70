package booking

import (
	"sync"
	"sync/atomic"
)

type slot struct {
	ShowtimeID int
	SeatID     int
}

// SeatStatus is a point-in-time view of one seat in a SeatMap.
type SeatStatus struct {
	SeatID int
	Held   bool
}

// SeatMap tracks which seats are currently held, per showtime, entirely in
// memory. It is the live source of truth during booking: the database only
// records the tickets behind the holds.
//
// Each registered seat carries its own atomic flag, so attempts on different
// seats never contend with each other, and attempts on the same seat resolve
// by compare-and-swap: exactly one concurrent caller wins.
type SeatMap struct {
	seats sync.Map // slot -> *atomic.Bool
}

func NewSeatMap() *SeatMap {
	return &SeatMap{}
}

// Register adds a seat in the free state. Registering a seat that is already
// present is a no-op, so a held seat is never reset by a repeat registration.
func (m *SeatMap) Register(showtimeID, seatID int) {
	m.seats.LoadOrStore(slot{showtimeID, seatID}, &atomic.Bool{})
}

// Reserve marks the seat as held. It returns true only if the seat is
// registered and was free at the moment of the attempt; under concurrent
// calls for the same seat exactly one caller sees true.
func (m *SeatMap) Reserve(showtimeID, seatID int) bool {
	v, ok := m.seats.Load(slot{showtimeID, seatID})
	if !ok {
		return false
	}
	return v.(*atomic.Bool).CompareAndSwap(false, true)
}

// Release marks the seat as free again. It returns true only if the seat is
// registered and was held.
func (m *SeatMap) Release(showtimeID, seatID int) bool {
	v, ok := m.seats.Load(slot{showtimeID, seatID})
	if !ok {
		return false
	}
	return v.(*atomic.Bool).CompareAndSwap(true, false)
}

// Snapshot returns the registered seats of a showtime with their current held
// flags. Each entry reflects a real state of that seat, but the snapshot as a
// whole is not one atomic instant; it is meant for display.
func (m *SeatMap) Snapshot(showtimeID int) []SeatStatus {
	var statuses []SeatStatus

	m.seats.Range(func(k, v any) bool {
		s := k.(slot)
		if s.ShowtimeID == showtimeID {
			statuses = append(statuses, SeatStatus{
				SeatID: s.SeatID,
				Held:   v.(*atomic.Bool).Load(),
			})
		}
		return true
	})

	return statuses
}

// HeldCount reports how many seats of a showtime are currently held.
func (m *SeatMap) HeldCount(showtimeID int) int {
	count := 0

	m.seats.Range(func(k, v any) bool {
		if k.(slot).ShowtimeID == showtimeID && v.(*atomic.Bool).Load() {
			count++
		}
		return true
	})

	return count
}
