// Defines the Patient struct that models one entity waiting in the intake queues.
// Only ID, Class and ArrivalTick are read by the scheduler; the rest is display metadata.

package sim

import (
	"errors"
	"fmt"
	"strings"
)

// PriorityClass determines which queue a patient joins and the order of service.
type PriorityClass string

const (
	ClassUrgent PriorityClass = "Urgent"
	ClassNormal PriorityClass = "Normal"
)

// ErrUnknownPriorityClass is returned by ParsePriorityClass for anything
// other than "urgent" or "normal" (case-insensitive).
var ErrUnknownPriorityClass = errors.New("invalid patient type, must be 'Urgent' or 'Normal'")

// ErrUnknownGender is returned by ParseGender for anything other than M or F.
var ErrUnknownGender = errors.New("invalid gender, must be 'M' or 'F'")

// ParsePriorityClass resolves a free-form class label.
// Callers must resolve the class before handing a patient to the Scheduler.
func ParsePriorityClass(s string) (PriorityClass, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "URGENT":
		return ClassUrgent, nil
	case "NORMAL":
		return ClassNormal, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrUnknownPriorityClass, s)
	}
}

// Gender is display metadata carried alongside a patient.
type Gender byte

const (
	GenderMale   Gender = 'M'
	GenderFemale Gender = 'F'
)

func (g Gender) String() string {
	if g == 0 {
		return "-"
	}
	return string(rune(g))
}

// ParseGender accepts a single M or F (either case).
func ParseGender(s string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return GenderMale, nil
	case "F":
		return GenderFemale, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrUnknownGender, s)
	}
}

// Patient is immutable once admitted.
type Patient struct {
	ID          string        // Opaque identity; uniqueness is the caller's concern
	Class       PriorityClass // Urgent or Normal, fixed at creation
	ArrivalTick int64         // Tick at which the patient was admitted

	Gender       Gender // Display only
	ArrivalClock string // Display only, HH:MM as reported by the patient
}

// NewPatient creates a Patient with the fields the scheduler reads.
func NewPatient(id string, class PriorityClass, arrivalTick int64) *Patient {
	return &Patient{
		ID:          id,
		Class:       class,
		ArrivalTick: arrivalTick,
	}
}

func (p Patient) String() string {
	return fmt.Sprintf("Patient: (ID: %s, Class: %s, ArrivalTick: %d)", p.ID, p.Class, p.ArrivalTick)
}
