package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sim "github.com/inference-sim/intake-sim/sim"
)

var (
	// ErrEmptyInput is returned for a blank console line.
	ErrEmptyInput = errors.New("no input provided")
	// ErrMalformedRecord is returned when a line is not a patient record.
	ErrMalformedRecord = errors.New("malformed patient record")
)

const recordUsage = "ID Gender(M/F) ArrivalTime(HH:MM) Type(Urgent/Normal)"

// ParsePatientLine parses one console line of the form
// "ID Gender HH:MM Type" into a patient arriving at tick. The class and
// gender are matched case-insensitively; errors wrap ErrEmptyInput,
// ErrMalformedRecord, sim.ErrUnknownGender or sim.ErrUnknownPriorityClass.
func ParsePatientLine(line string, tick int64) (*sim.Patient, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyInput
	}
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: expected %s, got %d fields", ErrMalformedRecord, recordUsage, len(fields))
	}

	gender, err := sim.ParseGender(fields[1])
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse("15:04", fields[2]); err != nil {
		return nil, fmt.Errorf("%w: arrival time %q is not HH:MM", ErrMalformedRecord, fields[2])
	}
	class, err := sim.ParsePriorityClass(fields[3])
	if err != nil {
		return nil, err
	}

	p := sim.NewPatient(fields[0], class, tick)
	p.Gender = gender
	p.ArrivalClock = fields[2]
	return p, nil
}
