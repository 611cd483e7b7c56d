package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/intake-sim/sim"
)

// interactiveCmd drives the scheduler one tick at a time from the console
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Admit patients and advance ticks from the console",
	Long: `Reads one command per line:
  next                          advance one tick and print the queues
  status                        print the running statistics
  quit | exit                   end the session
  ` + recordUsage + `   admit a patient at the current tick`,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if err := runInteractive(cmd, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// session holds one console run. Bad input never reaches the scheduler.
type session struct {
	sim *sim.Simulator
	out io.Writer
}

// handle processes one input line and reports whether the session is over.
func (ss *session) handle(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "next":
		return ss.next()
	case "status":
		sim.PrintSummary(ss.out, ss.sim.Scheduler.Summary())
		return false
	case "quit", "exit":
		return true
	}

	p, err := ParsePatientLine(line, ss.sim.Clock)
	switch {
	case errors.Is(err, ErrEmptyInput):
		fmt.Fprintln(ss.out, "No input provided. Please try again.")
	case err != nil:
		fmt.Fprintf(ss.out, "Invalid input: %v\nPlease try again.\n", err)
	default:
		ss.sim.Admit(p)
		fmt.Fprintf(ss.out, "Admitted %s patient %s at tick %d\n", p.Class, p.ID, p.ArrivalTick)
	}
	return false
}

// next advances one tick, admits whatever the generator produces for the new
// clock, and ends the session once nothing is left to serve.
func (ss *session) next() bool {
	res := ss.sim.Step()
	ss.sim.AdmitArrivals()
	sim.PrintQueues(ss.out, ss.sim.Scheduler.Inspect())
	if len(res.Expired) > 0 {
		fmt.Fprintf(ss.out, "Expired This Tick: %s\n", strings.Join(res.Expired, " "))
	}
	if ss.sim.Finished() {
		fmt.Fprintln(ss.out, "\nNo patients remain in either queue. Ending simulation.")
		return true
	}
	return false
}

// runInteractive is the body of `intake-sim interactive`.
func runInteractive(cmd *cobra.Command, in io.Reader, out io.Writer) error {
	s, _, err := buildSimulator(cmd)
	if err != nil {
		return err
	}
	ss := &session{sim: s, out: out}

	fmt.Fprintln(out, "Clinic intake simulation. Type 'next' to advance, 'quit' to stop.")
	fmt.Fprintf(out, "Enter patients as: %s\n", recordUsage)
	if n := s.AdmitArrivals(); n > 0 {
		fmt.Fprintf(out, "Admitted %d generated patients at tick 0\n", n)
		sim.PrintQueues(out, s.Scheduler.Inspect())
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "\n--- Tick %d ---\n> ", s.Clock)
		if !scanner.Scan() {
			break
		}
		if ss.handle(scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading console input: %w", err)
	}

	sim.PrintSummary(out, s.Scheduler.Summary())
	return nil
}
