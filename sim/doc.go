// Package sim provides the clinic intake scheduling core and its tick driver.
//
// # Reading Guide
//
// Start with these files to understand the scheduling kernel:
//   - patient.go: Patient record and the Urgent/Normal priority classes
//   - queue.go: the FIFO WaitQueue, one per class
//   - scheduler.go: Admit, Advance, Inspect, Summary and IsDrained
//   - metrics.go: running totals derived on each admission, service and expiry
//
// # Policy
//
// Each Advance serves at most capacity patients, draining the Urgent queue
// before the Normal queue. A patient whose wait exceeds the expiry threshold
// when it reaches the head of its queue is dropped without being served and
// without using capacity. Within a class, service is strictly FIFO.
//
// # Driver
//
// Simulator owns the clock and calls the Scheduler once per tick with a
// capacity drawn from a CapacityPolicy. Arrivals come from an ArrivalSource;
// the random generator lives in sim/workload. Decision traces are recorded
// by sim/trace when enabled.
package sim
