package util

import (
	"fmt"
	"sync"
	"time"

	"github.com/osdev-tools/bootimage/log"
	"github.com/tj/go-spin"
)

// ProgressSpinner is an indefinite progress indicator for operations of
// unknown duration, such as toolchain invocations.
type ProgressSpinner struct {
	spinner *spin.Spinner
	message string
	colors  log.ConsoleColorsType
	wg      sync.WaitGroup

	done     chan struct{}
	spinning bool
}

// Start starts the spinner with given messages as label.
func (ps *ProgressSpinner) Start(messages ...interface{}) {
	if ps.spinning {
		return
	}
	ps.message = fmt.Sprint(messages...)
	ps.spinner = spin.New()
	ps.done = make(chan struct{})
	ps.spinning = true
	ps.wg.Add(1)

	go func() {
		defer ps.wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ps.done:
				fmt.Printf("\r%s     \n", ps.message)
				return
			case <-ticker.C:
				fmt.Printf("\r%s%s %s%s", ps.colors.Yellow(), ps.spinner.Next(), ps.colors.Reset(), ps.message)
			}
		}
	}()
}

// Do executes given function with given messages as label.
func (ps *ProgressSpinner) Do(workFunc func() error, messages ...interface{}) error {
	ps.Start(messages...)
	if err := workFunc(); err != nil {
		ps.Fail()
		return err
	}
	ps.Done()
	return nil
}

// Done stops the spinner.
func (ps *ProgressSpinner) Done() {
	ps.stop()
}

// Fail stops the spinner after a failed operation.
func (ps *ProgressSpinner) Fail() {
	ps.stop()
}

func (ps *ProgressSpinner) stop() {
	if !ps.spinning {
		return
	}
	close(ps.done)
	ps.wg.Wait()
	ps.spinning = false
}
