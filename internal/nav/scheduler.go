package nav

import (
	"sync"
	"time"
)

// Scheduler arms periodic callbacks.
//
// The returned stop func is idempotent. Once it returns, fn is not running and
// will not be called again. stop must not be called from inside fn.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func())
}

// TickerScheduler runs each callback on its own goroutine driven by a
// time.Ticker.
type TickerScheduler struct{}

// Every implements Scheduler. The returned stop blocks until the goroutine
// has exited.
func (TickerScheduler) Every(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// A tick and a stop can be ready together; stop wins.
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-exited
	}
}
