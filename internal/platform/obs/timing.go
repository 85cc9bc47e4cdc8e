package obs

import (
	"log"
	"time"
)

// Time returns a deferred hook that logs the operation's duration and, when
// the pointed-to error is non-nil at defer time, its failure.
//
//	func (a *App) optimize() (err error) {
//		defer obs.Time("optimize")(&err)
//		...
//	}
func Time(name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
