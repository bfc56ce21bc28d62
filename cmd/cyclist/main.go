// Command cyclist checks whether a cyclic proof's trace structure, given as
// a JSON graph on stdin or via --input, is sound: every infinite path
// through the graph admits an infinite descending trace.
//
// Exit codes: 0 sound, 1 unsound, 2 on parse failure, 3 on invariant
// violation (illegal flag combination, malformed graph reference).
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ngorogiannis/cyclist/cmd/cyclist/internal/app"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	os.Exit(app.Execute())
}
