// Package engine runs the worklog pipeline.
//
// One run reads the inbox and the task store, reconciles the inbox intents
// into the store, appends the day's notes and change records to the day log,
// saves the store, regenerates the todo view and the digest, and finally
// rewrites the inbox with a fresh TODO LIST and an empty block for today:
//
//	res, err := engine.Run(ctx, engine.Options{Config: cfg, Now: time.Now()})
//
// Reading happens before any write, so an unreadable inbox or store leaves
// every file untouched. Writes are ordered log, store, views, inbox; a crash
// in between leaves the inbox unprocessed and the next run repeats it.
package engine
