// Package tui provides small helpers for building line-oriented
// interactive console prompts: displaying values, reading single
// lines, validated prompts with retry, sentinel-terminated multi-line
// input, and numbered/prefix-matched choice menus.
//
// All helpers are thin, stateless wrappers over a Console, which pairs
// an input stream with an output stream. The package-level functions
// operate on a Console bound to the process's standard streams.
//
// Reads are synchronous and blocking. When the input stream ends or is
// closed out from under a pending read, the helpers report the single
// sentinel error ErrAborted rather than an empty result or a raw
// stream error; MultilinePrompt is the one exception, returning the
// text accumulated so far. NotifyInterrupts extends the same treatment
// to interrupt signals by closing the console's input file, so an
// interrupt and end-of-input are indistinguishable to callers.
//
// Consoles perform no internal locking and assume a single reader.
package tui
