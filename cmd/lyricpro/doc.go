// Package main hosts the lyricpro CLI entrypoint and command graph.
//
// The Cobra command tree wraps the conversion pipeline and its helpers:
// converting lyrics files, previewing how a file parses, inspecting a
// template's style, listing section colors, browsing conversion history and
// running preflight checks. Configuration, logging and the history store are
// resolved once per invocation in commandContext.
//
// Failures map to process exit codes through failure.ExitCode so scripts can
// tell a malformed lyrics file from a template without styled text.
package main
