// Package main hosts the corpusstat CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once per invocation,
// applies flag overrides, and hands the work to the internal packages:
// corpus analysis, report rendering, the run history store, and the
// morphology dictionary. Commands stay thin; new behaviour belongs in an
// internal package first.
package main
