// Package experiment reproduces the STD versus DBZ benchmark: a series of
// simulations with growing equation length, each evaluated by both machines on the
// same generated batch.
package experiment
