// Package calc turns a raw birth-date string into the display text for the
// calculator and keeps the persisted result in step with every attempt.
//
// Every branch, success or error, writes its message to the preference
// store before returning, so a later run restores exactly what the user
// last saw.
package calc
