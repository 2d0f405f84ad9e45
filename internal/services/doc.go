// Package services runs the announcement pipeline.
//
// Announcer takes decoded metadata entries, keeps those whose type is
// selected, picks the first matching rule for each, resolves placeholders
// and hands the text to a Publisher. Entries are handled one at a time and
// the first failure ends the run.
package services
