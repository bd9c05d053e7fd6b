// Package args turns the bootstrapper's raw command-line tokens into an
// immutable Settings value.
//
// # Token grammar
//
//   - begin | end: phase verb; exact, case-sensitive, whole-token match
//   - /d:key=value: analysis property, repeatable
//   - /s:path: analysis settings file, at most once
//   - /key:, /name:, /version: project identity
//   - anything else: passed through to the child process
//
// # Precedence
//
// Properties from the settings file (or the default properties file) are the
// lowest layer; /d: properties are appended after them and win on lookup.
//
// Every token is classified once before validation runs, and validation keeps
// going after the first problem so that all malformed arguments are reported
// together.
package args
