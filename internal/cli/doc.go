// Package cli handles command-line argument parsing and translates flags
// and positional tokens into an app.Config.
package cli
