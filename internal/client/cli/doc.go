// Package cli implements the interactive command-line surface of the
// recipe client: a REPL over the auth and recipe services, with route
// guarded navigation for account-bound commands.
package cli
