// Package command implements the administrative `blocksgen` command.
//
// The only subcommand is `give <player> <generator>`, which hands a generator
// item of a known type to an online player. Every invocation is reported as
// handled; invalid input yields an error reply and no state change.
//
// Complete provides tab completion: the subcommand, then online player names,
// then generator types in sorted order, each filtered by the typed prefix.
package command
