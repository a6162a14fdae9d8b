// Command gridpath solves grid maze puzzles from text input.
//
// Usage:
//
//	gridpath maze   -i FILE [--turn-penalty N] [--step-cost N] [--method trace|filter] [--show]
//	gridpath race   -i FILE [--duration N] [--threshold N]
//	gridpath memory -i FILE [--size N] [--bytes N]
//	gridpath version
//
// Every subcommand reads stdin when -i is omitted. Settings may also come
// from --config (TOML or YAML), a .env file, or GRIDPATH_* variables such as
// GRIDPATH_MAZE__TURN_PENALTY; flags take precedence.
package main
