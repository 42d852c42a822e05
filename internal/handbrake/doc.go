// Package handbrake builds and executes HandBrakeCLI commands with a fixed
// encoding option set.
//
// Types:
//   - EncodeError (captured stdout/stderr of a failed invocation, with a
//     Diagnostic method producing labeled stream blocks for logging)
//
// Functions:
//   - BuildArgs(input, output) → []string
//     Fixed preset prefix plus -i/-o path arguments.
//   - Execute(ctx, cfg, input, output) → error
//     Run the encoder synchronously, capture both output streams, classify
//     success by exit status alone.
package handbrake
