// Package pipeline orchestrates file discovery, per-file processing, and
// batch summary reporting.
//
// Types:
//   - RunStats (Total, Current, Transcoded, Skipped, Failed, byte totals;
//     SpaceSaved method)
//
// Functions:
//   - Run(ctx, cfg, log) → RunStats
//     Batch runner: discover once, then per file resolve output path →
//     invoke encoder → replicate timestamps, with per-file failure
//     isolation. Zero matches end the run immediately with a notice.
//   - Discover(dir, matcher) → []string
//     List direct children only, keep regular files whose name matches a
//     source extension.
package pipeline
