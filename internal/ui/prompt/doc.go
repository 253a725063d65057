// Package prompt provides simple interactive prompts.
//
// The prompts draw on stderr so stdout stays free for command output.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
//   - [TextInput]: Single-line text input
//   - [Select]: Single selection from a filterable list
package prompt
