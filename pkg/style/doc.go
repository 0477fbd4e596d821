// Package style defines the visual styling of csvexport's terminal output.
//
// Colors and styles are loaded from an embedded YAML file into a Registry
// of lipgloss styles with adaptive light/dark colors. Style names double as
// markup tags understood by Markup:
//
//	[Success]✔ Exported:[/Success] [FilePath]out/Ann.svg[/FilePath]
//
// Markup.Strip removes the same tags for plain text output.
package style
