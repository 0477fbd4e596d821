package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Generate one document per table row from a template"
	MsgExportShort     = "Write one document per row of a table"
	MsgPreviewShort    = "List the columns of a table without exporting"
	MsgPreviewLong     = "Preview reads the header row of the table and lists its columns. Nothing is written."
	MsgInspectShort    = "Check which template placeholders match table columns"
	MsgInspectLong     = "Inspect lists the {{column}} placeholders of a template and the table column that would fill each of them. Nothing is written."
	MsgConfigShort     = "Manage the configuration file"
	MsgConfigInitShort = "Write a commented configuration file"
	MsgConfigShowShort = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgTopicsShort     = "Display available documentation topics"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat     = "Output format: auto, terminal, text or json"
	MsgFlagNoColor    = "Disable colored output"
	MsgFlagConfig     = "Use this user configuration file"
	MsgFlagCSV        = "Table to read (.csv, or .xlsx workbook)"
	MsgFlagColumn     = "Column whose values name the output files"
	MsgFlagOut        = "Folder for the generated files (default: a new scratch folder)"
	MsgFlagSubstitute = "Replace {{column}} placeholders with row values"
	MsgFlagPreview    = "Only list the columns, export nothing"
	MsgFlagStrict     = "Match --column exactly and require --out to exist"
	MsgFlagDelimiter  = "Field separator of text tables"
	MsgFlagSheet      = "Worksheet of an .xlsx table (default: first sheet)"
	MsgFlagExtension  = "Extension of generated files"
	MsgFlagIndent     = "Re-indent generated documents with this many spaces"
	MsgFlagForce      = "Overwrite an existing configuration file"
	MsgFlagConfigPath = "Where to write the file (default: user configuration file)"

	// Status messages
	MsgConfigWritten = "✔ Wrote configuration to %s\n"
	MsgVersionFormat = "csvexport version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "✔ Man pages written to %s\n"

	// Error messages
	MsgErrNoTemplate  = "a template file is required unless --preview is set"
	MsgErrNoCSV       = "--csv is required"
	MsgErrNoColumn    = "--column is required"
	MsgErrConfigExist = "configuration file %s already exists (use --force to overwrite)"
)

// Longer messages from embedded files
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/export-example.txt
	msgExportExampleRaw string
	MsgExportExample    = strings.TrimRight(msgExportExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
