package display

// Lines of the diagnostic stream. Tags name styles of pkg/style and are
// removed in plain text output.
const (
	MsgColumnsHeader = "[Header]📋 Available columns:[/Header]"
	MsgColumnItem    = "[Column]• %s[/Column]"
	MsgNoColumns     = "[Muted](no columns)[/Muted]"
	MsgPreviewOnly   = "[Info]Preview only: no files were exported.[/Info]"
	MsgDirCreated    = "[Info]📁 Created output folder:[/Info] [FilePath]%s[/FilePath]"
	MsgSkipped       = "[Warning]⚠️  %s[/Warning]"
	MsgExported      = "[Success]✔ Exported:[/Success] [FilePath]%s[/FilePath]"
	MsgComplete      = "[Success]✅ Export complete:[/Success] [Count]%d[/Count] files created, [Count]%d[/Count] rows skipped."
	MsgOutputDir     = "[Muted]Output folder: %s[/Muted]"
	MsgAborted       = "[Error]✗ Export aborted:[/Error] %s"
	MsgPartial       = "[Muted]%d files were written before the failure.[/Muted]"
	MsgError         = "[Error]Error:[/Error] %s"

	MsgPlaceholdersHeader = "[Header]🔎 Placeholders in template:[/Header]"
	MsgPlaceholderMatched = "[Success]✔[/Success] [Code]{{%s}}[/Code] ← %s"
	MsgPlaceholderMissing = "[Warning]✗[/Warning] [Code]{{%s}}[/Code] [Muted]no matching column, left as is[/Muted]"
	MsgNoPlaceholders     = "[Muted]No {{column}} placeholders found.[/Muted]"
	MsgUnusedColumns      = "[Muted]Columns not used by the template: %s[/Muted]"
)
