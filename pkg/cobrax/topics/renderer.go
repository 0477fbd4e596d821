package topics

// Renderer formats topic content for the terminal. format is the file
// extension of the topic, such as ".md".
type Renderer interface {
	Render(content string, format string) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(content, format string) string

// Render calls f.
func (f RendererFunc) Render(content, format string) string { return f(content, format) }

// PlainRenderer returns content unchanged. It is the default.
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, _ string) string { return content }
