package topics

// Renderer formats topic content for display.
type Renderer interface {
	// Render returns the display form of markdown content.
	Render(content string) string
}

// PlainRenderer passes content through untouched.
type PlainRenderer struct{}

// Render returns the content as-is.
func (r *PlainRenderer) Render(content string) string {
	return content
}
