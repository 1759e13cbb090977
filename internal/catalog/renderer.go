package catalog

// Renderer receives display signals from the Controller.
// Calls happen on the goroutine that triggered the refresh.
type Renderer interface {
	// Invalidate asks for the list to be redrawn from Items.
	Invalidate()
	// ScrollTo asks for the list to show position pos.
	ScrollTo(pos int)
}

// NopRenderer ignores every signal.
type NopRenderer struct{}

func (NopRenderer) Invalidate()  {}
func (NopRenderer) ScrollTo(int) {}
