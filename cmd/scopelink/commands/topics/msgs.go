package topics

// Message constants
const (
	MsgShort = "List help topics or show one"
	MsgLong  = "Display the long-form documentation topics that go beyond command help, or render a single topic by name."
)
