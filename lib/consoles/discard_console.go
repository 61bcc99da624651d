package consoles

type discardConsole struct{}

// NewDiscardConsole returns a console that prints nothing.
func NewDiscardConsole() Console {
	return discardConsole{}
}

func (discardConsole) Printf(string, ...any) {}

func (discardConsole) PushPrefix(string, ...any) {}

func (discardConsole) PopPrefix() {}
