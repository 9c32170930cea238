package log

// ANSI directives used to colorize terminal output.
const (
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiPurple = "\033[35m"
	ansiCyan   = "\033[36m"
	ansiWhite  = "\033[37m"
	ansiReset  = "\033[0m"
)

// ConsoleColorsType has a set of methods that return the color directive to change console color
type ConsoleColorsType struct{}

// Red returns red directive
func (ConsoleColorsType) Red() string {
	return ansiRed
}

// Green returns green directive
func (ConsoleColorsType) Green() string {
	return ansiGreen
}

// Yellow returns yellow directive
func (ConsoleColorsType) Yellow() string {
	return ansiYellow
}

// Blue returns blue directive
func (ConsoleColorsType) Blue() string {
	return ansiBlue
}

// Purple returns purple directive
func (ConsoleColorsType) Purple() string {
	return ansiPurple
}

// Cyan returns cyan directive
func (ConsoleColorsType) Cyan() string {
	return ansiCyan
}

// White returns white directive
func (ConsoleColorsType) White() string {
	return ansiWhite
}

// Reset returns original color directive
func (ConsoleColorsType) Reset() string {
	return ansiReset
}

var (
	// ConsoleColors is a ConsoleColorsType singleton, which has a set of methods that return the color directive to change console color
	ConsoleColors = ConsoleColorsType{}
)
