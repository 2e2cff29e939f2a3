package ui

// Color functions return ANSI escape codes from the current theme.

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorHeading returns the section heading color.
func ColorHeading() string { return GetCurrentTheme().Heading }

// ColorValue returns the color for computed numbers.
func ColorValue() string { return GetCurrentTheme().Value }

// ColorParam returns the color for input parameters.
func ColorParam() string { return GetCurrentTheme().Param }

// ColorSuccess returns the success color.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the warning color.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the error color.
func ColorError() string { return GetCurrentTheme().Error }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }
