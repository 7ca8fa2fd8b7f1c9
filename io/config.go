package io

const (
	ExampleSettingsFile = `[CheckCls]

#######################
# Optional Parameters #
#######################

# Plot backend. "pyplot" generates a matplotlib script and runs it with
# python, "native" renders PNGs directly and needs no python install.
# Backend = pyplot

# Show the figures interactively on top of saving them. Only the pyplot
# backend can do this.
# Show = false

# Fail instead of warning when a recovered spectrum has no matching input
# Cl file.
# Strict = false

# Directory holding the HEALPix pixel window tables
# (pixel_window_n<NSIDE>.dat). Only read when the Flask config sets
# APPLY_PIXWIN. Defaults to the directory of the Flask config.
# PixWinDir = path/to/pixwin/tables

# Half-height of the fractional error panel, in percent.
# FracErrLim = 15`
)

// CheckClsConfig holds the tool's own settings, read from an INI-style file
// separate from the Flask config. Every field has a usable default, so the
// settings file is optional.
type CheckClsConfig struct {
	Backend    string
	Show       bool
	Strict     bool
	PixWinDir  string
	FracErrLim float64
}

type CheckClsWrapper struct {
	CheckCls CheckClsConfig
}

func DefaultCheckClsWrapper() *CheckClsWrapper {
	con := CheckClsConfig{Backend: "pyplot", FracErrLim: 15}
	return &CheckClsWrapper{con}
}

func (con *CheckClsConfig) ValidBackend() bool {
	return con.Backend == "pyplot" || con.Backend == "native"
}

func (con *CheckClsConfig) ValidFracErrLim() bool {
	return con.FracErrLim > 0
}

func (con *CheckClsConfig) ValidPixWinDir() bool {
	return con.PixWinDir != ""
}
