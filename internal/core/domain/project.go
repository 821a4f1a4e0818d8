package domain

// Project is a validated companion project.
type Project struct {
	// Path is the absolute project directory.
	Path string
	// Module is the module path declared in go.mod.
	Module string
	// GoVersion is the go directive of go.mod.
	GoVersion string
}

// PackageInfo is the subset of `go list -json` output the orchestrator uses.
type PackageInfo struct {
	Name       string
	ImportPath string
	Dir        string
	GoFiles    []string
	// Error is the package load error reported by the toolchain, if any.
	Error string
	// Output is the raw inspection output.
	Output ProcessOutput
}

// IsCommand reports whether the package builds an executable.
func (p PackageInfo) IsCommand() bool {
	return p.Name == "main"
}
