package command

// RunResult is the immutable outcome of a single Runner.Run call.
type RunResult struct {
	// Succeed reports whether the command resolved, validated, and ran
	// without error.
	Succeed bool
	// ErrorLog carries failure text: remediation for resolution and
	// validation failures, or whatever the command wrote to its error
	// sink when the failure happened during execution.
	ErrorLog string
	// InfoLog carries the command's captured output. On validation
	// failure it holds the rendered help block; on execution failure it
	// additionally carries the failure diagnostic.
	InfoLog string
}

// Ok builds a successful result. Only the info log is carried.
func Ok(infoLog string) RunResult {
	return RunResult{Succeed: true, InfoLog: infoLog}
}

// Fail builds a failed result with failure text and optional info output.
func Fail(errorLog, infoLog string) RunResult {
	return RunResult{Succeed: false, ErrorLog: errorLog, InfoLog: infoLog}
}
