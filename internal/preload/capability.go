// Package preload models the part of the exec-family interception contract
// that is expressible in Go: the capability table describing each exec
// variant's argv/environment shape, executable resolution, event
// construction, and the shell-command-string splitting rule. The C-level
// redefinitions of the exec family and the LD_PRELOAD shared library
// itself are out of scope for this module; this package is what a
// wrapper-mode shim (internal/wrapper) or a future cgo preload shim would
// both funnel through.
package preload

// Call names one of the exec-family functions whose interception the
// capability table documents.
type Call string

const (
	CallExecl   Call = "execl"
	CallExeclp  Call = "execlp"
	CallExecle  Call = "execle"
	CallExecv   Call = "execv"
	CallExecve  Call = "execve"
	CallExecvp  Call = "execvp"
	CallExecvpe     Call = "execvpe"
	CallPosixSpawn  Call = "posix_spawn"
	CallPosixSpawnp Call = "posix_spawnp"
	CallSystem      Call = "system"
	CallPopen       Call = "popen"
)

// ArgvForm describes how a call's arguments are presented to the caller:
// a fixed C varargs list (null-terminated) or a pre-built argv array.
type ArgvForm string

const (
	ArgvFormVarargs ArgvForm = "varargs"
	ArgvFormArray    ArgvForm = "array"
	ArgvFormShell    ArgvForm = "shell-command"
)

// EnvSource describes where a call takes its child environment from.
type EnvSource string

const (
	EnvSourceInherited EnvSource = "inherited-environ"
	EnvSourceExplicit  EnvSource = "explicit-envp"
)

// Capability is one row of the exec-family interception table: what shape
// the arguments take, whether $PATH search applies, and where the
// environment comes from.
type Capability struct {
	Call       Call
	ArgvForm   ArgvForm
	PathSearch bool
	EnvSource  EnvSource
}

// Capabilities is the full table of intercepted exec-family calls. Order
// matches the enumeration in the reference implementation's intercept
// contract.
var Capabilities = []Capability{
	{CallExecl, ArgvFormVarargs, false, EnvSourceInherited},
	{CallExeclp, ArgvFormVarargs, true, EnvSourceInherited},
	{CallExecle, ArgvFormVarargs, false, EnvSourceExplicit},
	{CallExecv, ArgvFormArray, false, EnvSourceInherited},
	{CallExecve, ArgvFormArray, false, EnvSourceExplicit},
	{CallExecvp, ArgvFormArray, true, EnvSourceInherited},
	{CallExecvpe, ArgvFormArray, true, EnvSourceExplicit},
	{CallPosixSpawn, ArgvFormArray, false, EnvSourceExplicit},
	{CallPosixSpawnp, ArgvFormArray, true, EnvSourceExplicit},
	{CallSystem, ArgvFormShell, true, EnvSourceInherited},
	{CallPopen, ArgvFormShell, true, EnvSourceInherited},
}

// Lookup returns the capability row for call, if known.
func Lookup(call Call) (Capability, bool) {
	for _, c := range Capabilities {
		if c.Call == call {
			return c, true
		}
	}
	return Capability{}, false
}

// ShellArgv returns the argv a shell-form call (system/popen) observes: the
// shell itself is the executable, and the caller's command string becomes
// the shell's third argument.
func ShellArgv(command string) []string {
	return []string{"/bin/sh", "-c", command}
}
