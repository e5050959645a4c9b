package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "A line-oriented command menu server"
	MsgServeShort    = "Serve the demo menu on stdio or TCP"
	MsgCommandsShort = "List the commands of the demo menu"
	MsgProtocolShort = "Describe the menu line protocol"
	MsgConfigShort   = "Print the effective configuration"
	MsgVersionShort  = "Print version information"
	MsgVersionLong   = "Print detailed version information including commit hash and build date"
	MsgManShort      = "Generate the man page"
	MsgCompleteShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "picomenu version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Status messages
	MsgListening   = "Listening on %s"
	MsgUsingConfig = "Using config file %s"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrBuildMenu    = "failed to build menu: %w"
	MsgErrUnknownShell = "unknown shell %q (supported: bash, zsh, fish, powershell)"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default is $XDG_CONFIG_HOME/picomenu/config.{toml,yaml})"
	MsgFlagListen      = "Serve over TCP on this address instead of stdio"
	MsgFlagPrompt      = "Prompt written before every line"
	MsgFlagMaxSessions = "Maximum concurrent TCP sessions"
	MsgFlagInputSize   = "Input buffer size in bytes"
	MsgFlagOutputSize  = "Output buffer size in bytes"
	MsgFlagFormat      = "Output format (auto, term, text, json)"
	MsgFlagDumpFormat  = "Output format (toml, yaml)"
	MsgFlagTemplate    = "Print a commented config file template instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/serve-long.txt
	msgServeLongRaw string
	MsgServeLong    = strings.TrimSpace(msgServeLongRaw)

	//go:embed msgs/serve-example.txt
	msgServeExampleRaw string
	MsgServeExample    = strings.TrimRight(msgServeExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)
)
