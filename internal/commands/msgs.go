package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Compose shell environments for installed software"
	MsgVersionShort   = "Print version information"
	MsgVersionLong    = "Print detailed version information including commit hash and build date"
	MsgShShort        = "Emit sh code loading domains, packages and directories"
	MsgCshShort       = "Emit csh code loading domains, packages and directories"
	MsgPlatformsShort = "Print the platform chain of this host"
	MsgCleanPathShort = "Remove duplicate entries from a colon-separated path list"
	MsgRulesShort     = "Print the effective variable rule table"
	MsgWrappersShort  = "Print or install the ssmuse-sh and ssmuse-csh entry scripts"

	// Version output
	MsgVersionFormat = "ssmuse version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Status messages
	MsgInstalledFormat = "installed %s\n"
	MsgTerminalHint    = "hint: this output is shell code; source it with ssmuse-sh/ssmuse-csh or eval it"
	MsgNoLogging       = "no logging"

	// Error messages
	MsgErrMissingShell = "missing shell type"
	MsgErrBadShell     = "bad shell type (%s)"
	MsgErrConfig       = "failed to load configuration"
	MsgErrRulesFormat  = "unknown rules format (%s)"
	MsgErrMarshalRules = "failed to encode rules"
	MsgErrWrapperArgs  = "give a dialect to print or --install DIR"
	MsgFatalPrefix     = "fatal: "
	MsgAbort           = "abort: unrecoverable error"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagBase          = "Resolve the chain from this base platform instead of the host's"
	MsgFlagRecords       = "Directory holding the platform compatibility records"
	MsgFlagFormat        = "Output format (toml, yaml)"
	MsgFlagPlatformsFile = "File listing the host platform chain"
	MsgFlagInstall       = "Install both entry scripts into this directory"
	MsgFlagBinary        = "ssmuse binary the entry scripts call"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/emit-help.txt
	msgEmitHelpRaw string
	MsgEmitHelp    = strings.TrimSpace(msgEmitHelpRaw)

	//go:embed msgs/emit-example.txt
	msgEmitExampleRaw string
	MsgEmitExample    = strings.TrimRight(msgEmitExampleRaw, "\n")

	//go:embed msgs/wrappers-long.txt
	msgWrappersLongRaw string
	MsgWrappersLong    = strings.TrimSpace(msgWrappersLongRaw)
)
