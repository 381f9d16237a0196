package shared

const (
	// OctetBits is the number of bits in an octet. Always 8.
	OctetBits = 8

	// WordSize is the alignment unit, in octets, for the word separator check.
	WordSize = 2

	// WordBits is WordSize in bits.
	WordBits = WordSize * OctetBits
)

const (
	// StdStream is the path argument standing for stdin or stdout.
	StdStream = "-"

	// StdinName is the input name used in diagnostics when reading stdin.
	StdinName = "<stdin>"

	// ObjectSuffix is the suffix of derived output files.
	ObjectSuffix = ".obj"
)

// ObjectFilePerm is the permission of created object files: owner read / write, others read.
const ObjectFilePerm = 0644

// Exit codes. See ExitCode.
const (
	ExitOK    = 0
	ExitDeath = 1
	ExitCroak = 255
)
