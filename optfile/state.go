package optfile

// State is the position of the reader inside a record block.
type State int

const (
	StateInit       State = iota // block boundary, expecting a header line
	StateLanguage                // inside a Language block
	StateEnum                    // Enum header seen, expecting its property line
	StateEnumValue               // inside an EnumValue block
	StateOption                  // option name seen, expecting its property line
	StateOptionHelp              // accumulating help text
	StateIgnore                  // discarding the rest of the block
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateLanguage:
		return "language"
	case StateEnum:
		return "enum"
	case StateEnumValue:
		return "enum-value"
	case StateOption:
		return "option"
	case StateOptionHelp:
		return "option-help"
	case StateIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

// Block header lines recognized at a block boundary.
const (
	headerLanguage  = "Language"
	headerEnum      = "Enum"
	headerEnumValue = "EnumValue"
)

// ignoredHeaders start blocks whose content is not modeled.
var ignoredHeaders = map[string]bool{
	"TargetSave":     true,
	"Variable":       true,
	"TargetVariable": true,
	"HeaderInclude":  true,
	"SourceInclude":  true,
}
