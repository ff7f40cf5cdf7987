package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" // browser/web
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c"
	IconX       = "\uf00d"
	IconWarning = "\uf071"

	IconTrash    = "\uf1f8"
	IconConfig   = "\ue615"
	IconDatabase = "\uf1c0"
	IconLogs     = "\uf0f6"

	IconSessionStack = "\uf24d" // clone/stack
	IconClock        = "\uf017"
	IconRestore      = "\uf0e2" // rotate-left
)
