package entity

// PurgeTargetType identifies what kind of purgeable item this is.
type PurgeTargetType int

const (
	// PurgeTargetProfile is the browser profile: cookies, cache and site storage.
	PurgeTargetProfile PurgeTargetType = iota
	PurgeTargetLogs
)

// String returns the name used on the command line.
func (t PurgeTargetType) String() string {
	switch t {
	case PurgeTargetProfile:
		return "profile"
	case PurgeTargetLogs:
		return "logs"
	}
	return "unknown"
}

// PurgeTarget represents a directory that can be removed from disk.
type PurgeTarget struct {
	Type   PurgeTargetType
	Path   string
	Size   int64
	Exists bool
}
