package port

// XDGPaths resolves user directories outside tabshell's own tree.
type XDGPaths interface {
	// DownloadDir is $XDG_DOWNLOAD_DIR, else ~/Downloads.
	DownloadDir() (string, error)
}
