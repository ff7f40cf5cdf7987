// Package xdg resolves user directories for the application layer.
package xdg

import (
	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths.
type Adapter struct{}

// New returns an Adapter.
func New() *Adapter { return &Adapter{} }

// DownloadDir implements port.XDGPaths.
func (*Adapter) DownloadDir() (string, error) {
	return config.GetDownloadDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
