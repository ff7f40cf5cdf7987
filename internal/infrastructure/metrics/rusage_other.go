//go:build !linux && !darwin

package metrics

import "github.com/bnema/tabshell/internal/application/port"

func fillRusage(*port.Metrics) error {
	return nil
}
