// Package launch spawns the selected program as a detached child process.
package launch

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/Gingeh/uff/internal/logging/events"
)

// Spawner starts programs without waiting for them to finish.
type Spawner struct{}

// Spawn launches argv fire-and-forget. The child inherits the standard
// streams and is released immediately: the picker session is over from the
// user's perspective, so the launched program owns its own lifetime.
func (Spawner) Spawn(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("spawn: empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		events.Launch.Failed(argv, err)
		return fmt.Errorf("spawn %q: %w", argv[0], err)
	}
	events.Launch.Spawn(argv)
	return cmd.Process.Release()
}
