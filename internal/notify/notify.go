// Package notify turns timer events into desktop notifications, sounds, the
// session command and the status file
package notify

import (
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/timer"
)

// Options selects which side effects a Notifier performs.
type Options struct {
	// SessionCmd runs after every completed focus session.
	SessionCmd string
	// IconPath is shown with desktop notifications. It may be empty.
	IconPath string
	// Desktop enables desktop notifications.
	Desktop bool
	// BellDesktop also sends a desktop notification for every bell.
	BellDesktop bool
	// Sound plays the bell and end-of-session sounds.
	Sound bool
}

// Notifier is a timer.Hooks implementation. Slow work runs on its own
// goroutines so the timer loop is never held up.
type Notifier struct {
	timer.NopHooks

	opts    Options
	player  *Player
	desktop func(title, msg, icon string) error
	run     func(cmd string) error
	play    func(s Sound) error

	status models.Status
	prev   models.Status

	wg sync.WaitGroup
}

// New returns a Notifier for opts. initial is the status the timer starts
// in.
func New(opts Options, initial models.Status) *Notifier {
	n := &Notifier{
		opts:    opts,
		status:  initial,
		player:  &Player{},
		desktop: beeep.Notify,
		run:     RunSessionCmd,
	}

	n.play = n.player.Play

	return n
}

func (n *Notifier) goNotify(title, msg string) {
	if !n.opts.Desktop {
		return
	}

	n.wg.Add(1)

	go func() {
		defer n.wg.Done()

		err := n.desktop(title, msg, n.opts.IconPath)
		if err != nil {
			slog.Error("unable to display notification", slog.Any("error", err))
		}
	}()
}

func (n *Notifier) playSound(s Sound) {
	if !n.opts.Sound {
		return
	}

	err := n.play(s)
	if err != nil {
		slog.Error("unable to play sound", slog.Any("error", err))
	}
}

func (n *Notifier) OnStatusChanged(s models.Status) {
	n.prev, n.status = n.status, s
}

func (n *Notifier) OnBellFired() {
	n.playSound(BellSound)

	if n.opts.BellDesktop {
		n.goNotify("Mindfulness bell", "Close your eyes and take a breath.")
	}
}

func (n *Notifier) OnSessionEnded() {
	n.playSound(EndSound)

	if n.prev != models.Running {
		n.goNotify("Break is over", "Ready for another focus session?")
		return
	}

	if n.status == models.Break {
		n.goNotify("Focus session complete", "Time for a long break.")
	} else {
		n.goNotify("Focus session complete", "Well done.")
	}

	if n.opts.SessionCmd == "" {
		return
	}

	n.wg.Add(1)

	go func() {
		defer n.wg.Done()

		err := n.run(n.opts.SessionCmd)
		if err != nil {
			slog.Error("session command failed", slog.Any("error", err))
		}
	}()
}

// Wait blocks until pending notifications and commands have finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

// Close waits for pending work and releases the speaker.
func (n *Notifier) Close() {
	n.Wait()
	n.player.Close()
}
