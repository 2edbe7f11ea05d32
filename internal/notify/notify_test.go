package notify

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusflow/internal/models"
)

type calls struct {
	mu      sync.Mutex
	desktop []string
	cmds    []string
	sounds  int
}

func (c *calls) notify(title, _, _ string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.desktop = append(c.desktop, title)

	return nil
}

func (c *calls) run(cmd string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cmds = append(c.cmds, cmd)

	return errors.New("exit status 1")
}

func (c *calls) play(Sound) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sounds++

	return nil
}

func newTestNotifier(opts Options, initial models.Status) (*Notifier, *calls) {
	c := &calls{}

	n := New(opts, initial)
	n.desktop = c.notify
	n.run = c.run
	n.play = c.play

	return n, c
}

func TestNotifierFocusEnd(t *testing.T) {
	n, c := newTestNotifier(Options{
		Desktop:    true,
		Sound:      true,
		SessionCmd: "echo done",
	}, models.Running)

	n.OnStatusChanged(models.Break)
	n.OnSessionEnded()
	n.Wait()

	assert.Equal(t, []string{"Focus session complete"}, c.desktop)
	assert.Equal(t, []string{"echo done"}, c.cmds)
	assert.Equal(t, 1, c.sounds)
}

func TestNotifierBreakEnd(t *testing.T) {
	n, c := newTestNotifier(Options{
		Desktop:    true,
		SessionCmd: "echo done",
	}, models.Break)

	n.OnStatusChanged(models.Finished)
	n.OnSessionEnded()
	n.Wait()

	assert.Equal(t, []string{"Break is over"}, c.desktop)
	assert.Empty(t, c.cmds, "the command only follows focus sessions")
	assert.Zero(t, c.sounds)
}

func TestNotifierBell(t *testing.T) {
	testCases := []struct {
		name        string
		opts        Options
		wantDesktop int
		wantSounds  int
	}{
		{"all off", Options{}, 0, 0},
		{"sound only", Options{Sound: true, Desktop: true}, 0, 1},
		{"bell notifications", Options{Desktop: true, BellDesktop: true}, 1, 0},
		{"desktop disabled", Options{BellDesktop: true}, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, c := newTestNotifier(tc.opts, models.Running)

			n.OnBellFired()
			n.Wait()

			assert.Len(t, c.desktop, tc.wantDesktop)
			assert.Equal(t, tc.wantSounds, c.sounds)
		})
	}
}

func TestSoundsAreFinite(t *testing.T) {
	for name, s := range map[string]Sound{
		"bell": BellSound,
		"end":  EndSound,
	} {
		t.Run(name, func(t *testing.T) {
			st := s.Streamer(sampleRate)
			buf := make([][2]float64, 4096)

			total := 0
			peak := 0.0

			for {
				n, ok := st.Stream(buf)
				if !ok {
					break
				}

				for _, v := range buf[:n] {
					peak = max(peak, v[0], -v[0])
				}

				total += n
			}

			assert.Equal(t, sampleRate.N(s.length), total)
			assert.Greater(t, peak, 0.05)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestRunSessionCmd(t *testing.T) {
	assert.NoError(t, RunSessionCmd(""))
	assert.ErrorContains(t, RunSessionCmd(`echo "unterminated`), "unable to parse")
}

func TestStatusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	written := time.Date(2024, time.January, 3, 9, 0, 0, 0, time.UTC)

	w := NewStatusWriter(path, "Work", models.Snapshot{
		Status:                  models.Idle,
		SessionSecondsRemaining: 1500,
	})
	w.now = func() time.Time {
		return written
	}

	w.OnStatusChanged(models.Running)
	w.OnTick(1500, 200)

	s, err := ReadStatus(path)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, models.Running, s.Status)
	assert.Equal(t, "Work", s.Tag)
	assert.Equal(t, 1440, s.Remaining(written.Add(time.Minute)))
	assert.Equal(t, 0, s.Remaining(written.Add(time.Hour)))

	assert.Equal(
		t,
		"[Focusing]: 24:00 (bell in 02:20) >>> Work",
		pterm.RemoveColorFromString(FormatStatus(s, written.Add(time.Minute))),
	)

	w.OnStatusChanged(models.Paused)

	s, err = ReadStatus(path)
	require.NoError(t, err)
	assert.Equal(t, 1500, s.Remaining(written.Add(time.Hour)))

	require.NoError(t, w.Remove())
	require.NoError(t, w.Remove())

	s, err = ReadStatus(path)
	require.NoError(t, err)
	assert.Nil(t, s)
}
