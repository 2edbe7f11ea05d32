package notify

import (
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// RunSessionCmd executes sessionCmd without a shell. An empty command does
// nothing.
func RunSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errParseSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	err = exec.Command(name, args...).Run()
	if err != nil {
		return errSessionCmd.Fmt(sessionCmd).Wrap(err)
	}

	return nil
}
