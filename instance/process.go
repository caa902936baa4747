package instance

import (
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/theothertomelliott/gopsutil-nocgo/net"
	"github.com/theothertomelliott/gopsutil-nocgo/process"
)

const portStatusListen = "LISTEN"

// Status describes the process behind an instance
type Status struct {
	Instance
	Running    bool
	MemoryInfo *process.MemoryInfoStat
	Ports      []string // Ports the process is listening on
}

// IsRunning returns true if the instance's process exists and is still
// running the command that created it.
func (i Instance) IsRunning() (bool, error) {
	exists, err := process.PidExists(int32(i.Pid))
	if err != nil || !exists {
		return false, errors.WithStack(err)
	}
	if i.Command == "" {
		return true, nil
	}
	proc, err := process.NewProcess(int32(i.Pid))
	if err != nil {
		return false, errors.WithStack(err)
	}
	cmdline, err := proc.Cmdline()
	if err != nil {
		return false, errors.WithStack(err)
	}
	return strings.Contains(cmdline, i.Command), nil
}

// Status looks up the process behind an instance
func (i Instance) Status() (Status, error) {
	status := Status{Instance: i}
	running, err := i.IsRunning()
	if err != nil {
		return status, errors.WithStack(err)
	}
	if !running {
		return status, nil
	}
	status.Running = true

	proc, err := process.NewProcess(int32(i.Pid))
	if err != nil {
		return status, errors.WithStack(err)
	}
	status.MemoryInfo, err = proc.MemoryInfo()
	if err != nil {
		return status, errors.WithStack(err)
	}
	if created, err := proc.CreateTime(); err == nil && created > 0 {
		status.StartTime = time.Unix(0, created*int64(time.Millisecond))
	}

	connections, err := net.Connections("tcp")
	if err != nil {
		return status, errors.WithStack(err)
	}
	for _, connection := range connections {
		if connection.Status == portStatusListen && connection.Pid == int32(i.Pid) {
			status.Ports = append(status.Ports, strconv.Itoa(int(connection.Laddr.Port)))
		}
	}
	return status, nil
}

// Stop asks the instance's server to shut down by sending it an interrupt.
// ErrNotRunning is returned if the process no longer exists.
func (i Instance) Stop() error {
	running, err := i.IsRunning()
	if err != nil {
		return errors.WithStack(err)
	}
	if !running {
		return ErrNotRunning
	}
	proc, err := process.NewProcess(int32(i.Pid))
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(proc.SendSignal(syscall.SIGINT))
}
