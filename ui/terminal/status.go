package terminal

import (
	"strconv"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/theothertomelliott/gopsutil-nocgo/process"
	"github.com/yext/minihttpd/instance"
)

func (p *Provider) Status(statuses []instance.Status) {
	table := p.newTable()
	table.SetHeader([]string{
		"PID",
		"Address",
		"Status",
		"Ports",
		"RSS",
		"VMS",
		"Start Time",
		"Uptime",
	})

	for _, status := range statuses {
		memoryInfo := status.MemoryInfo
		if memoryInfo == nil {
			memoryInfo = &process.MemoryInfoStat{}
		}
		state := "STOPPED"
		if status.Running {
			state = "RUNNING"
		}
		table.Append([]string{
			strconv.Itoa(status.Pid),
			status.Addr,
			state,
			strings.Join(status.Ports, ","),
			humanize.Bytes(memoryInfo.RSS),
			humanize.Bytes(memoryInfo.VMS),
			status.StartTime.Format("2006-01-02 15:04:05"),
			humanize.Time(status.StartTime),
		})
	}
	table.Render()
}
