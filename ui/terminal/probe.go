package terminal

import (
	"fmt"
	"time"

	"github.com/yext/minihttpd/probe"
)

func (p *Provider) ProbeResults(results []probe.Result) {
	table := p.newTable()
	table.SetHeader([]string{"Path", "Status", "Bytes", "Time"})
	for _, r := range results {
		status := r.Status
		if r.Err != nil {
			status = fmt.Sprintf("error: %v", r.Err)
		}
		table.Append([]string{
			r.Path,
			status,
			fmt.Sprint(len(r.Body)),
			r.Elapsed.Round(time.Microsecond).String(),
		})
	}
	table.Render()
}
