package terminal

// Routes lists the paths of a route table
func (p *Provider) Routes(paths []string) {
	table := p.newTable()
	table.SetHeader([]string{"Path"})
	for _, path := range paths {
		table.Append([]string{path})
	}
	table.Render()
}
