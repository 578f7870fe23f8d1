package cmds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if command != nil && printed[command] {
			continue
		}
		printed[command] = true
		p.printCommand(0, name, command)
	}
}

func (p *Executor) printCommand(indent int, name string, command *Command) {
	fmt.Print(strings.Repeat("  ", indent))
	fmt.Print(name)
	if command != nil && command.Description != "" {
		fmt.Print("\t", command.Description)
		if len(command.Aliases) > 0 {
			fmt.Printf(" (aliases: %s)", strings.Join(command.Aliases, ", "))
		}
	}
	fmt.Println()
	if command == nil {
		return
	}
	for _, sub := range slices.Sorted(maps.Keys(command.Subs)) {
		p.printCommand(indent+1, sub, command.Subs[sub])
	}
}
