package main

import (
	"chat-rpc/domain/chat"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type printer struct {
	out     io.Writer
	me      string
	colours bool
}

func (p printer) paint(c color.Color, s string) string {
	if !p.colours {
		return s
	}
	return color.New(c).Render(s)
}

// line renders a received message, system notices and direct messages stand out.
func (p printer) line(m chat.Message) string {
	rendered := m.Render()
	switch {
	case m.Origin == chat.SystemAuthor:
		return p.paint(color.FgYellow, rendered)
	case m.Origin == p.me:
		return p.paint(color.FgGray, rendered)
	case !m.IsBroadcast():
		return p.paint(color.FgMagenta, rendered)
	default:
		return p.paint(color.FgGreen, rendered)
	}
}

func (p printer) message(m chat.Message) {
	fmt.Fprintln(p.out, p.line(m))
}

func (p printer) info(format string, args ...any) {
	fmt.Fprintln(p.out, p.paint(color.FgCyan, fmt.Sprintf(format, args...)))
}

func (p printer) members(users []string) {
	p.info("in the room: %s", strings.Join(users, ", "))
}

// list prints a single column table, used for rooms and users.
func (p printer) list(header string, rows []string) {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"#", header})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for i, row := range rows {
		table.Append([]string{fmt.Sprintf("%d", i+1), row})
	}
	table.Render()
}

// parseInput splits "@bob hello" into a unicast to bob, anything else is a broadcast.
func parseInput(line string) (destination, content string) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "@") {
		return "", line
	}
	name, rest, found := strings.Cut(line[1:], " ")
	if !found || name == "" {
		return "", line
	}
	return name, strings.TrimSpace(rest)
}
