// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package format

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/vulntor/wifiscan/pkg/wifi"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var networkHeaders = []string{"SSID", "RSSI", "CHANNEL", "BAND", "AUTH"}

const rssiColumn = 1

// Signal thresholds in dBm.
const (
	strongSignal = -60
	fairSignal   = -75
)

// PrintNetworks renders networks. JSON mode emits the records with the same
// field names the HTTP endpoint uses.
func (f *formatter) PrintNetworks(networks []wifi.Network) error {
	if networks == nil {
		networks = []wifi.Network{}
	}
	if f.mode == ModeJSON {
		return f.PrintJSON(networks)
	}

	rows := make([][]string, len(networks))
	for i, n := range networks {
		rows[i] = networkRow(n)
	}

	var style cellStyle
	if f.color {
		style = func(row, col int, cell string) string {
			switch {
			case row < 0:
				return headerStyle.Render(cell)
			case col == rssiColumn:
				return rssiColor(networks[row].RSSI).Sprint(cell)
			default:
				return cell
			}
		}
	}

	if err := f.printTable(networkHeaders, rows, style); err != nil {
		return err
	}

	return f.PrintSummary(fmt.Sprintf("%d networks", len(networks)))
}

// cellStyle decorates a padded cell. row is -1 for the header.
type cellStyle func(row, col int, cell string) string

// printTable writes an aligned table to stdout. Cells are padded before
// style runs so escape codes don't skew tabwriter widths.
func (f *formatter) printTable(headers []string, rows [][]string, style cellStyle) error {
	widths := columnWidths(headers, rows)
	w := tabwriter.NewWriter(f.stdout, 0, 0, 2, ' ', 0)

	writeRow := func(row int, cells []string) error {
		line := make([]string, len(cells))
		for col, cell := range cells {
			line[col] = pad(cell, widths[col])
			if style != nil {
				line[col] = style(row, col, line[col])
			}
		}
		_, err := fmt.Fprintln(w, strings.Join(line, "\t"))
		return err
	}

	if err := writeRow(-1, headers); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(i, row); err != nil {
			return err
		}
	}

	return w.Flush()
}

func networkRow(n wifi.Network) []string {
	return []string{
		n.SSID,
		strconv.Itoa(n.RSSI),
		strconv.Itoa(n.Channel),
		n.Band(),
		n.Auth,
	}
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// rssiColor grades a signal level: green for strong, yellow for fair, red for weak.
func rssiColor(rssi int) *color.Color {
	switch {
	case rssi >= strongSignal:
		return color.New(color.FgGreen)
	case rssi >= fairSignal:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
