// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/NVIDIA/version-organizer/pkg/classifier"
	"github.com/NVIDIA/version-organizer/pkg/stats"
)

// RenderTable returns the same data as Render laid out as two tables:
// run totals and one row per group.
func RenderTable(groups *classifier.GroupIndex, records []classifier.Record, st stats.Stats) string {
	var b strings.Builder

	tw := newWriter(title)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	for _, line := range totals(st) {
		tw.AppendRow(table.Row{line.label, line.value})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	b.WriteString(tw.Render())
	b.WriteString("\n")

	gs := Groups(groups, records)
	if len(gs) == 0 {
		return b.String()
	}

	gw := newWriter("Groups")
	gw.AppendHeader(table.Row{"Folder", "Files", "Size", "Sample"})
	for _, g := range gs {
		sample := strings.Join(g.Sample, "\n")
		if g.Remaining > 0 {
			sample += "\n" + printer.Sprintf("... and %d more", g.Remaining)
		}
		gw.AppendRow(table.Row{g.Folder, printer.Sprintf("%d", g.Count), humanize.Bytes(uint64(g.SizeBytes)), sample})
	}
	gw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	b.WriteString("\n")
	b.WriteString(gw.Render())
	b.WriteString("\n")
	return b.String()
}

func newWriter(caption string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(caption)
	return tw
}
