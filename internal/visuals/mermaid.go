// Package visuals renders Mermaid charts for daylighting reports.
package visuals

import (
	"fmt"
	"strings"

	"daylux/internal/metrics"
	"daylux/internal/portfolio"
)

// GenerateUDIPie creates a Mermaid pie chart of the UDI bucket split for
// one point.
func GenerateUDIPie(a metrics.Annual) string {
	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("pie showData\n")
	sb.WriteString("    title \"Useful Daylight Illuminance\"\n")
	fmt.Fprintf(&sb, "    \"Useful\" : %.1f\n", a.UDI*100)
	fmt.Fprintf(&sb, "    \"Below range\" : %.1f\n", a.UDILow*100)
	fmt.Fprintf(&sb, "    \"Above range\" : %.1f\n", a.UDIHigh*100)
	sb.WriteString("```")
	return sb.String()
}

// GenerateDAChart creates a Mermaid xychart-beta of daylight autonomy per
// point across the portfolio.
func GenerateDAChart(results []portfolio.Result) string {
	if len(results) == 0 {
		return ""
	}

	var labels []string
	var das []string
	var cdas []string
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		labels = append(labels, fmt.Sprintf("%d", i))
		das = append(das, fmt.Sprintf("%.1f", r.Annual.DA*100))
		cdas = append(cdas, fmt.Sprintf("%.1f", r.Annual.CDA*100))
	}
	if len(labels) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Daylight Autonomy by Point\"\n")
	fmt.Fprintf(&sb, "    x-axis [%s]\n", strings.Join(labels, ", "))
	sb.WriteString("    y-axis \"Occupied Hours (%)\" 0 --> 100\n")
	fmt.Fprintf(&sb, "    bar [%s]\n", strings.Join(das, ", "))
	fmt.Fprintf(&sb, "    line [%s]\n", strings.Join(cdas, ", "))
	sb.WriteString("```")
	return sb.String()
}
