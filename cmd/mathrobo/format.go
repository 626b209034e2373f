// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// formatFloat prints v with prec decimals and never prints "-0".
func formatFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Trim(s, "-0.") == "" {
		s = strings.TrimPrefix(s, "-")
	}
	return s
}

func writeVector(w io.Writer, v []float64, prec int) error {
	cells := make([]string, len(v))
	for i, x := range v {
		cells[i] = formatFloat(x, prec)
	}
	_, err := fmt.Fprintln(w, strings.Join(cells, " "))
	return err
}

// writeRows prints one row per line with columns right-aligned.
func writeRows(w io.Writer, rows [][]float64, prec int) error {
	width := 0
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, x := range row {
			cells[i][j] = formatFloat(x, prec)
			width = max(width, len(cells[i][j]))
		}
	}
	for _, row := range cells {
		for j, c := range row {
			if j > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%*s", width, c); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
