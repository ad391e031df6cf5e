// SPDX-License-Identifier: MIT

package measure

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteMeasuredCSV writes one row per (dish, chip) sample and one column per
// (factor, stored step), factor-major: "G1:1,G1:2,G2:1,...". With
// includeDishAndChip the rows start with 1-based dish and chip numbers.
func WriteMeasuredCSV(w io.Writer, r *Result, includeDishAndChip bool) error {
	if r == nil || r.MeasuredData == nil {
		return fmt.Errorf("WriteMeasuredCSV: %w", ErrNoData)
	}
	var lead []string
	if includeDishAndChip {
		lead = []string{"dish", "chip"}
	}
	return writeCube(w, "WriteMeasuredCSV", r, r.MeasuredData, r.NumSamplesPerDish, lead)
}

// WriteRawCSV writes one row per simulated cell, prefixed with 1-based dish
// and cell numbers, in the column layout of WriteMeasuredCSV.
func WriteRawCSV(w io.Writer, r *Result) error {
	if r == nil || r.RawData == nil {
		return fmt.Errorf("WriteRawCSV: %w", ErrNoData)
	}
	return writeCube(w, "WriteRawCSV", r, r.RawData, r.NumCellsPerDish, []string{"dish", "cell"})
}

// writeCube writes data[f][s][col]; col / perDish is the dish of a row.
func writeCube(w io.Writer, method string, r *Result, data [][][]float64, perDish int, lead []string) error {
	cw := csv.NewWriter(w)

	header := append([]string(nil), lead...)
	for _, f := range r.Factors {
		for _, t := range r.TimeSteps {
			header = append(header, f+":"+strconv.Itoa(t))
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	numCols := r.NumDishes * perDish
	record := make([]string, 0, len(header))
	for col := 0; col < numCols; col++ {
		record = record[:0]
		if len(lead) > 0 {
			record = append(record, strconv.Itoa(col/perDish+1), strconv.Itoa(col%perDish+1))
		}
		for f := range r.Factors {
			for s := range r.TimeSteps {
				record = append(record, strconv.FormatFloat(data[f][s][col], 'g', -1, 64))
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
