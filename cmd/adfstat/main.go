// Command adfstat runs the Augmented Dickey-Fuller test against a single
// numeric column of a CSV file and prints the result.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/halvorsen-quant/adfstat/adf"
)

func main() {
	var (
		column        = flag.Int("column", 0, "0-based index of the CSV column to test")
		maxlag        = flag.Int("maxlag", 0, "maximum lag order; 0 selects the Greene/Schwert bound automatically")
		regression    = flag.String("regression", "c", "deterministic terms: n, c, ct, or ctt")
		autolagMethod = flag.String("autolag", "aic", "lag selection method: aic, bic, t-stat, or empty to use -maxlag directly")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: adfstat [flags] <csv-file>")
		os.Exit(2)
	}

	series, err := loadColumn(flag.Arg(0), *column)
	if err != nil {
		fmt.Fprintln(os.Stderr, "adfstat:", err)
		os.Exit(1)
	}

	res, err := adf.Run(series, *maxlag, *regression, *autolagMethod)
	if err != nil {
		fmt.Fprintln(os.Stderr, "adfstat:", err)
		os.Exit(1)
	}

	printResult(res)
}

// loadColumn reads one numeric column from a CSV file, skipping a header
// row if the first row fails to parse as a float.
func loadColumn(path string, column int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	var out []float64
	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		if column >= len(record) {
			return nil, fmt.Errorf("row %d: column %d out of range (%d columns)", row+1, column, len(record))
		}
		v, err := strconv.ParseFloat(record[column], 64)
		if err != nil {
			if row == 0 {
				row++
				continue // header row
			}
			return nil, fmt.Errorf("parse float at row %d col %d (%q): %w", row+1, column+1, record[column], err)
		}
		out = append(out, v)
		row++
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}
	return out, nil
}

func printResult(res adf.Result) {
	fmt.Printf("ADF statistic : %.6f\n", res.ADFStat)
	fmt.Printf("p-value       : %.6f\n", res.PValue)
	fmt.Printf("used lag      : %d\n", res.UsedLag)
	fmt.Printf("nobs          : %d\n", res.NObs)
	fmt.Println("critical values:")
	for _, level := range []string{"1%", "5%", "10%"} {
		fmt.Printf("  %-4s: %.6f\n", level, res.CritValues[level])
	}
	for _, w := range res.Warnings {
		fmt.Println("warning:", w)
	}
}
